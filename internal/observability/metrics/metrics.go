package metrics

import "github.com/prometheus/client_golang/prometheus"

// BotMetrics exposes counters/histograms for the order-bot flows.
type BotMetrics struct {
	messagesTotal   *prometheus.CounterVec
	marksTotal      *prometheus.CounterVec
	classifyLatency *prometheus.HistogramVec
}

func NewBotMetrics(reg prometheus.Registerer) *BotMetrics {
	m := &BotMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lunchbot",
			Subsystem: "bot",
			Name:      "messages_total",
			Help:      "Total group messages seen, by classified intent and outcome",
		}, []string{"intent", "status"}),
		marksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lunchbot",
			Subsystem: "sheets",
			Name:      "marks_total",
			Help:      "Total order-mark attempts against the sheet, by result",
		}, []string{"result"}),
		classifyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lunchbot",
			Subsystem: "nlp",
			Name:      "classify_latency_seconds",
			Help:      "Latency of intent classification calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"intent"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.marksTotal, m.classifyLatency)
	return m
}

func (m *BotMetrics) ObserveMessage(intent, status string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(intent, status).Inc()
}

func (m *BotMetrics) ObserveMark(result string) {
	if m == nil {
		return
	}
	m.marksTotal.WithLabelValues(result).Inc()
}

func (m *BotMetrics) ObserveClassifyLatency(intent string, seconds float64) {
	if m == nil {
		return
	}
	m.classifyLatency.WithLabelValues(intent).Observe(seconds)
}
