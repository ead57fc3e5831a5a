// Package bot receives Telegram group messages, classifies them and
// records lunch orders on the active month sheet.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nduythai/lunchbot/internal/dates"
	"github.com/nduythai/lunchbot/internal/nlp"
	"github.com/nduythai/lunchbot/internal/observability/metrics"
	"github.com/nduythai/lunchbot/internal/sheets"
	"github.com/nduythai/lunchbot/pkg/logging"
)

var tracer = otel.Tracer("lunchbot.internal.bot")

type messageClassifier interface {
	Classify(ctx context.Context, message string, ref time.Time) (nlp.OrderIntent, error)
}

type orderRecorder interface {
	Mark(ctx context.Context, displayName string, hasOrder bool, date time.Time) error
}

type confirmationWriter interface {
	Confirmation(ctx context.Context, req nlp.ReplyRequest) string
}

// Inbound is one group-chat message to process.
type Inbound struct {
	Text       string
	SenderName string
	SentAt     time.Time
}

// Handler turns a group message into a sheet update and a reply.
type Handler struct {
	classifier messageClassifier
	recorder   orderRecorder
	replies    confirmationWriter
	metrics    *metrics.BotMetrics
	logger     *logging.Logger
}

// NewHandler creates a new message handler. The metrics collector may
// be nil when no registry is wired up.
func NewHandler(classifier messageClassifier, recorder orderRecorder, replies confirmationWriter, m *metrics.BotMetrics, logger *logging.Logger) *Handler {
	if classifier == nil {
		panic("bot: classifier cannot be nil")
	}
	if recorder == nil {
		panic("bot: recorder cannot be nil")
	}
	if replies == nil {
		panic("bot: reply generator cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		classifier: classifier,
		recorder:   recorder,
		replies:    replies,
		metrics:    m,
		logger:     logger,
	}
}

// HandleMessage processes one inbound message. It returns the reply to
// send and whether the message was acted on at all; chatter and
// unparseable messages come back with handled == false.
func (h *Handler) HandleMessage(ctx context.Context, msg Inbound) (string, bool) {
	ctx, span := tracer.Start(ctx, "bot.handle_message")
	defer span.End()

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return "", false
	}

	msgID := uuid.NewString()
	h.logger.Info("received message", "message_id", msgID, "user", msg.SenderName, "sent_at", msg.SentAt.Format(time.RFC3339))

	start := time.Now()
	intent, err := h.classifier.Classify(ctx, text, msg.SentAt)
	if err != nil {
		h.logger.Error("failed to classify message", "error", err, "message_id", msgID, "user", msg.SenderName)
		h.metrics.ObserveMessage("error", "classify_failed")
		span.RecordError(err)
		return "", false
	}
	h.metrics.ObserveClassifyLatency(string(intent.Intent), time.Since(start).Seconds())
	span.SetAttributes(
		attribute.String("lunchbot.intent", string(intent.Intent)),
		attribute.String("lunchbot.confidence", string(intent.Confidence)),
	)

	if intent.Intent == nlp.IntentNone {
		h.metrics.ObserveMessage(string(nlp.IntentNone), "ignored")
		return "", false
	}

	target, err := dates.ResolveMessageDate(msg.SentAt, intent.DayNumber, text)
	if err != nil {
		h.logger.Warn("message referenced an invalid date", "error", err, "message_id", msgID, "user", msg.SenderName, "day_number", intent.DayNumber)
		h.metrics.ObserveMessage(string(intent.Intent), "invalid_date")
		span.RecordError(err)
		return invalidDateReply, true
	}
	span.SetAttributes(attribute.String("lunchbot.target_date", target.Format("2006-01-02")))

	dateDesc := describeDate(target, msg.SentAt)
	hasOrder := intent.Intent == nlp.IntentOrder

	if err := h.recorder.Mark(ctx, msg.SenderName, hasOrder, target); err != nil {
		h.logger.Warn("failed to mark order", "error", err, "message_id", msgID, "user", msg.SenderName, "date", target.Format("02/01/2006"))
		h.metrics.ObserveMark(markResult(err))
		h.metrics.ObserveMessage(string(intent.Intent), "mark_failed")
		span.RecordError(err)
		return markFailureReply(intent.Intent, msg.SenderName, dateDesc), true
	}
	h.metrics.ObserveMark("ok")
	h.metrics.ObserveMessage(string(intent.Intent), "ok")

	if hasOrder {
		h.logger.Info("marked order", "message_id", msgID, "user", msg.SenderName, "date", target.Format("02/01/2006"), "food", intent.FoodItems)
	} else {
		h.logger.Info("cancelled order", "message_id", msgID, "user", msg.SenderName, "date", target.Format("02/01/2006"))
	}

	reply := h.replies.Confirmation(ctx, nlp.ReplyRequest{
		UserName:  msg.SenderName,
		Intent:    intent.Intent,
		FoodItems: intent.FoodItems,
		DateDesc:  dateDesc,
	})
	return reply, true
}

// describeDate renders the target date the way people say it in chat:
// today, yesterday, or an explicit day/month.
func describeDate(target, ref time.Time) string {
	t := midnight(target)
	r := midnight(ref)
	if !t.Before(r) {
		return "hôm nay"
	}
	if t.Equal(r.AddDate(0, 0, -1)) {
		return "hôm qua"
	}
	return fmt.Sprintf("ngày %d/%d", target.Day(), int(target.Month()))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func markResult(err error) string {
	switch {
	case errors.Is(err, sheets.ErrTabNotFound):
		return "tab_not_found"
	case errors.Is(err, sheets.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, sheets.ErrDateColumnNotFound):
		return "date_column_not_found"
	case errors.Is(err, sheets.ErrWriteFailed):
		return "write_failed"
	default:
		return "error"
	}
}
