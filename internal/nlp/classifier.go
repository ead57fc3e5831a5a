package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nduythai/lunchbot/pkg/logging"
)

// Intent is the classified purpose of a group message.
type Intent string

const (
	IntentOrder  Intent = "order"
	IntentCancel Intent = "cancel"
	IntentNone   Intent = "none"
)

// Confidence grades how sure the model is of its classification.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// OrderIntent is the structured classification of one message. A
// DayNumber of zero means the message named no day.
type OrderIntent struct {
	Intent     Intent     `json:"intent"`
	Confidence Confidence `json:"confidence"`
	DayNumber  int        `json:"day_number,omitempty"`
	FoodItems  string     `json:"food_items,omitempty"`
}

// Classifier labels Vietnamese group messages as food orders,
// cancellations, or chatter. There is exactly one of these; every
// message goes through the same prompt and the same parse.
type Classifier struct {
	llm    LLMClient
	logger *logging.Logger
}

// NewClassifier wires a classifier over the given model client.
func NewClassifier(llm LLMClient, logger *logging.Logger) *Classifier {
	if llm == nil {
		panic("nlp: llm client is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Classifier{llm: llm, logger: logger}
}

// Classify labels one message. ref is the message timestamp; it
// anchors the date context the model reasons with. Blank messages are
// chatter without a model call, and unusable model output is demoted
// to chatter rather than failing the update. Order and cancel labels
// at low confidence are demoted to none, keeping the parsed day and
// food fields for the caller's logs.
func (c *Classifier) Classify(ctx context.Context, message string, ref time.Time) (OrderIntent, error) {
	if strings.TrimSpace(message) == "" {
		return OrderIntent{Intent: IntentNone}, nil
	}

	resp, err := c.llm.Complete(ctx, LLMRequest{
		System:      classifierSystemPrompt(ref),
		Prompt:      classifierPrompt(message),
		Temperature: 1.0,
		TopP:        0.95,
		TopK:        20,
		MaxTokens:   1024,
		ForceJSON:   true,
	})
	if err != nil {
		return OrderIntent{}, fmt.Errorf("nlp: classify message: %w", err)
	}

	result, ok := parseIntentJSON(resp.Text)
	if !ok {
		c.logger.Warn("unparseable classification, treating as none",
			"response", truncate(resp.Text, 120))
		return OrderIntent{Intent: IntentNone}, nil
	}

	c.logger.Info("classified message",
		"intent", result.Intent,
		"confidence", result.Confidence,
		"day", result.DayNumber,
	)

	switch result.Intent {
	case IntentOrder, IntentCancel:
		if result.Confidence == ConfidenceLow {
			c.logger.Info("low confidence, treating as none", "intent", result.Intent)
			result.Intent = IntentNone
		}
	default:
		result.Intent = IntentNone
	}
	return result, nil
}

// parseIntentJSON extracts the first JSON object in text. Models wrap
// output in markdown fences often enough that the raw body cannot be
// trusted to unmarshal directly.
func parseIntentJSON(text string) (OrderIntent, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return OrderIntent{}, false
	}
	var result OrderIntent
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return OrderIntent{}, false
	}
	if result.DayNumber < 0 {
		result.DayNumber = 0
	}
	return result, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
