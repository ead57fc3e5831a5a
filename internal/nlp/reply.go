package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nduythai/lunchbot/pkg/logging"
)

// ReplyRequest describes the confirmation reply to write.
type ReplyRequest struct {
	UserName  string
	Intent    Intent
	FoodItems string
	// DateDesc is the Vietnamese rendering of the target day, e.g.
	// "hôm nay", "hôm qua", "ngày 20/1".
	DateDesc string
}

// ReplyGenerator writes the bot's confirmation messages, asking the
// model for variety and falling back to fixed templates whenever it
// misbehaves.
type ReplyGenerator struct {
	llm    LLMClient
	logger *logging.Logger
}

// NewReplyGenerator wires a generator over the given model client.
func NewReplyGenerator(llm LLMClient, logger *logging.Logger) *ReplyGenerator {
	if llm == nil {
		panic("nlp: llm client is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ReplyGenerator{llm: llm, logger: logger}
}

// Confirmation returns the reply text for a recorded order or
// cancellation. It never fails; the template fallback covers every
// model error.
func (g *ReplyGenerator) Confirmation(ctx context.Context, req ReplyRequest) string {
	prompt := cancelReplyPrompt(req.UserName, req.DateDesc)
	if req.Intent == IntentOrder {
		prompt = orderReplyPrompt(req.UserName, req.FoodItems, req.DateDesc)
	}

	resp, err := g.llm.Complete(ctx, LLMRequest{
		Prompt:      prompt,
		Temperature: 1.3,
		TopP:        0.95,
		TopK:        40,
		MaxTokens:   256,
		ForceJSON:   true,
	})
	if err != nil {
		g.logger.Warn("confirmation generation failed, using fallback", "error", err)
		return fallbackConfirmation(req)
	}

	message, ok := parseConfirmationJSON(resp.Text)
	if !ok || strings.TrimSpace(message) == "" {
		g.logger.Warn("unparseable confirmation, using fallback",
			"response", truncate(resp.Text, 120))
		return fallbackConfirmation(req)
	}
	return message
}

func parseConfirmationJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return "", false
	}
	return out.Message, true
}

// fallbackConfirmation is the fixed-template reply used when the
// model call or its output is unusable.
func fallbackConfirmation(req ReplyRequest) string {
	if req.Intent == IntentOrder {
		foodText := ""
		if req.FoodItems != "" {
			foodText = " - " + req.FoodItems
		}
		return fmt.Sprintf("✅ Đã ghi nhận order của %s cho %s%s!", req.UserName, req.DateDesc, foodText)
	}
	return fmt.Sprintf("❌ Đã hủy order của %s cho %s!", req.UserName, req.DateDesc)
}
