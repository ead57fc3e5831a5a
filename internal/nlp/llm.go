// Package nlp classifies Vietnamese group-chat messages as food
// orders or cancellations and writes the bot's confirmation replies,
// both through Google Gemini.
package nlp

import "context"

// LLMRequest is a single-turn completion request.
type LLMRequest struct {
	System      string
	Prompt      string
	Temperature float32
	TopP        float32
	TopK        int32
	MaxTokens   int32
	// ForceJSON asks the model for an application/json response body.
	ForceJSON bool
}

// LLMResponse carries the model output.
type LLMResponse struct {
	Text       string
	StopReason string
}

// LLMClient is the completion surface the classifier and the reply
// generator run against.
type LLMClient interface {
	Complete(ctx context.Context, req LLMRequest) (LLMResponse, error)
}
