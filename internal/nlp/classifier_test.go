package nlp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// mock LLM client capturing the last request
type mockLLMClient struct {
	response string
	err      error
	calls    int
	lastReq  LLMRequest
}

func (m *mockLLMClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return LLMResponse{}, m.err
	}
	return LLMResponse{Text: m.response}, nil
}

func TestClassifierClassify(t *testing.T) {
	ref := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		message     string
		llmResponse string
		want        OrderIntent
	}{
		{
			name:        "high confidence order",
			message:     "2 cơm gà nha",
			llmResponse: `{"intent": "order", "confidence": "high", "food_items": "2 cơm gà"}`,
			want:        OrderIntent{Intent: IntentOrder, Confidence: ConfidenceHigh, FoodItems: "2 cơm gà"},
		},
		{
			name:        "cancel with day number",
			message:     "ngày 10 tui không ăn",
			llmResponse: `{"intent": "cancel", "confidence": "high", "day_number": 10}`,
			want:        OrderIntent{Intent: IntentCancel, Confidence: ConfidenceHigh, DayNumber: 10},
		},
		{
			name:        "markdown fenced json",
			message:     "phở bò",
			llmResponse: "```json\n{\"intent\": \"order\", \"confidence\": \"medium\", \"food_items\": \"phở bò\"}\n```",
			want:        OrderIntent{Intent: IntentOrder, Confidence: ConfidenceMedium, FoodItems: "phở bò"},
		},
		{
			name:        "low confidence order demoted",
			message:     "chắc là cơm gà?",
			llmResponse: `{"intent": "order", "confidence": "low", "food_items": "cơm gà"}`,
			want:        OrderIntent{Intent: IntentNone, Confidence: ConfidenceLow, FoodItems: "cơm gà"},
		},
		{
			name:        "low confidence cancel demoted",
			message:     "thôi chắc khỏi",
			llmResponse: `{"intent": "cancel", "confidence": "low"}`,
			want:        OrderIntent{Intent: IntentNone, Confidence: ConfidenceLow},
		},
		{
			name:        "chatter stays none",
			message:     "ai đặt cơm chưa?",
			llmResponse: `{"intent": "none", "confidence": "high"}`,
			want:        OrderIntent{Intent: IntentNone, Confidence: ConfidenceHigh},
		},
		{
			name:        "unknown intent label treated as none",
			message:     "gì đó",
			llmResponse: `{"intent": "maybe", "confidence": "high"}`,
			want:        OrderIntent{Intent: IntentNone, Confidence: ConfidenceHigh},
		},
		{
			name:        "non json output treated as none",
			message:     "xin chào",
			llmResponse: `I cannot classify this`,
			want:        OrderIntent{Intent: IntentNone},
		},
		{
			name:        "negative day dropped",
			message:     "cơm sườn",
			llmResponse: `{"intent": "order", "confidence": "high", "day_number": -3, "food_items": "cơm sườn"}`,
			want:        OrderIntent{Intent: IntentOrder, Confidence: ConfidenceHigh, FoodItems: "cơm sườn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockLLMClient{response: tt.llmResponse}
			classifier := NewClassifier(client, nil)

			got, err := classifier.Classify(context.Background(), tt.message, ref)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifierEmptyMessageSkipsModel(t *testing.T) {
	client := &mockLLMClient{response: `{"intent": "order", "confidence": "high"}`}
	classifier := NewClassifier(client, nil)

	got, err := classifier.Classify(context.Background(), "   ", time.Now())
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Intent != IntentNone {
		t.Fatalf("Classify(blank) = %v, want none", got.Intent)
	}
	if client.calls != 0 {
		t.Fatalf("blank message reached the model %d times", client.calls)
	}
}

func TestClassifierModelError(t *testing.T) {
	client := &mockLLMClient{err: errors.New("quota exceeded")}
	classifier := NewClassifier(client, nil)

	if _, err := classifier.Classify(context.Background(), "cơm gà", time.Now()); err == nil {
		t.Fatal("expected the model error to surface")
	}
}

func TestClassifierDateContextInSystemPrompt(t *testing.T) {
	client := &mockLLMClient{response: `{"intent": "none", "confidence": "high"}`}
	classifier := NewClassifier(client, nil)
	ref := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	if _, err := classifier.Classify(context.Background(), "hello", ref); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if !strings.Contains(client.lastReq.System, "Today is day 15, month 3, year 2026.") {
		t.Fatal("system prompt missing the message date context")
	}
	if !client.lastReq.ForceJSON {
		t.Fatal("classification should request a JSON response")
	}
	if !strings.Contains(client.lastReq.Prompt, "<message>\nhello\n</message>") {
		t.Fatal("prompt should wrap the raw message")
	}
}
