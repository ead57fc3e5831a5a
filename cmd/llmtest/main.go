package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nduythai/lunchbot/internal/nlp"
	"github.com/nduythai/lunchbot/pkg/logging"
)

// Manual smoke test for the Gemini classifier. Pass the message to
// classify as arguments, e.g.
//
//	go run ./cmd/llmtest cho tui 1 phần cơm gà nha
func main() {
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	message := strings.Join(flag.Args(), " ")
	if message == "" {
		message = "cho tui 1 phần cơm gà nha"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := nlp.NewGeminiClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("create gemini client: %v", err)
	}
	defer client.Close()

	logger := logging.New("info", "text")
	classifier := nlp.NewClassifier(client, logger)

	fmt.Printf("Message: %s\n", message)

	start := time.Now()
	result, err := classifier.Classify(ctx, message, time.Now())
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("❌ Classification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Classified in %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("   intent:     %s\n", result.Intent)
	fmt.Printf("   confidence: %s\n", result.Confidence)
	if result.DayNumber > 0 {
		fmt.Printf("   day:        %d\n", result.DayNumber)
	}
	if result.FoodItems != "" {
		fmt.Printf("   food:       %s\n", result.FoodItems)
	}

	if result.Intent == nlp.IntentNone {
		return
	}

	replies := nlp.NewReplyGenerator(client, logger)
	confirmation := replies.Confirmation(ctx, nlp.ReplyRequest{
		UserName:  "Thái",
		Intent:    result.Intent,
		FoodItems: result.FoodItems,
		DateDesc:  "hôm nay",
	})
	fmt.Printf("   reply:      %s\n", confirmation)
}
