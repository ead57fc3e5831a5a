package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/nduythai/lunchbot/cmd/mainconfig"
	"github.com/nduythai/lunchbot/internal/config"
	"github.com/nduythai/lunchbot/internal/sheets"
	"github.com/nduythai/lunchbot/pkg/logging"
)

var dateFlag = flag.String("date", "", "day to summarize as YYYY-MM-DD (default: today)")

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
	}

	now := time.Now().In(loc)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if *dateFlag != "" {
		date, err = time.ParseInLocation("2006-01-02", *dateFlag, loc)
		if err != nil {
			log.Fatalf("invalid -date %q, use YYYY-MM-DD", *dateFlag)
		}
	}

	ctx := context.Background()

	workbook, closeWorkbook, err := mainconfig.OpenWorkbook(ctx, cfg)
	if err != nil {
		log.Fatalf("open workbook: %v", err)
	}
	defer closeWorkbook()

	service := sheets.NewService(workbook, logger, nil)
	entries, err := service.DaySummary(ctx, date)
	if err != nil {
		log.Fatalf("summarize %s: %v", date.Format("2006-01-02"), err)
	}

	width := len("Name")
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}

	fmt.Printf("Orders for %s (%s)\n\n", date.Format("02/01/2006"), sheets.TabNameForDate(date))
	fmt.Printf("%-*s  %s\n", width, "Name", "Order")
	ordered := 0
	for _, e := range entries {
		mark := "-"
		if e.HasOrder {
			mark = "yes"
			ordered++
		}
		fmt.Printf("%-*s  %s\n", width, e.Name, mark)
	}
	fmt.Printf("\n%d/%d ordered\n", ordered, len(entries))
}
