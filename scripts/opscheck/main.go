// Package main implements a smoke check against a running lunchbot ops
// server.
//
// It hits the health, summary and status endpoints and prints a
// pass/fail line per check.
//
// Usage:
//
//	go run ./scripts/opscheck --api=http://localhost:8080 [--name=An] [--date=2026-01-23]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

var (
	flagAPI  string
	flagName string
	flagDate string
)

func init() {
	flag.StringVar(&flagAPI, "api", "http://localhost:8080", "ops server base URL")
	flag.StringVar(&flagName, "name", "", "person to look up via /api/status (optional)")
	flag.StringVar(&flagDate, "date", "", "day to query as YYYY-MM-DD (default: today)")
}

var client = &http.Client{Timeout: 10 * time.Second}

func get(path string, query url.Values) (int, []byte, error) {
	u := flagAPI + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	resp, err := client.Get(u)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func checkHealth() (bool, string) {
	code, body, err := get("/healthz", nil)
	if err != nil {
		return false, err.Error()
	}
	if code != http.StatusOK || string(body) != "ok" {
		return false, fmt.Sprintf("status %d, body %q", code, body)
	}
	return true, "ok"
}

func checkSummary() (bool, string) {
	q := url.Values{}
	if flagDate != "" {
		q.Set("date", flagDate)
	}
	code, body, err := get("/api/summary", q)
	if err != nil {
		return false, err.Error()
	}
	if code != http.StatusOK {
		return false, fmt.Sprintf("status %d, body %s", code, body)
	}
	var entries []struct {
		Name     string `json:"name"`
		HasOrder bool   `json:"has_order"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		return false, fmt.Sprintf("bad JSON: %v", err)
	}
	ordered := 0
	for _, e := range entries {
		if e.HasOrder {
			ordered++
		}
	}
	return true, fmt.Sprintf("%d people, %d ordered", len(entries), ordered)
}

func checkStatus() (bool, string) {
	q := url.Values{"name": {flagName}}
	if flagDate != "" {
		q.Set("date", flagDate)
	}
	code, body, err := get("/api/status", q)
	if err != nil {
		return false, err.Error()
	}
	if code != http.StatusOK {
		return false, fmt.Sprintf("status %d, body %s", code, body)
	}
	var status struct {
		Name     string `json:"name"`
		Date     string `json:"date"`
		HasOrder bool   `json:"has_order"`
		Known    bool   `json:"known"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return false, fmt.Sprintf("bad JSON: %v", err)
	}
	if !status.Known {
		return true, fmt.Sprintf("%s has no mark for %s", status.Name, status.Date)
	}
	return true, fmt.Sprintf("%s ordered=%v on %s", status.Name, status.HasOrder, status.Date)
}

func main() {
	flag.Parse()

	fmt.Printf("Target: %s\n", flagAPI)

	failed := false
	run := func(label string, check func() (bool, string)) {
		pass, detail := check()
		if pass {
			fmt.Printf("  ✅ %s: %s\n", label, detail)
		} else {
			fmt.Printf("  ❌ %s: %s\n", label, detail)
			failed = true
		}
	}

	run("health", checkHealth)
	run("summary", checkSummary)
	if flagName != "" {
		run("status", checkStatus)
	}

	if failed {
		os.Exit(1)
	}
}
