// CLI tool to print a day's food diary summary straight from food_log.json.
// Usage: go run ./cmd/log-report [-file food_log.json] [-date YYYY-MM-DD]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
)

type foodLogEntry struct {
	Timestamp string `json:"timestamp"`
	Food      string `json:"food"`
	Calories  int    `json:"calories"`
	Date      string `json:"date"`
}

func main() {
	file := flag.String("file", "food_log.json", "path to the food log file")
	date := flag.String("date", time.Now().Format("2006-01-02"), "day to summarize (YYYY-MM-DD)")
	flag.Parse()

	if _, err := time.Parse("2006-01-02", *date); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid date %q, expected YYYY-MM-DD\n", *date)
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No food log at %s yet — nothing to report.\n", *file)
			return
		}
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *file, err)
		os.Exit(1)
	}

	var entries []foodLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", *file, err)
		os.Exit(1)
	}

	total := 0
	count := 0
	fmt.Printf("Food log for %s\n", *date)
	for _, e := range entries {
		if e.Date != *date {
			continue
		}
		count++
		total += e.Calories
		timeStr := e.Timestamp
		if t, err := time.Parse(time.RFC3339, e.Timestamp); err == nil {
			timeStr = t.Format("15:04")
		}
		fmt.Printf("  %s  %-40s %5d kcal\n", timeStr, e.Food, e.Calories)
	}
	if count == 0 {
		fmt.Println("  (no entries)")
		return
	}
	fmt.Printf("Total: %d entries, %d kcal\n", count, total)
}
