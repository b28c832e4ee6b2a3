package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// createFoodLogEntry appends a new food diary entry. The server stamps the
// timestamp (local clock, ISO-8601) and the derived date partition key — the
// client only supplies the label and its own calorie estimate.
// POST /api/food-log/entries.
func (h *Handler) createFoodLogEntry(c *gin.Context) {
	var body createFoodLogEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "food is required and calories must be >= 0")
		return
	}

	now := time.Now()
	entry := foodLogEntry{
		Timestamp: now.Format(time.RFC3339),
		Food:      body.Food,
		Calories:  body.Calories,
		Date:      now.Format("2006-01-02"),
	}

	if err := h.store.append(entry); err != nil {
		log.Printf("[food-log] append failed: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to save food log entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// listFoodLogEntries returns the full diary in insertion order.
// GET /api/food-log/entries. Empty array (not null) when nothing is logged yet.
func (h *Handler) listFoodLogEntries(c *gin.Context) {
	entries, err := h.store.loadAll()
	if err != nil {
		log.Printf("[food-log] load failed: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to read food log")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// getDailySummary returns the calorie total and last five entries for a date.
// GET /api/food-log/daily?date=YYYY-MM-DD (defaults to today). An optional
// calorie_target query adds the consumed-vs-goal delta the dashboard shows.
func (h *Handler) getDailySummary(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	// Validate format up front — an arbitrary string would silently match
	// nothing and come back as an empty summary.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	summary, err := h.store.summarizeDay(date)
	if err != nil {
		log.Printf("[food-log] summary failed: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to read food log")
		return
	}

	if targetStr := c.Query("calorie_target"); targetStr != "" {
		target, err := strconv.Atoi(targetStr)
		if err != nil || target < 0 {
			apiError(c, http.StatusBadRequest, "calorie_target must be a non-negative integer")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"date":             summary.Date,
			"total_calories":   summary.TotalCalories,
			"entry_count":      summary.EntryCount,
			"entries":          summary.Entries,
			"calorie_target":   target,
			"calories_vs_goal": summary.TotalCalories - target,
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
