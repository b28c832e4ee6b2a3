package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler holds shared dependencies for all route handlers: the file-backed
// food log store and the AI advisor adapter. Both are constructed once in
// main and injected here — no package-level singletons. advisor may be nil
// when the three advisor settings are absent; handlers degrade to the
// fallback string in that case.
type Handler struct {
	store   *foodLogStore
	advisor *advisor
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requestIDMiddleware tags every request with an X-Request-ID (client-supplied
// or freshly generated) so log lines from one interaction can be correlated.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api", requestIDMiddleware())

	api.POST("/nutrition/evaluate", h.evaluateNutrition)

	api.GET("/meal-plan", h.getMealPlan)
	api.GET("/recipes", h.findRecipes)

	api.POST("/food-log/entries", h.createFoodLogEntry)
	api.GET("/food-log/entries", h.listFoodLogEntries)
	api.GET("/food-log/daily", h.getDailySummary)

	api.POST("/advisor/ask", h.askAdvisor)
	api.POST("/advisor/meal-plan", h.planMealWithAdvisor)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
