package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// evaluateNutrition computes the full set of dashboard metrics for a profile.
// POST /api/nutrition/evaluate. Binding enforces the input ranges; the engine
// re-rejects bad enums anyway, so a binding gap can't silently miscompute.
func (h *Handler) evaluateNutrition(c *gin.Context) {
	var p profile
	if err := c.ShouldBindJSON(&p); err != nil {
		apiError(c, http.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}

	result, err := evaluateProfile(p)
	if err != nil {
		if errors.Is(err, errInvalidInput) {
			apiError(c, http.StatusBadRequest, err.Error())
		} else {
			apiError(c, http.StatusInternalServerError, "evaluation failed")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
