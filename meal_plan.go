package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

/* ─── Static catalogs ────────────────────────────────────────────────── */

// mealPlans is the canned per-diet meal plan. Diets without a dedicated plan
// (Low-Carb, Mediterranean) get the Balanced one, same fallback rule as the
// macro split.
var mealPlans = map[string]map[string]string{
	DietBalanced: {
		"Breakfast": "Oatmeal with berries and almonds (350 kcal)",
		"Lunch":     "Grilled chicken salad with quinoa (450 kcal)",
		"Dinner":    "Salmon with sweet potato and broccoli (500 kcal)",
		"Snacks":    "Greek yogurt with nuts (200 kcal)",
	},
	DietKeto: {
		"Breakfast": "Scrambled eggs with avocado and bacon (400 kcal)",
		"Lunch":     "Caesar salad with grilled chicken, no croutons (350 kcal)",
		"Dinner":    "Ribeye steak with buttered asparagus (600 kcal)",
		"Snacks":    "Cheese and macadamia nuts (250 kcal)",
	},
	DietVegan: {
		"Breakfast": "Smoothie bowl with banana, spinach, and chia seeds (300 kcal)",
		"Lunch":     "Chickpea Buddha bowl with tahini dressing (450 kcal)",
		"Dinner":    "Lentil curry with brown rice (500 kcal)",
		"Snacks":    "Hummus with vegetables (150 kcal)",
	},
	DietHighProtein: {
		"Breakfast": "Protein pancakes with Greek yogurt (400 kcal)",
		"Lunch":     "Turkey and quinoa power bowl (500 kcal)",
		"Dinner":    "Grilled cod with roasted vegetables (450 kcal)",
		"Snacks":    "Protein shake with banana (250 kcal)",
	},
}

// mockRecipes is the static recipe catalog behind the recipe finder. A real
// deployment would back this with a recipe API; the finder contract only
// promises the top three matches of a canned list.
var mockRecipes = []string{
	"Protein pancakes with banana & almond butter",
	"Quinoa chickpea power bowl",
	"Baked salmon with herbs and lemon",
	"Green smoothie with spinach and mango",
	"Veggie-packed omelet with feta cheese",
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// getMealPlan returns the canned meal plan for a diet type.
// GET /api/meal-plan?diet_type=Keto (defaults to Balanced).
func (h *Handler) getMealPlan(c *gin.Context) {
	dietType := c.DefaultQuery("diet_type", DietBalanced)

	plan, ok := mealPlans[dietType]
	if !ok {
		plan = mealPlans[DietBalanced]
	}

	c.JSON(http.StatusOK, gin.H{"diet_type": dietType, "meals": plan})
}

// findRecipes returns up to three recipe suggestions for a search query.
// GET /api/recipes?query=high-protein+breakfast. A query is required — the
// dashboard only shows suggestions once the user has typed something.
func (h *Handler) findRecipes(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		apiError(c, http.StatusBadRequest, "query is required")
		return
	}

	suggestions := mockRecipes
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}

	c.JSON(http.StatusOK, gin.H{"query": query, "recipes": suggestions})
}
