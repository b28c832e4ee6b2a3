package main

/* ─── Enumerations ───────────────────────────────────────────────────── */

// Gender values accepted by the engine. The profile binding rejects anything
// else before computeBMR ever sees it, but the engine re-checks anyway.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Activity levels. activityMultipliers in nutrition.go is the single source of
// truth for which values are valid — these constants exist for readability.
const (
	ActivitySedentary  = "Sedentary"
	ActivityLight      = "Light"
	ActivityModerate   = "Moderate"
	ActivityActive     = "Active"
	ActivityVeryActive = "Very Active"
)

// Diet types. macroSplits and mealPlans key off these; an unknown diet falls
// back to Balanced rather than erroring (the dashboard must always render).
const (
	DietBalanced      = "Balanced"
	DietKeto          = "Keto"
	DietVegan         = "Vegan"
	DietLowCarb       = "Low-Carb"
	DietHighProtein   = "High-Protein"
	DietMediterranean = "Mediterranean"
)

// Goals. Only Lose Weight and Gain Muscle adjust the calorie target.
const (
	GoalLoseWeight    = "Lose Weight"
	GoalMaintain      = "Maintain Weight"
	GoalGainMuscle    = "Gain Muscle"
	GoalImproveHealth = "Improve Health"
)

// BMI categories, boundaries at 18.5 / 25 / 30 (half-open intervals).
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

/* ─── Domain structs ─────────────────────────────────────────────────── */

// profile is one evaluation's worth of biometric input. Ephemeral — it is
// never persisted and never merged with a previous submission.
// The binding tags enforce the documented input ranges at the HTTP boundary.
type profile struct {
	Gender            string  `json:"gender"             binding:"required,oneof=Male Female"`
	Age               int     `json:"age"                binding:"required,gte=18,lte=80"`
	WeightKG          float64 `json:"weight_kg"          binding:"required,gte=40,lte=200"`
	HeightCM          float64 `json:"height_cm"          binding:"required,gte=140,lte=220"`
	ActivityLevel     string  `json:"activity_level"     binding:"required,oneof=Sedentary Light Moderate Active 'Very Active'"`
	DietType          string  `json:"diet_type"          binding:"required,oneof=Balanced Keto Vegan Low-Carb High-Protein Mediterranean"`
	Goal              string  `json:"goal"               binding:"required,oneof='Lose Weight' 'Maintain Weight' 'Gain Muscle' 'Improve Health'"`
	Allergies         string  `json:"allergies"`
	MedicalConditions string  `json:"medical_conditions"`
}

// macroTarget is one macro's slice of the daily calorie target.
// Calories here is always Grams × kcal-per-gram (4 for carbs/protein, 9 for fat).
type macroTarget struct {
	Ratio    float64 `json:"ratio"`
	Grams    float64 `json:"grams"`
	Calories float64 `json:"calories"`
}

// nutritionResult is everything the dashboard displays for one profile.
// Recomputed on every evaluation, never stored.
type nutritionResult struct {
	BMR                float64                `json:"bmr"`
	TDEE               float64                `json:"tdee"`
	DailyCalorieTarget float64                `json:"daily_calorie_target"`
	BMI                float64                `json:"bmi"`
	BMICategory        string                 `json:"bmi_category"`
	WaterTargetML      float64                `json:"water_target_ml"`
	Macros             map[string]macroTarget `json:"macros"`
}

// foodLogEntry is one row of the food diary file. Field set matches the file
// contract exactly: timestamp (ISO-8601, local clock), food, calories, date.
// Timestamp stays a string so the file round-trips byte-for-byte.
type foodLogEntry struct {
	Timestamp string `json:"timestamp"`
	Food      string `json:"food"`
	Calories  int    `json:"calories"`
	Date      string `json:"date"`
}

// daySummary is the aggregation returned for one calendar day: the calorie sum
// over every matching entry and the last five entries (the tail, not a sample).
type daySummary struct {
	Date          string         `json:"date"`
	TotalCalories int            `json:"total_calories"`
	EntryCount    int            `json:"entry_count"`
	Entries       []foodLogEntry `json:"entries"`
}

/* ─── Request types ──────────────────────────────────────────────────── */

// createFoodLogEntryRequest is the body for POST /api/food-log/entries.
// Calories are the user's own estimate — the server never computes them.
// gte=0 (not required) so an explicit zero is accepted.
type createFoodLogEntryRequest struct {
	Food     string `json:"food"     binding:"required"`
	Calories int    `json:"calories" binding:"gte=0"`
}

// askRequest is the body for POST /api/advisor/ask. Context is optional free
// text (typically the rendered engine outputs) appended to the user prompt.
type askRequest struct {
	Question string `json:"question" binding:"required"`
	Context  string `json:"context"`
}
