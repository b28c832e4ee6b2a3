package main

import (
	"errors"
	"fmt"
)

// errInvalidInput marks an out-of-range or unrecognized enum value reaching
// the engine. Request binding should make this unreachable; the engine still
// rejects rather than silently misbehaving.
var errInvalidInput = errors.New("invalid input")

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — the binding
// tag on profile.ActivityLevel lists the same five values.
var activityMultipliers = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// macroSplits maps each diet type to its {Carbs, Protein, Fat} calorie ratios.
// Every row sums to 1.0. Unknown diets fall back to Balanced in computeMacros.
var macroSplits = map[string]map[string]float64{
	DietBalanced:      {"Carbs": 0.50, "Protein": 0.25, "Fat": 0.25},
	DietKeto:          {"Carbs": 0.05, "Protein": 0.20, "Fat": 0.75},
	DietHighProtein:   {"Carbs": 0.30, "Protein": 0.40, "Fat": 0.30},
	DietLowCarb:       {"Carbs": 0.20, "Protein": 0.35, "Fat": 0.45},
	DietVegan:         {"Carbs": 0.55, "Protein": 0.20, "Fat": 0.25},
	DietMediterranean: {"Carbs": 0.45, "Protein": 0.25, "Fat": 0.30},
}

// kcalPerGram gives the caloric density used when converting a macro's share
// of the calorie target into grams: 4 kcal/g for carbs and protein, 9 for fat.
var kcalPerGram = map[string]float64{
	"Carbs":   4,
	"Protein": 4,
	"Fat":     9,
}

// computeBMR estimates basal metabolic rate via the revised Harris-Benedict
// equations, branching on gender. Exactly two genders are recognized.
func computeBMR(gender string, weightKG, heightCM float64, age int) (float64, error) {
	switch gender {
	case GenderMale:
		return 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*float64(age), nil
	case GenderFemale:
		return 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*float64(age), nil
	default:
		return 0, fmt.Errorf("%w: unknown gender %q", errInvalidInput, gender)
	}
}

// computeTDEE scales BMR by the activity multiplier. An unrecognized activity
// level is an error — there is deliberately no default multiplier.
func computeTDEE(bmr float64, activityLevel string) (float64, error) {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", errInvalidInput, activityLevel)
	}
	return bmr * mult, nil
}

// computeCalorieTarget adjusts TDEE for the goal: a 500 kcal deficit for
// weight loss (~1 lb/week), a 300 kcal surplus for muscle gain, unchanged
// otherwise.
func computeCalorieTarget(tdee float64, goal string) (float64, error) {
	switch goal {
	case GoalLoseWeight:
		return tdee - 500, nil
	case GoalGainMuscle:
		return tdee + 300, nil
	case GoalMaintain, GoalImproveHealth:
		return tdee, nil
	default:
		return 0, fmt.Errorf("%w: unknown goal %q", errInvalidInput, goal)
	}
}

// computeBMI returns weight/height² (kg/m²) and its category. Thresholds are
// half-open: 18.5 is Normal, 25.0 is Overweight, 30.0 is Obese.
func computeBMI(weightKG, heightCM float64) (float64, string) {
	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)

	var category string
	switch {
	case bmi < 18.5:
		category = BMIUnderweight
	case bmi < 25:
		category = BMINormal
	case bmi < 30:
		category = BMIOverweight
	default:
		category = BMIObese
	}
	return bmi, category
}

// computeWaterTarget returns the daily water goal in milliliters:
// 35 ml per kilogram of body weight, with no activity or climate adjustment.
func computeWaterTarget(weightKG float64) float64 {
	return weightKG * 35
}

// computeMacros splits the calorie target across carbs/protein/fat using the
// diet's fixed ratios. An unknown diet type silently uses the Balanced split —
// the one place a bad enum is tolerated, so the dashboard always renders.
// Invariant: each macro's Calories equals calorieTarget × ratio (grams are
// derived first, then multiplied back by the same density).
func computeMacros(calorieTarget float64, dietType string) map[string]macroTarget {
	split, ok := macroSplits[dietType]
	if !ok {
		split = macroSplits[DietBalanced]
	}

	macros := make(map[string]macroTarget, len(split))
	for name, ratio := range split {
		grams := calorieTarget * ratio / kcalPerGram[name]
		macros[name] = macroTarget{
			Ratio:    ratio,
			Grams:    grams,
			Calories: grams * kcalPerGram[name],
		}
	}
	return macros
}

// evaluateProfile runs the full engine pipeline for one validated profile.
// Pure and side-effect-free — safe to call repeatedly and concurrently.
func evaluateProfile(p profile) (nutritionResult, error) {
	bmr, err := computeBMR(p.Gender, p.WeightKG, p.HeightCM, p.Age)
	if err != nil {
		return nutritionResult{}, err
	}
	tdee, err := computeTDEE(bmr, p.ActivityLevel)
	if err != nil {
		return nutritionResult{}, err
	}
	target, err := computeCalorieTarget(tdee, p.Goal)
	if err != nil {
		return nutritionResult{}, err
	}
	bmi, category := computeBMI(p.WeightKG, p.HeightCM)

	return nutritionResult{
		BMR:                bmr,
		TDEE:               tdee,
		DailyCalorieTarget: target,
		BMI:                bmi,
		BMICategory:        category,
		WaterTargetML:      computeWaterTarget(p.WeightKG),
		Macros:             computeMacros(target, p.DietType),
	}, nil
}
