package planner

import (
	"math"

	"github.com/bradykim7/mealplanner/internal/metrics"
	"github.com/bradykim7/mealplanner/internal/models"
)

// Assemble combines the metrics and the meal selection into a plan.
// Only the metrics are rounded; meals keep their catalog values.
func Assemble(id string, profile models.UserProfile, m metrics.Result, sel *Selection) *models.MealPlanResult {
	return &models.MealPlanResult{
		ID:                    id,
		Profile:               profile,
		BMI:                   round2(m.BMI),
		BMICategory:           metrics.BMICategory(m.BMI),
		BMR:                   round2(m.BMR),
		DailyCalorieNeed:      round2(m.DailyCalorieNeed),
		AdjustedCalorieTarget: round2(m.AdjustedTarget),
		Breakfast:             sel.Meals[models.CategoryBreakfast],
		Lunch:                 sel.Meals[models.CategoryLunch],
		Dinner:                sel.Meals[models.CategoryDinner],
		TotalCalories:         round2(sel.Total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
