package models

// MealPlanResult is one generated daily plan. It is built per request and never stored.
type MealPlanResult struct {
	ID                    string      `json:"id"`
	Profile               UserProfile `json:"profile"`
	BMI                   float64     `json:"bmi"`
	BMICategory           string      `json:"bmi_category"`
	BMR                   float64     `json:"bmr"`
	DailyCalorieNeed      float64     `json:"daily_calorie_need"`
	AdjustedCalorieTarget float64     `json:"adjusted_calorie_target"`
	Breakfast             []FoodItem  `json:"breakfast"`
	Lunch                 []FoodItem  `json:"lunch"`
	Dinner                []FoodItem  `json:"dinner"`
	TotalCalories         float64     `json:"total_calories"`
}

// Meals returns the selections of one category
func (p *MealPlanResult) Meals(category Category) []FoodItem {
	switch category {
	case CategoryBreakfast:
		return p.Breakfast
	case CategoryLunch:
		return p.Lunch
	case CategoryDinner:
		return p.Dinner
	}
	return nil
}

// SumCalories adds up the calories of the given items
func SumCalories(items []FoodItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Calories
	}
	return total
}
