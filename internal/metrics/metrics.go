// Package metrics computes body metrics and calorie targets from a user profile.
package metrics

import (
	"errors"
	"fmt"

	"github.com/bradykim7/mealplanner/internal/models"
)

var (
	ErrDivisionByZero       = errors.New("height must not be zero")
	ErrUnknownActivityLevel = errors.New("unknown activity level")
	ErrUnknownGoal          = errors.New("unknown goal")
)

// goalAdjustment is the daily calorie shift applied for a weight-change goal
const goalAdjustment = 500.0

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityVery:      1.725,
	models.ActivitySuper:     1.9,
}

// BMI returns weight (kg) divided by the square of height (m).
func BMI(weight, height float64) (float64, error) {
	if height == 0 {
		return 0, ErrDivisionByZero
	}
	return weight / (height * height), nil
}

// BMR estimates the basal metabolic rate (Harris-Benedict, revised).
// Height is taken in meters and converted to centimeters for the formula.
func BMR(weight, height float64, age int, gender models.Gender) float64 {
	heightCm := height * 100
	if gender == models.GenderMale {
		return 88.362 + 13.397*weight + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weight + 3.098*heightCm - 4.33*float64(age)
}

// DailyCalorieNeed scales the BMR by the multiplier for the activity level.
func DailyCalorieNeed(bmr float64, level models.ActivityLevel) (float64, error) {
	mult, ok := activityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownActivityLevel, int(level))
	}
	return bmr * mult, nil
}

// AdjustForGoal shifts the daily need by 500 kcal up for gain and down for loss.
func AdjustForGoal(dailyNeed float64, goal models.Goal) (float64, error) {
	switch goal {
	case models.GoalGain:
		return dailyNeed + goalAdjustment, nil
	case models.GoalLoss:
		return dailyNeed - goalAdjustment, nil
	case models.GoalMaintain:
		return dailyNeed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGoal, goal)
}

// BMICategory maps a BMI value to its WHO band.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// Result bundles every metric computed for one profile
type Result struct {
	BMI              float64
	BMR              float64
	DailyCalorieNeed float64
	AdjustedTarget   float64
}

// Compute runs the full metric chain for a profile.
func Compute(p models.UserProfile) (Result, error) {
	bmi, err := BMI(p.Weight, p.Height)
	if err != nil {
		return Result{}, err
	}
	bmr := BMR(p.Weight, p.Height, p.Age, p.Gender)
	dnc, err := DailyCalorieNeed(bmr, p.ActivityLevel)
	if err != nil {
		return Result{}, err
	}
	target, err := AdjustForGoal(dnc, p.Goal)
	if err != nil {
		return Result{}, err
	}
	return Result{
		BMI:              bmi,
		BMR:              bmr,
		DailyCalorieNeed: dnc,
		AdjustedTarget:   target,
	}, nil
}
