package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Gender selects the BMR formula
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel runs from 1 (sedentary) to 5 (super active)
type ActivityLevel int

const (
	ActivitySedentary ActivityLevel = iota + 1
	ActivityLight
	ActivityModerate
	ActivityVery
	ActivitySuper
)

// Valid reports whether the level is one of the five known levels
func (a ActivityLevel) Valid() bool {
	return a >= ActivitySedentary && a <= ActivitySuper
}

// String returns the label shown next to the level
func (a ActivityLevel) String() string {
	switch a {
	case ActivitySedentary:
		return "Sedentary"
	case ActivityLight:
		return "Lightly Active"
	case ActivityModerate:
		return "Moderately Active"
	case ActivityVery:
		return "Very Active"
	case ActivitySuper:
		return "Super Active"
	}
	return fmt.Sprintf("ActivityLevel(%d)", int(a))
}

// Goal shifts the daily calorie need
type Goal string

const (
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
	GoalLoss     Goal = "loss"
)

// UserProfile is a validated set of inputs for one calculation.
// Height is in meters, weight in kilograms.
type UserProfile struct {
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// ProfileInput holds the raw form values before validation
type ProfileInput struct {
	Weight        string
	Height        string
	Age           string
	Gender        string
	ActivityLevel string
	Goal          string
}

// ParseProfile validates raw input and builds a UserProfile.
// Empty gender, activity level and goal fall back to male, 1 and maintain.
func ParseProfile(in ProfileInput) (UserProfile, error) {
	weight, err := parsePositiveFloat("weight", in.Weight)
	if err != nil {
		return UserProfile{}, err
	}
	height, err := parsePositiveFloat("height", in.Height)
	if err != nil {
		return UserProfile{}, err
	}

	ageStr := strings.TrimSpace(in.Age)
	if ageStr == "" {
		return UserProfile{}, fmt.Errorf("%w: age is required", ErrValidation)
	}
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: age must be a whole number", ErrValidation)
	}
	if age <= 0 {
		return UserProfile{}, fmt.Errorf("%w: age must be positive", ErrValidation)
	}

	gender := GenderMale
	switch g := strings.ToLower(strings.TrimSpace(in.Gender)); g {
	case "", "male", "m":
	case "female", "f":
		gender = GenderFemale
	default:
		return UserProfile{}, fmt.Errorf("%w: unknown gender %q", ErrValidation, in.Gender)
	}

	level := ActivitySedentary
	if s := strings.TrimSpace(in.ActivityLevel); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || !ActivityLevel(n).Valid() {
			return UserProfile{}, fmt.Errorf("%w: activity level must be between 1 and 5", ErrValidation)
		}
		level = ActivityLevel(n)
	}

	goal := GoalMaintain
	switch g := strings.ToLower(strings.TrimSpace(in.Goal)); g {
	case "", "maintain":
	case "gain":
		goal = GoalGain
	case "loss", "lose":
		goal = GoalLoss
	default:
		return UserProfile{}, fmt.Errorf("%w: unknown goal %q", ErrValidation, in.Goal)
	}

	return UserProfile{
		Weight:        weight,
		Height:        height,
		Age:           age,
		Gender:        gender,
		ActivityLevel: level,
		Goal:          goal,
	}, nil
}

func parsePositiveFloat(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a number", ErrValidation, field)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrValidation, field)
	}
	return v, nil
}
