package planner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bradykim7/mealplanner/internal/models"
)

// selectionWindow is how far below the target the selection may stop
const selectionWindow = 100.0

// DefaultMaxIterations bounds the number of random draws per selection
const DefaultMaxIterations = 10000

// Selection is the outcome of one selector run
type Selection struct {
	Meals      map[models.Category][]models.FoodItem
	Total      float64
	Iterations int
}

// Selector greedily draws random meals until the total lands in
// [target-100, target]. It is not safe for concurrent use.
type Selector struct {
	rng           *rand.Rand
	maxIterations int
}

// NewSelector creates a selector drawing from rng
func NewSelector(rng *rand.Rand, maxIterations int) *Selector {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Selector{rng: rng, maxIterations: maxIterations}
}

// Select picks one seed meal per category and keeps adding meals that fit the
// remaining budget. The total never exceeds target. It fails with
// ErrSelectionExhausted when the draw budget runs out or when no meal in the
// catalog can fit anymore.
func (s *Selector) Select(catalog models.Catalog, target float64) (*Selection, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	seedFloor := 0.0
	smallest := math.Inf(1)
	for _, category := range models.Categories {
		lightest := minCalories(catalog[category])
		seedFloor += lightest
		smallest = math.Min(smallest, lightest)
	}
	if seedFloor > target {
		return nil, fmt.Errorf("%w: the lightest breakfast, lunch and dinner add up to %.0f kcal, above the %.0f kcal target",
			models.ErrSelectionExhausted, seedFloor, target)
	}

	sel, err := s.seed(catalog, target)
	if err != nil {
		return nil, err
	}

	for sel.Total < target-selectionWindow {
		if target-sel.Total < smallest {
			return nil, fmt.Errorf("%w: no meal fits the remaining %.0f kcal",
				models.ErrSelectionExhausted, target-sel.Total)
		}
		if sel.Iterations >= s.maxIterations {
			return nil, fmt.Errorf("%w: gave up after %d draws at %.0f of %.0f kcal",
				models.ErrSelectionExhausted, sel.Iterations, sel.Total, target)
		}
		sel.Iterations++

		category := s.pickCategory()
		item := s.draw(catalog[category])
		if sel.Total+item.Calories <= target {
			sel.Meals[category] = append(sel.Meals[category], item)
			sel.Total += item.Calories
		}
	}

	return sel, nil
}

// seed draws one meal per category, redrawing while the seeds overshoot the target
func (s *Selector) seed(catalog models.Catalog, target float64) (*Selection, error) {
	iterations := 0
	for {
		iterations++

		meals := make(map[models.Category][]models.FoodItem, len(models.Categories))
		total := 0.0
		for _, category := range models.Categories {
			item := s.draw(catalog[category])
			meals[category] = []models.FoodItem{item}
			total += item.Calories
		}

		if total <= target {
			return &Selection{Meals: meals, Total: total, Iterations: iterations}, nil
		}
		if iterations >= s.maxIterations {
			return nil, fmt.Errorf("%w: no seed meals under %.0f kcal after %d draws",
				models.ErrSelectionExhausted, target, iterations)
		}
	}
}

// pickCategory draws breakfast, lunch or dinner with equal probability
func (s *Selector) pickCategory() models.Category {
	return models.Categories[s.rng.Intn(len(models.Categories))]
}

func (s *Selector) draw(items []models.FoodItem) models.FoodItem {
	return items[s.rng.Intn(len(items))]
}

func minCalories(items []models.FoodItem) float64 {
	lightest := math.Inf(1)
	for _, item := range items {
		lightest = math.Min(lightest, item.Calories)
	}
	return lightest
}
