package planner

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/bradykim7/mealplanner/internal/models"
)

func spreadCatalog() models.Catalog {
	items := func(prefix string) []models.FoodItem {
		var out []models.FoodItem
		for _, cal := range []float64{50, 90, 200, 350, 500, 700} {
			out = append(out, models.FoodItem{DisplayName: prefix, Calories: cal})
		}
		return out
	}
	return models.Catalog{
		models.CategoryBreakfast: items("breakfast"),
		models.CategoryLunch:     items("lunch"),
		models.CategoryDinner:    items("dinner"),
	}
}

func uniformCatalog(cal float64) models.Catalog {
	item := []models.FoodItem{{DisplayName: "Plate", Calories: cal}}
	return models.Catalog{
		models.CategoryBreakfast: item,
		models.CategoryLunch:     item,
		models.CategoryDinner:    item,
	}
}

func totalOf(sel *Selection) float64 {
	total := 0.0
	for _, items := range sel.Meals {
		total += models.SumCalories(items)
	}
	return total
}

func TestSelectStaysUnderTarget(t *testing.T) {
	catalog := spreadCatalog()
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		target := 1200 + rng.Float64()*2800

		sel, err := NewSelector(rng, DefaultMaxIterations).Select(catalog, target)
		if err != nil {
			t.Fatalf("seed %d target %.2f: %v", seed, target, err)
		}

		total := totalOf(sel)
		if total != sel.Total {
			t.Fatalf("seed %d: running total %v does not match meals %v", seed, sel.Total, total)
		}
		if total > target {
			t.Fatalf("seed %d: total %v exceeds target %v", seed, total, target)
		}
		if total < target-selectionWindow {
			t.Fatalf("seed %d: total %v more than 100 below target %v", seed, total, target)
		}
		if sel.Iterations > DefaultMaxIterations {
			t.Fatalf("seed %d: %d draws exceeds cap", seed, sel.Iterations)
		}
		for _, category := range models.Categories {
			if len(sel.Meals[category]) == 0 {
				t.Fatalf("seed %d: %s has no seed meal", seed, category)
			}
		}
	}
}

func TestSelectIsDeterministicForSeed(t *testing.T) {
	catalog := spreadCatalog()
	a, err := NewSelector(rand.New(rand.NewSource(42)), 0).Select(catalog, 2370.57)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	b, err := NewSelector(rand.New(rand.NewSource(42)), 0).Select(catalog, 2370.57)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different selections")
	}
}

func TestSelectSeedsAlreadyInWindow(t *testing.T) {
	sel, err := NewSelector(rand.New(rand.NewSource(1)), 0).Select(uniformCatalog(300), 950)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Total != 900 || sel.Iterations != 1 {
		t.Fatalf("expected only seeds (900 kcal, 1 draw), got %v kcal after %d", sel.Total, sel.Iterations)
	}
}

func TestSelectRedrawsOversizedSeeds(t *testing.T) {
	catalog := uniformCatalog(100)
	catalog[models.CategoryBreakfast] = []models.FoodItem{
		{DisplayName: "Feast", Calories: 2000},
		{DisplayName: "Toast", Calories: 100},
	}

	for seed := int64(1); seed <= 50; seed++ {
		sel, err := NewSelector(rand.New(rand.NewSource(seed)), 0).Select(catalog, 350)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got := sel.Meals[models.CategoryBreakfast][0].DisplayName; got != "Toast" {
			t.Fatalf("seed %d: expected Toast seed, got %s", seed, got)
		}
		if sel.Total > 350 {
			t.Fatalf("seed %d: total %v exceeds target", seed, sel.Total)
		}
	}
}

func TestSelectExhausted(t *testing.T) {
	tests := []struct {
		name    string
		catalog models.Catalog
		target  float64
		max     int
	}{
		{"seeds above target", uniformCatalog(600), 1500, 0},
		{"gap smaller than any meal", uniformCatalog(300), 1150, 0},
		{"draw cap reached", uniformCatalog(10), 1000, 5},
		{"negative target", uniformCatalog(50), -200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSelector(rand.New(rand.NewSource(7)), tt.max).Select(tt.catalog, tt.target)
			if !errors.Is(err, models.ErrSelectionExhausted) {
				t.Fatalf("expected ErrSelectionExhausted, got %v", err)
			}
		})
	}
}

func TestSelectRejectsNaNCalories(t *testing.T) {
	catalog := uniformCatalog(300)
	catalog[models.CategoryBreakfast] = append(catalog[models.CategoryBreakfast], models.FoodItem{DisplayName: "Mystery", Calories: math.NaN()})

	sel, err := NewSelector(rand.New(rand.NewSource(7)), 0).Select(catalog, 1150)
	if !errors.Is(err, models.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
	if sel != nil {
		t.Fatalf("expected no selection, got %+v", sel)
	}
}

func TestSelectRejectsInvalidCatalog(t *testing.T) {
	catalog := uniformCatalog(300)
	delete(catalog, models.CategoryLunch)

	_, err := NewSelector(rand.New(rand.NewSource(1)), 0).Select(catalog, 2000)
	if !errors.Is(err, models.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestPickCategoryCoversAll(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(3)), 0)
	counts := map[models.Category]int{}
	for i := 0; i < 3000; i++ {
		counts[s.pickCategory()]++
	}
	for _, category := range models.Categories {
		if counts[category] < 800 || counts[category] > 1200 {
			t.Fatalf("category %s drawn %d times out of 3000", category, counts[category])
		}
	}
}
