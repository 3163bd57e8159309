package storage

import (
	"testing"

	"github.com/bradykim7/mealplanner/internal/models"
)

func TestGroupFoods(t *testing.T) {
	foods := []models.Food{
		*models.NewFood("Oatmeal", 320, models.CategoryBreakfast, "seed"),
		*models.NewFood("Chicken Salad", 450, models.CategoryLunch, "seed"),
		*models.NewFood("Pancakes", 520, models.CategoryBreakfast, "seed"),
		*models.NewFood("Salmon Bowl", 620, models.CategoryDinner, "seed"),
		*models.NewFood("Brownie", 300, models.Category("dessert"), "seed"),
	}

	catalog := GroupFoods(foods)

	if err := catalog.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	breakfast := catalog[models.CategoryBreakfast]
	if len(breakfast) != 2 || breakfast[0].DisplayName != "Oatmeal" || breakfast[1].DisplayName != "Pancakes" {
		t.Fatalf("unexpected breakfast order %+v", breakfast)
	}
	if _, ok := catalog[models.Category("dessert")]; ok {
		t.Fatal("unknown categories must be skipped")
	}
	if catalog.Size() != 4 {
		t.Fatalf("expected 4 items, got %d", catalog.Size())
	}
}

func TestGroupFoodsEmpty(t *testing.T) {
	if got := GroupFoods(nil); got.Size() != 0 {
		t.Fatalf("expected empty catalog, got %d items", got.Size())
	}
}
