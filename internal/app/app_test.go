package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bradykim7/mealplanner/internal/models"
	"github.com/bradykim7/mealplanner/pkg/config"
	"go.uber.org/zap"
)

func TestNewWithFileCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food.json")
	doc := `{"breakfast":[{"Display_Name":"Toast","Calories":50}],"lunch":[{"Display_Name":"Soup","Calories":50}],"dinner":[{"Display_Name":"Stew","Calories":50}]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := &config.Config{CatalogSource: config.CatalogSourceFile, CatalogPath: path, MaxSelectionIterations: 10000}
	a, err := New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	if a.Foods != nil {
		t.Fatal("file catalog must not open a food repository")
	}

	plan, err := a.Planner.Plan(context.Background(), models.ProfileInput{Weight: "70", Height: "1.75", Age: "25"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan.TotalCalories > plan.AdjustedCalorieTarget {
		t.Fatalf("total %v exceeds target %v", plan.TotalCalories, plan.AdjustedCalorieTarget)
	}
}

func TestNewUnknownSource(t *testing.T) {
	if _, err := New(context.Background(), &config.Config{CatalogSource: "ftp"}, zap.NewNop()); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
