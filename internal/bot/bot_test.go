package bot

import (
	"context"
	"reflect"
	"testing"

	"github.com/bradykim7/mealplanner/internal/bot/commands"
	"github.com/bradykim7/mealplanner/internal/models"
	"go.uber.org/zap"
)

type stubPlanner struct{}

func (stubPlanner) Plan(ctx context.Context, in models.ProfileInput) (*models.MealPlanResult, error) {
	return &models.MealPlanResult{}, nil
}

type stubSource struct{}

func (stubSource) Load(ctx context.Context) (models.Catalog, error) { return models.Catalog{}, nil }
func (stubSource) Name() string                                    { return "stub" }

type stubStore struct{}

func (stubStore) SaveFood(ctx context.Context, food *models.Food) error { return nil }
func (stubStore) DeleteFood(ctx context.Context, name string, category models.Category) error {
	return nil
}

func TestRegisterCommandsWithoutStore(t *testing.T) {
	registry := commands.NewRegistry("!", zap.NewNop())
	registerCommands(registry, "!", stubPlanner{}, stubSource{}, nil, zap.NewNop())

	want := []string{"help", "mealplan", "menu", "ping", "도움말", "메뉴", "식단", "아메추", "저메추", "점메추"}
	if got := registry.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRegisterCommandsWithStore(t *testing.T) {
	registry := commands.NewRegistry("!", zap.NewNop())
	registerCommands(registry, "!", stubPlanner{}, stubSource{}, stubStore{}, zap.NewNop())

	for _, name := range []string{"메뉴등록", "메뉴삭제"} {
		if _, ok := registry.Lookup(name); !ok {
			t.Fatalf("expected %s to be registered", name)
		}
	}
}
