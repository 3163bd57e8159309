package planner

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bradykim7/mealplanner/internal/catalog"
	"github.com/bradykim7/mealplanner/internal/metrics"
	"github.com/bradykim7/mealplanner/internal/models"
	"go.uber.org/zap"
)

type countingSource struct {
	catalog models.Catalog
	err     error
	loads   int
}

func (s *countingSource) Load(ctx context.Context) (models.Catalog, error) {
	s.loads++
	return s.catalog, s.err
}

func (s *countingSource) Name() string {
	return "counting"
}

func setupPlanner(t *testing.T, src catalog.Source) *Planner {
	t.Helper()
	p := New(src, DefaultMaxIterations, zap.NewNop())
	var seed int64
	p.newRand = func() *rand.Rand {
		seed++
		return rand.New(rand.NewSource(seed))
	}
	return p
}

func TestPlanEndToEnd(t *testing.T) {
	src := &countingSource{catalog: spreadCatalog()}
	p := setupPlanner(t, src)

	in := models.ProfileInput{Weight: "70", Height: "1.75", Age: "25", Gender: "male", ActivityLevel: "2", Goal: "maintain"}

	for i := 0; i < 20; i++ {
		plan, err := p.Plan(context.Background(), in)
		if err != nil {
			t.Fatalf("plan: %v", err)
		}

		if plan.BMI != 22.86 {
			t.Fatalf("expected bmi 22.86, got %v", plan.BMI)
		}
		if plan.BMR != 1724.05 {
			t.Fatalf("expected bmr 1724.05, got %v", plan.BMR)
		}
		rawBMR := metrics.BMR(70, 1.75, 25, models.GenderMale)
		if want := round2(rawBMR * 1.375); plan.DailyCalorieNeed != want {
			t.Fatalf("expected dnc %v, got %v", want, plan.DailyCalorieNeed)
		}
		if plan.AdjustedCalorieTarget != plan.DailyCalorieNeed {
			t.Fatalf("maintain goal must keep the target, got %v vs %v", plan.AdjustedCalorieTarget, plan.DailyCalorieNeed)
		}
		if plan.BMICategory != "Normal weight" {
			t.Fatalf("unexpected bmi category %s", plan.BMICategory)
		}

		total := models.SumCalories(plan.Breakfast) + models.SumCalories(plan.Lunch) + models.SumCalories(plan.Dinner)
		if total > rawBMR*1.375 || total < rawBMR*1.375-100 {
			t.Fatalf("total %v not within 100 below target %v", total, rawBMR*1.375)
		}
		if math.Abs(total-plan.TotalCalories) > 0.005 {
			t.Fatalf("total calories %v does not match meals %v", plan.TotalCalories, total)
		}
		if plan.ID == "" {
			t.Fatal("plan ID is empty")
		}
	}

	if src.loads != 20 {
		t.Fatalf("expected one catalog load per plan, got %d", src.loads)
	}
}

func TestPlanValidationSkipsFetch(t *testing.T) {
	src := &countingSource{catalog: spreadCatalog()}
	p := setupPlanner(t, src)

	_, err := p.Plan(context.Background(), models.ProfileInput{Height: "1.75", Age: "25"})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if src.loads != 0 {
		t.Fatalf("expected no catalog load, got %d", src.loads)
	}
}

func TestPlanFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := setupPlanner(t, catalog.NewHTTPSource(srv.URL+"/food.json", 0, zap.NewNop()))

	plan, err := p.Plan(context.Background(), models.ProfileInput{Weight: "70", Height: "1.75", Age: "25"})
	if !errors.Is(err, models.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if plan != nil {
		t.Fatalf("expected no plan, got %+v", plan)
	}
}

func TestGenerateSelectionExhausted(t *testing.T) {
	p := setupPlanner(t, &countingSource{catalog: uniformCatalog(900)})

	profile := models.UserProfile{
		Weight: 50, Height: 1.6, Age: 30,
		Gender: models.GenderFemale, ActivityLevel: models.ActivitySedentary, Goal: models.GoalLoss,
	}
	_, err := p.Generate(context.Background(), profile)
	if !errors.Is(err, models.ErrSelectionExhausted) {
		t.Fatalf("expected ErrSelectionExhausted, got %v", err)
	}
}

func TestGenerateInvalidCatalog(t *testing.T) {
	broken := spreadCatalog()
	broken[models.CategoryDinner] = nil
	p := setupPlanner(t, &countingSource{catalog: broken})

	profile := models.UserProfile{
		Weight: 70, Height: 1.75, Age: 25,
		Gender: models.GenderMale, ActivityLevel: models.ActivityLight, Goal: models.GoalMaintain,
	}
	if _, err := p.Generate(context.Background(), profile); !errors.Is(err, models.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestAssembleRounds(t *testing.T) {
	sel := &Selection{
		Meals: map[models.Category][]models.FoodItem{
			models.CategoryBreakfast: {{DisplayName: "Oatmeal", Calories: 320}},
			models.CategoryLunch:     {{DisplayName: "Salad", Calories: 450}},
			models.CategoryDinner:    {{DisplayName: "Salmon", Calories: 620}, {DisplayName: "Rice", Calories: 200}},
		},
		Total: 1590,
	}
	m := metrics.Result{BMI: 22.857142, BMR: 1724.052, DailyCalorieNeed: 2370.5715, AdjustedTarget: 1870.5715}

	plan := Assemble("plan-1", models.UserProfile{}, m, sel)

	if plan.BMI != 22.86 || plan.BMR != 1724.05 || plan.DailyCalorieNeed != 2370.57 || plan.AdjustedCalorieTarget != 1870.57 {
		t.Fatalf("unexpected rounding %+v", plan)
	}
	if len(plan.Dinner) != 2 || plan.Dinner[1].DisplayName != "Rice" {
		t.Fatalf("dinner order not kept: %+v", plan.Dinner)
	}
	if len(plan.Meals(models.CategoryLunch)) != 1 {
		t.Fatal("expected one lunch")
	}
}
