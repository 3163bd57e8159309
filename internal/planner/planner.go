// Package planner turns a user profile and a food catalog into a daily meal plan.
package planner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/bradykim7/mealplanner/internal/catalog"
	"github.com/bradykim7/mealplanner/internal/metrics"
	"github.com/bradykim7/mealplanner/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Planner is the single entry point for plan generation. Every call loads
// its own catalog and uses its own random source, so calls may run concurrently.
type Planner struct {
	source        catalog.Source
	log           *zap.Logger
	maxIterations int
	newRand       func() *rand.Rand
}

// New creates a planner reading the catalog from source
func New(source catalog.Source, maxIterations int, log *zap.Logger) *Planner {
	return &Planner{
		source:        source,
		log:           log.Named("planner"),
		maxIterations: maxIterations,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Plan validates raw input and generates a plan. Invalid input fails with
// ErrValidation before the catalog is touched.
func (p *Planner) Plan(ctx context.Context, in models.ProfileInput) (*models.MealPlanResult, error) {
	profile, err := models.ParseProfile(in)
	if err != nil {
		p.log.Info("Rejected profile", zap.Error(err))
		return nil, err
	}
	return p.Generate(ctx, profile)
}

// Generate computes the metrics for profile and selects meals for the adjusted target
func (p *Planner) Generate(ctx context.Context, profile models.UserProfile) (*models.MealPlanResult, error) {
	id := uuid.NewString()
	log := p.log.With(zap.String("plan_id", id))

	m, err := metrics.Compute(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	start := time.Now()
	foods, err := p.source.Load(ctx)
	if err != nil {
		log.Error("Failed to load catalog", zap.String("source", p.source.Name()), zap.Error(err))
		return nil, err
	}
	log.Debug("Loaded catalog",
		zap.String("source", p.source.Name()),
		zap.Int("items", foods.Size()),
		zap.Duration("elapsed", time.Since(start)))

	sel, err := NewSelector(p.newRand(), p.maxIterations).Select(foods, m.AdjustedTarget)
	if err != nil {
		log.Warn("Meal selection failed", zap.Float64("target", m.AdjustedTarget), zap.Error(err))
		return nil, err
	}

	plan := Assemble(id, profile, m, sel)
	log.Info("Generated meal plan",
		zap.Float64("target", plan.AdjustedCalorieTarget),
		zap.Float64("total", plan.TotalCalories),
		zap.Int("draws", sel.Iterations),
		zap.Int("meals", len(plan.Breakfast)+len(plan.Lunch)+len(plan.Dinner)))

	return plan, nil
}
