package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bradykim7/mealplanner/internal/models"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// PlanGenerator는 planner.Planner가 구현합니다
type PlanGenerator interface {
	Plan(ctx context.Context, in models.ProfileInput) (*models.MealPlanResult, error)
}

// PlanCommand는 식단 생성 명령어를 처리합니다
type PlanCommand struct {
	log     *zap.Logger
	prefix  string
	planner PlanGenerator
}

// NewPlanCommand는 새로운 식단 명령어 핸들러를 생성합니다
func NewPlanCommand(log *zap.Logger, planner PlanGenerator, prefix string) *PlanCommand {
	return &PlanCommand{
		log:     log.Named("plan-command"),
		prefix:  prefix,
		planner: planner,
	}
}

// Help는 사용법을 반환합니다
func (c *PlanCommand) Help() string {
	return "mealplan <체중kg> <키m> <나이> [male|female] [활동량 1-5] [maintain|gain|loss] - 하루 식단 추천"
}

// ParsePlanArgs는 위치 인자를 프로필 입력 필드로 변환합니다
func ParsePlanArgs(args []string) (models.ProfileInput, error) {
	if len(args) < 3 || len(args) > 6 {
		return models.ProfileInput{}, fmt.Errorf("%w: expected 3 to 6 arguments, got %d", models.ErrValidation, len(args))
	}

	in := models.ProfileInput{
		Weight: args[0],
		Height: args[1],
		Age:    args[2],
	}
	if len(args) > 3 {
		in.Gender = args[3]
	}
	if len(args) > 4 {
		in.ActivityLevel = args[4]
	}
	if len(args) > 5 {
		in.Goal = args[5]
	}
	return in, nil
}

// Execute는 식단을 생성하고 임베드로 응답합니다
func (c *PlanCommand) Execute(ctx context.Context, r Responder, m *discordgo.MessageCreate, args []string) {
	in, err := ParsePlanArgs(args)
	if err != nil {
		_ = r.Send(m.ChannelID, "사용법: "+c.prefix+c.Help())
		return
	}

	plan, err := c.planner.Plan(ctx, in)
	if err != nil {
		_ = r.Send(m.ChannelID, planErrorMessage(err))
		if !errors.Is(err, models.ErrValidation) {
			c.log.Error("Failed to generate meal plan", zap.Error(err), zap.String("username", m.Author.Username))
		}
		return
	}

	if err := r.SendEmbed(m.ChannelID, PlanEmbed(plan, m.Author.Username)); err != nil {
		c.log.Error("Failed to send meal plan", zap.Error(err))
	}
}

func planErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrValidation):
		return "입력값을 확인해주세요: " + err.Error()
	case errors.Is(err, models.ErrSelectionExhausted):
		return "목표 칼로리에 맞는 메뉴 조합을 찾지 못했습니다."
	case errors.Is(err, models.ErrFetch), errors.Is(err, models.ErrInvalidCatalog):
		return "메뉴 데이터를 불러오는 중 오류가 발생했습니다."
	}
	return "식단을 생성하는 중 오류가 발생했습니다."
}

// PlanEmbed는 식단을 Discord 임베드로 만듭니다
func PlanEmbed(plan *models.MealPlanResult, requestedBy string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "BMI", Value: fmt.Sprintf("%.2f (%s)", plan.BMI, plan.BMICategory), Inline: true},
		{Name: "BMR", Value: fmt.Sprintf("%.2f kcal", plan.BMR), Inline: true},
		{Name: "Daily Calorie Needs", Value: fmt.Sprintf("%.2f kcal", plan.DailyCalorieNeed), Inline: true},
		{Name: "Adjusted Calories", Value: fmt.Sprintf("%.2f kcal", plan.AdjustedCalorieTarget), Inline: true},
	}

	for _, category := range models.Categories {
		meals := plan.Meals(category)
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%g kcal)", categoryTitle(category), models.SumCalories(meals)),
			Value: formatMeals(meals),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "오늘의 식단",
		Description: fmt.Sprintf("총 **%.0f kcal** / 목표 %.0f kcal", plan.TotalCalories, plan.AdjustedCalorieTarget),
		Color:       0x00CC66, // 녹색
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", requestedBy),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func formatMeals(items []models.FoodItem) string {
	if len(items) == 0 {
		return "-"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s - %g cal", item.DisplayName, item.Calories))
	}
	return strings.Join(lines, "\n")
}

func categoryTitle(category models.Category) string {
	switch category {
	case models.CategoryBreakfast:
		return "Breakfast"
	case models.CategoryLunch:
		return "Lunch"
	case models.CategoryDinner:
		return "Dinner"
	}
	return string(category)
}
