package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bradykim7/mealplanner/internal/catalog"
	"github.com/bradykim7/mealplanner/internal/models"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// FoodStore는 storage.FoodRepository가 구현합니다
type FoodStore interface {
	SaveFood(ctx context.Context, food *models.Food) error
	DeleteFood(ctx context.Context, name string, category models.Category) error
}

// MenuCommand는 메뉴 목록을 보여줍니다
type MenuCommand struct {
	log     *zap.Logger
	catalog catalog.Source
}

// NewMenuCommand는 새로운 메뉴 목록 명령어를 생성합니다
func NewMenuCommand(log *zap.Logger, source catalog.Source) *MenuCommand {
	return &MenuCommand{log: log.Named("menu-command"), catalog: source}
}

// Help는 사용법을 반환합니다
func (c *MenuCommand) Help() string {
	return "메뉴 [아침|점심|저녁] - 메뉴 목록"
}

// Execute는 지정한 식사 구분의 메뉴를, 인자가 없으면 전체 메뉴를 보여줍니다
func (c *MenuCommand) Execute(ctx context.Context, r Responder, m *discordgo.MessageCreate, args []string) {
	categories := models.Categories
	if len(args) > 0 {
		category, err := models.ParseCategory(args[0])
		if err != nil {
			_ = r.Send(m.ChannelID, "아침, 점심, 저녁 중 하나를 입력해주세요.")
			return
		}
		categories = []models.Category{category}
	}

	foods, err := c.catalog.Load(ctx)
	if err != nil {
		c.log.Error("Failed to load catalog", zap.Error(err))
		_ = r.Send(m.ChannelID, "메뉴 목록을 가져오는 중 오류가 발생했습니다.")
		return
	}

	var sections []string
	for _, category := range categories {
		items := foods[category]
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, fmt.Sprintf("%s(%g)", item.DisplayName, item.Calories))
		}
		sections = append(sections, fmt.Sprintf("**%s(%d)**: %s", categoryTitle(category), len(items), strings.Join(names, ", ")))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "메뉴 목록",
		Description: truncate(strings.Join(sections, "\n\n"), 4000),
		Color:       0x00FF00, // 녹색
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", m.Author.Username),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	_ = r.SendEmbed(m.ChannelID, embed)
}

// RecommendCommand는 한 끼 메뉴를 무작위로 추천합니다 (아메추/점메추/저메추)
type RecommendCommand struct {
	log      *zap.Logger
	catalog  catalog.Source
	category models.Category

	mu     sync.Mutex
	random *rand.Rand
}

// NewRecommendCommand는 식사 구분 하나에 대한 추천 명령어를 생성합니다
func NewRecommendCommand(log *zap.Logger, source catalog.Source, category models.Category) *RecommendCommand {
	return &RecommendCommand{
		log:      log.Named("recommend-command"),
		catalog:  source,
		category: category,
		random:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Help는 사용법을 반환합니다
func (c *RecommendCommand) Help() string {
	return fmt.Sprintf("%s - %s 메뉴 하나 추천", RecommendCommandName(c.category), categoryTitle(c.category))
}

// Execute는 해당 식사 구분에서 메뉴 하나를 무작위로 고릅니다
func (c *RecommendCommand) Execute(ctx context.Context, r Responder, m *discordgo.MessageCreate, args []string) {
	foods, err := c.catalog.Load(ctx)
	if err != nil || len(foods[c.category]) == 0 {
		c.log.Error("Failed to get random food", zap.Error(err), zap.String("category", string(c.category)))
		_ = r.Send(m.ChannelID, "메뉴 추천을 가져오는 중 오류가 발생했습니다.")
		return
	}

	items := foods[c.category]
	c.mu.Lock()
	item := items[c.random.Intn(len(items))]
	c.mu.Unlock()

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("오늘의 %s 메뉴 추천", categoryTitle(c.category)),
		Description: fmt.Sprintf("**%s** (%g kcal) 어떠세요?", item.DisplayName, item.Calories),
		Color:       0xFF9900, // 주황색
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("요청자: %s", m.Author.Username),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	_ = r.SendEmbed(m.ChannelID, embed)
}

// RecommendCommandName은 식사 구분별 추천 명령어 이름을 반환합니다
func RecommendCommandName(category models.Category) string {
	switch category {
	case models.CategoryBreakfast:
		return "아메추"
	case models.CategoryLunch:
		return "점메추"
	}
	return "저메추"
}

// RegisterFoodCommand는 저장된 카탈로그에 메뉴를 추가합니다 (메뉴등록)
type RegisterFoodCommand struct {
	log   *zap.Logger
	store FoodStore
}

// NewRegisterFoodCommand는 새로운 메뉴 등록 명령어를 생성합니다
func NewRegisterFoodCommand(log *zap.Logger, store FoodStore) *RegisterFoodCommand {
	return &RegisterFoodCommand{log: log.Named("register-food-command"), store: store}
}

// Help는 사용법을 반환합니다
func (c *RegisterFoodCommand) Help() string {
	return "메뉴등록 <아침|점심|저녁> <칼로리> <이름> - 메뉴 등록"
}

// Execute는 인자를 검증하고 메뉴를 저장합니다
func (c *RegisterFoodCommand) Execute(ctx context.Context, r Responder, m *discordgo.MessageCreate, args []string) {
	if len(args) < 3 {
		_ = r.Send(m.ChannelID, "사용법: "+c.Help())
		return
	}

	category, err := models.ParseCategory(args[0])
	if err != nil {
		_ = r.Send(m.ChannelID, "아침, 점심, 저녁 중 하나를 입력해주세요.")
		return
	}

	calories, err := strconv.ParseFloat(args[1], 64)
	if err != nil || !models.ValidCalories(calories) {
		_ = r.Send(m.ChannelID, "칼로리는 0보다 큰 숫자여야 합니다.")
		return
	}

	name := strings.Join(args[2:], " ")
	food := models.NewFood(name, calories, category, m.Author.Username)

	if err := c.store.SaveFood(ctx, food); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			_ = r.Send(m.ChannelID, fmt.Sprintf("'%s' 메뉴는 이미 등록되어 있습니다.", name))
			return
		}
		c.log.Error("Failed to save food", zap.Error(err), zap.String("name", name))
		_ = r.Send(m.ChannelID, "메뉴를 등록하는 중 오류가 발생했습니다.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "메뉴 등록 완료",
		Description: fmt.Sprintf("'%s' (%g kcal) 메뉴가 %s 목록에 등록되었습니다.", name, calories, categoryTitle(category)),
		Color:       0x00FF00, // 녹색
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Added by %s", m.Author.Username),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	_ = r.SendEmbed(m.ChannelID, embed)
}

// DeleteFoodCommand는 저장된 카탈로그에서 메뉴를 삭제합니다 (메뉴삭제)
type DeleteFoodCommand struct {
	log   *zap.Logger
	store FoodStore
}

// NewDeleteFoodCommand는 새로운 메뉴 삭제 명령어를 생성합니다
func NewDeleteFoodCommand(log *zap.Logger, store FoodStore) *DeleteFoodCommand {
	return &DeleteFoodCommand{log: log.Named("delete-food-command"), store: store}
}

// Help는 사용법을 반환합니다
func (c *DeleteFoodCommand) Help() string {
	return "메뉴삭제 <아침|점심|저녁> <이름> - 메뉴 삭제"
}

// Execute는 지정한 메뉴를 삭제합니다
func (c *DeleteFoodCommand) Execute(ctx context.Context, r Responder, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		_ = r.Send(m.ChannelID, "사용법: "+c.Help())
		return
	}

	category, err := models.ParseCategory(args[0])
	if err != nil {
		_ = r.Send(m.ChannelID, "아침, 점심, 저녁 중 하나를 입력해주세요.")
		return
	}

	name := strings.Join(args[1:], " ")
	if err := c.store.DeleteFood(ctx, name, category); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			_ = r.Send(m.ChannelID, fmt.Sprintf("'%s' 메뉴를 찾을 수 없습니다.", name))
			return
		}
		c.log.Error("Failed to delete food", zap.Error(err), zap.String("name", name))
		_ = r.Send(m.ChannelID, "메뉴를 삭제하는 중 오류가 발생했습니다.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "메뉴 삭제 완료",
		Description: fmt.Sprintf("'%s' 메뉴가 %s 목록에서 삭제되었습니다.", name, categoryTitle(category)),
		Color:       0xFF0000, // 빨간색
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Removed by %s", m.Author.Username),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	_ = r.SendEmbed(m.ChannelID, embed)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
