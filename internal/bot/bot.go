package bot

import (
	"context"
	"fmt"

	"github.com/bradykim7/mealplanner/internal/bot/commands"
	"github.com/bradykim7/mealplanner/internal/catalog"
	"github.com/bradykim7/mealplanner/internal/models"
	"github.com/bradykim7/mealplanner/pkg/config"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot은 Discord 봇을 나타냅니다
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	log      *zap.Logger
	commands *commands.Registry
}

// New는 새로운 Bot 인스턴스를 생성합니다.
// store가 nil이면 메뉴 등록/삭제 명령어는 등록되지 않습니다.
func New(cfg *config.Config, planner commands.PlanGenerator, source catalog.Source, store commands.FoodStore, log *zap.Logger) (*Bot, error) {
	// Discord 세션 생성
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("Discord 세션 생성 오류: %w", err)
	}

	bot := &Bot{
		session:  session,
		config:   cfg,
		log:      log.Named("bot"),
		commands: commands.NewRegistry(cfg.CommandPrefix, log),
	}

	// 이벤트 핸들러 설정
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onMessageCreate)

	// Intents 설정
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	// 명령어 등록
	registerCommands(bot.commands, cfg.CommandPrefix, planner, source, store, bot.log)

	return bot, nil
}

// Start는 봇을 시작합니다
func (b *Bot) Start(ctx context.Context) error {
	// Discord에 연결
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("Discord 세션 열기 오류: %w", err)
	}

	b.log.Info("봇이 실행 중입니다. 종료하려면 CTRL-C를 누르세요.")

	// 컨텍스트가 취소될 때까지 대기
	<-ctx.Done()

	return b.Close()
}

// Close는 리소스를 정리합니다
func (b *Bot) Close() error {
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("Discord 세션 닫기 오류: %w", err)
	}
	return nil
}

// onReady는 봇이 준비되었을 때의 이벤트 핸들러입니다
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("봇 로그인 완료",
		zap.String("username", r.User.Username),
		zap.String("discriminator", r.User.Discriminator))

	// 상태 설정
	if err := s.UpdateGameStatus(0, b.config.CommandPrefix+"help"); err != nil {
		b.log.Error("상태 설정 오류", zap.Error(err))
	}
}

// onMessageCreate는 메시지가 생성되었을 때의 이벤트 핸들러입니다
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.log.Debug("메시지 수신됨",
		zap.String("guild_id", m.GuildID),
		zap.String("channel_id", m.ChannelID),
		zap.String("content", m.Content))

	b.commands.Handle(s, m)
}

// registerCommands는 모든 명령어를 등록합니다
func registerCommands(registry *commands.Registry, prefix string, planner commands.PlanGenerator, source catalog.Source, store commands.FoodStore, log *zap.Logger) {
	registry.Register(commands.NewPingCommand(), "ping")
	registry.Register(commands.NewPlanCommand(log, planner, prefix), "mealplan", "식단")
	registry.Register(commands.NewMenuCommand(log, source), "menu", "메뉴")

	for _, category := range models.Categories {
		registry.Register(commands.NewRecommendCommand(log, source, category), commands.RecommendCommandName(category))
	}

	if store != nil {
		registry.Register(commands.NewRegisterFoodCommand(log, store), "메뉴등록")
		registry.Register(commands.NewDeleteFoodCommand(log, store), "메뉴삭제")
	}

	registry.Register(commands.NewHelpCommand(registry), "help", "도움말")
}
