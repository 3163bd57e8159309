package commands

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// commandTimeout은 명령어 하나의 최대 실행 시간입니다
const commandTimeout = 15 * time.Second

// Responder는 채널에 응답을 보냅니다
type Responder interface {
	Send(channelID, content string) error
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
}

// Command는 봇 명령어를 나타냅니다
type Command interface {
	Execute(ctx context.Context, r Responder, m *discordgo.MessageCreate, args []string)
	Help() string
}

// Registry는 모든 봇 명령어를 관리합니다
type Registry struct {
	prefix   string
	commands map[string]Command
	log      *zap.Logger
}

// NewRegistry는 새로운 명령어 레지스트리를 생성합니다
func NewRegistry(prefix string, log *zap.Logger) *Registry {
	return &Registry{
		prefix:   prefix,
		commands: make(map[string]Command),
		log:      log.Named("commands"),
	}
}

// Register는 명령어를 하나 이상의 이름으로 등록합니다
func (r *Registry) Register(cmd Command, names ...string) {
	for _, name := range names {
		r.commands[name] = cmd
		r.log.Info("Registered command", zap.String("name", name))
	}
}

// Handle은 discordgo 메시지 핸들러입니다
func (r *Registry) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	// 봇 자신의 메시지는 무시
	if m.Author == nil || (s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	r.Dispatch(ctx, &sessionResponder{session: s}, m)
}

// Dispatch는 메시지를 파싱해 일치하는 명령어를 실행합니다.
// 명령어가 실행되었는지 여부를 반환합니다.
func (r *Registry) Dispatch(ctx context.Context, resp Responder, m *discordgo.MessageCreate) bool {
	// 접두사로 시작하는지 확인
	if !strings.HasPrefix(m.Content, r.prefix) {
		return false
	}

	// 명령어와 인자 분리
	parts := strings.Fields(strings.TrimPrefix(m.Content, r.prefix))
	if len(parts) == 0 {
		return false
	}

	cmdName := strings.ToLower(parts[0])
	cmd, ok := r.commands[cmdName]
	if !ok {
		return false
	}

	r.log.Info("Executing command",
		zap.String("command", cmdName),
		zap.String("channel_id", m.ChannelID),
		zap.String("username", m.Author.Username))
	cmd.Execute(ctx, resp, m, parts[1:])
	return true
}

// Names는 등록된 명령어 이름을 정렬해서 반환합니다
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup은 이름으로 등록된 명령어를 찾습니다
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Prefix는 명령어 접두사를 반환합니다
func (r *Registry) Prefix() string {
	return r.prefix
}

type sessionResponder struct {
	session *discordgo.Session
}

func (s *sessionResponder) Send(channelID, content string) error {
	_, err := s.session.ChannelMessageSend(channelID, content)
	return err
}

func (s *sessionResponder) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := s.session.ChannelMessageSendEmbed(channelID, embed)
	return err
}
