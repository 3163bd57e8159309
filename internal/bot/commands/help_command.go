package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HelpCommand는 등록된 모든 명령어를 보여줍니다
type HelpCommand struct {
	registry *Registry
}

// NewHelpCommand는 새로운 도움말 명령어를 생성합니다
func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

// Help는 사용법을 반환합니다
func (c *HelpCommand) Help() string {
	return "help - 명령어 목록"
}

// Execute는 명령어마다 한 줄씩 출력하고 같은 명령어의 별칭은 건너뜁니다
func (c *HelpCommand) Execute(ctx context.Context, r Responder, m *discordgo.MessageCreate, args []string) {
	seen := make(map[Command]bool)
	var lines []string
	for _, name := range c.registry.Names() {
		cmd, _ := c.registry.Lookup(name)
		if seen[cmd] {
			continue
		}
		seen[cmd] = true
		lines = append(lines, fmt.Sprintf("`%s%s`", c.registry.Prefix(), cmd.Help()))
	}
	_ = r.Send(m.ChannelID, strings.Join(lines, "\n"))
}
