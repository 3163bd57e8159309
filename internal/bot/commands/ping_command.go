package commands

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand는 "pong"으로 응답하는 간단한 명령어입니다
type PingCommand struct{}

// NewPingCommand는 새로운 ping 명령어를 생성합니다
func NewPingCommand() *PingCommand {
	return &PingCommand{}
}

// Help는 사용법을 반환합니다
func (c *PingCommand) Help() string {
	return "ping - 응답 속도 확인"
}

// Execute는 ping 명령어를 처리합니다
func (c *PingCommand) Execute(ctx context.Context, r Responder, m *discordgo.MessageCreate, args []string) {
	// 응답 시간 계산
	start := time.Now()
	if err := r.Send(m.ChannelID, "Pinging..."); err != nil {
		return
	}

	elapsed := time.Since(start)
	_ = r.Send(m.ChannelID, "Pong! Latency: "+elapsed.Round(time.Millisecond).String())
}
