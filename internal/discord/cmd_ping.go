package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

const pingTimeout = 3 * time.Second

// PingCommand reports whether the calculator API answers and how long it took
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot and the calculator are alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: pingMessage(ctx, client)},
		}); err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}

func pingMessage(ctx context.Context, client *APIClient) string {
	start := time.Now()
	if err := client.Healthz(ctx); err != nil {
		slog.Warn(LogMsgPingFailed, "error", err)
		return "Pong! 🌿 Calculator offline."
	}
	return fmt.Sprintf("Pong! 🌿 Calculator online (%dms).", time.Since(start).Milliseconds())
}
