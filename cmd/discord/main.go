package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HerbFarmCalc_Go/internal/config"
	"github.com/osse101/HerbFarmCalc_Go/internal/discord"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-discord", cfg.Version, cfg.Environment))

	if err := cfg.RequireDiscord(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, calculator requests may be rejected")
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:  cfg.DiscordToken,
		AppID:  cfg.DiscordAppID,
		APIURL: cfg.APIURL,
		APIKey: cfg.APIKey,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.DiscordHealthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	if cfg.DiscordForceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceUpdate); err != nil {
		// The bot still works if the commands were registered by an earlier run
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Discord bot stopped")
}

// getCommandFactories returns every command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.HerbsCommand,
		discord.PlayerCommand,
	}
}

// registerCommands registers all commands from factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
