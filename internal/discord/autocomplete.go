package discord

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const autocompleteTimeout = 2 * time.Second

// HandleAutocomplete suggests stored player names for any focused player option
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	focused := findFocusedOption(data.Options)
	if focused == nil {
		slog.Warn("Autocomplete without focused option", "command", data.Name)
		return
	}

	switch focused.Name {
	case OptionPlayer, OptionName:
		respondAutocomplete(s, i, playerChoices(client, strings.ToLower(focused.StringValue())))
	default:
		slog.Warn("Unhandled autocomplete option", "command", data.Name, "option", focused.Name)
	}
}

// findFocusedOption searches top-level and sub-command options
func findFocusedOption(options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Focused {
			return opt
		}
		if found := findFocusedOption(opt.Options); found != nil {
			return found
		}
	}
	return nil
}

func playerChoices(client *APIClient, filter string) []*discordgo.ApplicationCommandOptionChoice {
	ctx, cancel := context.WithTimeout(context.Background(), autocompleteTimeout)
	defer cancel()

	names, err := client.ListPlayers(ctx)
	if err != nil {
		slog.Error("Failed to list players for autocomplete", "error", err)
		return []*discordgo.ApplicationCommandOptionChoice{}
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, name := range names {
		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
		if len(choices) >= MaxAutocompleteChoices {
			break
		}
	}
	return choices
}

func respondAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
