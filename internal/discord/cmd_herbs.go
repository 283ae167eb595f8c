package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/report"
)

// Option names shared by the calculator commands
const (
	OptionSort       = "sort"
	OptionDescending = "descending"
	OptionPlayer     = "player"
	OptionCompost    = "compost"
	OptionResurrect  = "resurrect"
)

// commandTimeout bounds one interaction's API calls, retries included
const commandTimeout = 30 * time.Second

func sortChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.AllSortCriteria))
	for _, c := range domain.AllSortCriteria {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  report.Title(string(c)),
			Value: string(c),
		})
	}
	return choices
}

func compostChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.AllComposts()))
	for _, c := range domain.AllComposts() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c.String(),
			Value: c.Info().Key,
		})
	}
	return choices
}

// HerbsCommand returns the herbs command definition and handler
func HerbsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "herbs",
		Description: "Expected profit, yield and XP for every herb",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionSort,
				Description: "Order the results by",
				Required:    false,
				Choices:     sortChoices(),
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         OptionPlayer,
				Description:  "Stored player to calculate for",
				Required:     false,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        OptionDescending,
				Description: "Largest first",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionCompost,
				Description: "Compost applied to every patch (default ultracompost)",
				Required:    false,
				Choices:     compostChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        OptionResurrect,
				Description: "Cast Resurrect Crops on diseased patches",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		req, err := buildCalculateRequest(getOptions(i))
		if err != nil {
			respondError(s, i, fmt.Sprintf("%s\n%s", MsgInvalidOptions, err))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		result, err := client.Calculate(ctx, req)
		if err != nil {
			slog.Error("Calculate failed", "player", req.Player, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sortedBy, _ := domain.ParseSortCriteria(req.Sort)
		sendEmbed(s, i, herbsEmbed(req.Player, result, sortedBy))
	}

	return cmd, handler
}

// buildCalculateRequest reads the command options over the calculator defaults
func buildCalculateRequest(options map[string]*discordgo.ApplicationCommandInteractionDataOption) (CalculateRequest, error) {
	req := CalculateRequest{Options: calculator.DefaultOptions()}

	if opt, ok := options[OptionSort]; ok {
		criteria, err := domain.ParseSortCriteria(opt.StringValue())
		if err != nil {
			return req, err
		}
		req.Sort = string(criteria)
	}
	if opt, ok := options[OptionPlayer]; ok {
		req.Player = opt.StringValue()
	}
	if opt, ok := options[OptionDescending]; ok {
		req.Descending = opt.BoolValue()
	}
	if opt, ok := options[OptionCompost]; ok {
		compost, err := domain.ParseCompost(opt.StringValue())
		if err != nil {
			return req, err
		}
		req.Options.Compost = compost
	}
	if opt, ok := options[OptionResurrect]; ok {
		req.Options.ResurrectCrops = opt.BoolValue()
	}
	return req, nil
}

func herbsEmbed(player string, result *domain.CalculatorResult, sortedBy domain.SortCriteria) *discordgo.MessageEmbed {
	title := "🌿 Herb Run"
	if player != "" {
		title = fmt.Sprintf("🌿 Herb Run for %s", player)
	}

	color := ColorHerbs
	if result.Degraded() {
		color = ColorDegraded
	}

	body := report.NewFormatter(report.PlatformDiscord).String(result, sortedBy)
	return createEmbed(title, body, color, "")
}
