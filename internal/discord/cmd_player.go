package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/report"
)

// Sub-command and option names for /player
const (
	SubcommandShow = "show"
	SubcommandSet  = "set"
	SubcommandList = "list"

	OptionName = "name"
)

func diaryChoices() []*discordgo.ApplicationCommandOptionChoice {
	tiers := []domain.DiaryTier{domain.DiaryNone, domain.DiaryEasy, domain.DiaryMedium, domain.DiaryHard, domain.DiaryElite}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(tiers))
	for _, t := range tiers {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  report.Title(t.String()),
			Value: int(t),
		})
	}
	return choices
}

func levelOption(skill domain.Skill, required bool) *discordgo.ApplicationCommandOption {
	minLevel := float64(domain.MinSkillLevel)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        string(skill),
		Description: report.Title(string(skill)) + " level",
		Required:    required,
		MinValue:    &minLevel,
		MaxValue:    domain.MaxSkillLevel,
	}
}

func diaryOption(flag domain.Flag) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        string(flag),
		Description: report.Title(string(flag)) + " completed tier",
		Choices:     diaryChoices(),
	}
}

// PlayerCommand returns the player command definition and handler
func PlayerCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	nameOption := &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         OptionName,
		Description:  "Player name",
		Required:     true,
		Autocomplete: true,
	}
	minFavor := 0.0

	cmd := &discordgo.ApplicationCommand{
		Name:        "player",
		Description: "Manage the stored levels used by /herbs",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandShow,
				Description: "Show a stored player's levels",
				Options:     []*discordgo.ApplicationCommandOption{nameOption},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandSet,
				Description: "Store a player's levels and diaries",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption,
					levelOption(domain.SkillFarming, true),
					levelOption(domain.SkillMagic, true),
					diaryOption(domain.FlagKandarinDiary),
					diaryOption(domain.FlagKourendDiary),
					diaryOption(domain.FlagFaladorDiary),
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        string(domain.FlagHosidiusFavor),
						Description: "Hosidius favor out of 1000",
						MinValue:    &minFavor,
						MaxValue:    domain.HosidiusFavorMax,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandList,
				Description: "List stored players",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		options := i.ApplicationCommandData().Options
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}
		sub := options[0]
		args := optionMap(sub.Options)

		switch sub.Name {
		case SubcommandShow:
			handlePlayerShow(ctx, s, i, client, args[OptionName].StringValue())
		case SubcommandSet:
			handlePlayerSet(ctx, s, i, client, args)
		case SubcommandList:
			handlePlayerList(ctx, s, i, client)
		default:
			slog.Warn("Unknown player subcommand", "subcommand", sub.Name)
			respondError(s, i, MsgGenericError)
		}
	}

	return cmd, handler
}

func handlePlayerShow(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, name string) {
	state, err := client.GetPlayer(ctx, name)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}
	sendEmbed(s, i, createEmbed("👤 "+state.Name, formatPlayerState(state), ColorPlayer, ""))
}

func handlePlayerSet(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient,
	args map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	name := args[OptionName].StringValue()
	req := SavePlayerRequest{
		Skills: make(map[domain.Skill]int),
		Flags:  make(map[domain.Flag]int),
	}
	for _, skill := range domain.KnownSkills {
		if opt, ok := args[string(skill)]; ok {
			req.Skills[skill] = int(opt.IntValue())
		}
	}
	for _, flag := range domain.KnownFlags {
		if opt, ok := args[string(flag)]; ok {
			req.Flags[flag] = int(opt.IntValue())
		}
	}

	if err := client.SavePlayer(ctx, name, req); err != nil {
		slog.Error("Save player failed", "player", name, "error", err)
		respondFriendlyError(s, i, err)
		return
	}

	user := getInteractionUser(i)
	if user != nil {
		slog.Info("Player saved from Discord", "player", name, "user", user.Username)
	}

	state := domain.NewPlayerState(name)
	state.Skills = req.Skills
	state.Flags = req.Flags
	sendEmbed(s, i, createEmbed("✅ Saved "+name, formatPlayerState(state), ColorPlayer, ""))
}

func handlePlayerList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	names, err := client.ListPlayers(ctx)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	description := MsgNoPlayers
	if len(names) > 0 {
		description = strings.Join(names, "\n")
	}
	sendEmbed(s, i, createEmbed("👥 Stored Players", description, ColorPlayer, ""))
}

// formatPlayerState renders skills then flags, each in a fixed order
func formatPlayerState(state *domain.PlayerState) string {
	var sb strings.Builder
	for _, skill := range domain.KnownSkills {
		if level, ok := state.Skills[skill]; ok {
			fmt.Fprintf(&sb, "**%s**: %d\n", report.Title(string(skill)), level)
		}
	}

	flags := make([]string, 0, len(state.Flags))
	for flag := range state.Flags {
		flags = append(flags, string(flag))
	}
	sort.Strings(flags)
	for _, f := range flags {
		flag := domain.Flag(f)
		value := state.Flags[flag]
		if flag == domain.FlagHosidiusFavor {
			fmt.Fprintf(&sb, "**%s**: %s\n", report.Title(f), report.Percent(float64(value)/domain.HosidiusFavorMax))
			continue
		}
		fmt.Fprintf(&sb, "**%s**: %s\n", report.Title(f), report.Title(domain.DiaryTier(value).String()))
	}
	return sb.String()
}
