package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

var (
	printer    = message.NewPrinter(language.English)
	titleCaser = cases.Title(language.English)
)

// Coins formats a coin amount rounded to the nearest coin with digit grouping
func Coins(v float64) string {
	return printer.Sprintf("%d gp", int64(math.Round(v)))
}

// Percent formats a probability in [0, 1] as a percentage
func Percent(p float64) string {
	return printer.Sprintf("%.1f%%", p*100)
}

// Number formats a non-integral quantity with one decimal place
func Number(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// Title turns a key such as "dwarf_weed" or "profit" into display casing
func Title(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// Formatter renders calculator results for one output platform
type Formatter struct {
	platform string
}

// NewFormatter creates a formatter. Unknown platforms render for the terminal.
func NewFormatter(platform string) *Formatter {
	platform = strings.ToLower(platform)
	if platform != PlatformDiscord {
		platform = PlatformTerminal
	}
	return &Formatter{platform: platform}
}

// Write renders result, already ordered by sortedBy, to w
func (f *Formatter) Write(w io.Writer, result *domain.CalculatorResult, sortedBy domain.SortCriteria) error {
	if _, err := fmt.Fprintf(w, MsgSummaryFormat+"\n", result.FarmingLevel, result.MagicLevel, Title(string(sortedBy))); err != nil {
		return err
	}

	if len(result.Herbs) == 0 {
		_, err := fmt.Fprintln(w, MsgNoResults)
		return err
	}

	switch f.platform {
	case PlatformDiscord:
		if err := f.writeDiscordTable(w, result); err != nil {
			return err
		}
	default:
		f.writeTerminalTable(w, result)
		if err := writePatches(w, result.Patches); err != nil {
			return err
		}
	}

	return writeWarnings(w, result.Warnings)
}

// String renders result to a string
func (f *Formatter) String(result *domain.CalculatorResult, sortedBy domain.SortCriteria) string {
	var sb strings.Builder
	_ = f.Write(&sb, result, sortedBy)
	return sb.String()
}

func (f *Formatter) writeTerminalTable(w io.Writer, result *domain.CalculatorResult) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{ColHerb, ColLevel, ColSurvival, ColYield, ColXP, ColCost, ColRevenue, ColProfit})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	blocked := false
	for _, h := range result.Herbs {
		name := h.Herb.Name()
		if !h.Growable(result.FarmingLevel) {
			name += MsgUnavailableMarker
			blocked = true
		}
		table.Append([]string{
			name,
			fmt.Sprint(h.Herb.Info().Level),
			Percent(h.SurvivalChance()),
			Number(h.ExpectedYield()),
			Number(h.ExpectedXP()),
			Coins(h.Cost()),
			Coins(h.Revenue()),
			Coins(h.Profit()),
		})
	}
	table.Render()

	if blocked {
		_, _ = fmt.Fprintln(w, MsgUnavailableNote)
	}
}

// Discord replies are capped, so only the compact columns go in a code block
func (f *Formatter) writeDiscordTable(w io.Writer, result *domain.CalculatorResult) error {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeader([]string{ColHerb, ColSurvival, ColYield, ColProfit})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for i, h := range result.Herbs {
		if i == DiscordMaxRows {
			break
		}
		name := h.Herb.Name()
		if !h.Growable(result.FarmingLevel) {
			name += MsgUnavailableMarker
		}
		table.Append([]string{name, Percent(h.SurvivalChance()), Number(h.ExpectedYield()), Coins(h.Profit())})
	}
	table.Render()

	_, err := fmt.Fprintf(w, "```\n%s```\n", sb.String())
	return err
}

func writePatches(w io.Writer, patches []domain.PatchBuffs) error {
	if len(patches) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, MsgPatchesHeader); err != nil {
		return err
	}
	for _, p := range patches {
		if _, err := fmt.Fprintf(w, "  - %s\n", p.Description()); err != nil {
			return err
		}
	}
	return nil
}

func writeWarnings(w io.Writer, warnings []string) error {
	if len(warnings) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, MsgWarningsHeader); err != nil {
		return err
	}
	for _, warning := range warnings {
		if _, err := fmt.Fprintf(w, "  - %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}
