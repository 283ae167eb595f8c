package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/config"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/pricing"
	"github.com/osse101/HerbFarmCalc_Go/internal/profile"
	"github.com/osse101/HerbFarmCalc_Go/internal/report"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// CalcCommand runs the calculator for one profile and prints the sorted result
type CalcCommand struct {
	// prices replaces the live price service in tests
	prices pricing.Service
}

func (c *CalcCommand) Name() string {
	return "calc"
}

func (c *CalcCommand) Description() string {
	return "Calculate expected results for a profile"
}

func (c *CalcCommand) Run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(out)
	profilePath := fs.String("profile", "", "profile YAML file")
	dir := fs.String("dir", "profiles", "profile directory used with -name")
	name := fs.String("name", "", "profile name inside -dir")
	livePrices := fs.Bool("live-prices", false, "fetch prices from the wiki API; profile prices override them")
	sortBy := fs.String("sort", "", "sort criteria: alphabetical, level, profit, yield or xp")
	descending := fs.Bool("desc", false, "sort descending")
	format := fs.String("format", formatTable, "output format: table or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := c.loadProfile(*profilePath, *dir, *name)
	if err != nil {
		return err
	}

	criteria := p.Sort
	if *sortBy != "" {
		if criteria, err = domain.ParseSortCriteria(*sortBy); err != nil {
			return err
		}
	}
	desc := p.Descending || *descending

	prices, priceWarning := c.resolvePrices(p.Prices, *livePrices)

	calc, err := calculator.New(p.Options, p.PlayerState(), prices)
	if err != nil {
		return err
	}
	result, err := calc.Calculate()
	if err != nil {
		return err
	}
	if priceWarning != "" {
		result.Warnings = append([]string{priceWarning}, result.Warnings...)
	}
	result.Herbs = domain.SortHerbResults(result.Herbs, criteria, desc)

	switch *format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case formatTable:
		return report.NewFormatter(report.PlatformTerminal).Write(out, result, criteria)
	default:
		return fmt.Errorf("unknown format: %s", *format)
	}
}

func (c *CalcCommand) loadProfile(path, dir, name string) (*profile.Profile, error) {
	switch {
	case path != "":
		return profile.LoadFile(path)
	case name != "":
		return profile.NewLoader(dir).Get(name)
	default:
		return profile.Parse(strings.NewReader(""))
	}
}

// resolvePrices snapshots the profile's static prices or, with live set, the
// wiki prices with the profile's entries layered on top. A failed fetch keeps
// whatever was fetched and reports it as a warning.
func (c *CalcCommand) resolvePrices(overrides domain.PriceTable, live bool) (domain.PriceTable, string) {
	svc := c.prices
	if svc == nil {
		var source pricing.Source = pricing.NewStaticSource(overrides)
		if live {
			source = pricing.NewWikiSource(
				envOr("PRICES_API_URL", config.DefaultPricesAPIURL),
				envOr("PRICES_USER_AGENT", config.DefaultPricesUserAgent),
			)
		}
		svc = pricing.NewService(source, config.DefaultPriceCacheSize, config.DefaultPriceCacheTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pricing.DefaultHTTPTimeout)
	defer cancel()

	prices, err := svc.Snapshot(ctx)
	var warning string
	if err != nil {
		slog.Warn("Prices unavailable", "error", err, "priced_items", len(prices))
		warning = fmt.Sprintf("prices unavailable (%v), using profile prices", err)
	}
	if prices == nil {
		prices = domain.PriceTable{}
	}
	return prices.Merge(overrides), warning
}
