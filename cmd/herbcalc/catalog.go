package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/report"
)

// CatalogCommand prints the herbs, patches and composts the calculator knows
type CatalogCommand struct{}

func (c *CatalogCommand) Name() string {
	return "catalog"
}

func (c *CatalogCommand) Description() string {
	return "Show herbs, patches and composts"
}

func (c *CatalogCommand) Run(_ []string, out io.Writer) error {
	herbs := tablewriter.NewWriter(out)
	herbs.SetAutoFormatHeaders(false)
	herbs.SetHeader([]string{"Herb", "Key", "Level", "Plant XP", "Harvest XP", "Seed", "Grimy"})
	for _, h := range domain.AllHerbs() {
		info := h.Info()
		herbs.Append([]string{
			info.Name,
			info.Key,
			fmt.Sprint(info.Level),
			report.Number(info.PlantXP),
			report.Number(info.HarvestXP),
			fmt.Sprint(int(info.SeedItem)),
			fmt.Sprint(int(info.GrimyItem)),
		})
	}
	herbs.Render()

	fmt.Fprintln(out, "\nPatches:")
	for _, p := range domain.AllPatches() {
		fmt.Fprintf(out, "  %-18s %s\n", p.Key(), p.Name())
	}

	fmt.Fprintln(out, "\nCompost:")
	for _, cp := range domain.AllComposts() {
		info := cp.Info()
		fmt.Fprintf(out, "  %-14s lives=%d disease=%s/128\n", info.Key, info.HarvestLives, report.Number(info.BaseDiseaseChance))
	}

	fmt.Fprintln(out, "\nAnima plants:")
	for _, a := range domain.AllAnimaPlants() {
		fmt.Fprintf(out, "  %s\n", a)
	}
	return nil
}
