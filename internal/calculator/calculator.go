package calculator

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// Options are the player-controlled calculator settings
type Options struct {
	Patches          []domain.HerbPatch `json:"patches" yaml:"patches" validate:"required,min=1,unique,dive,catalog"`
	Compost          domain.Compost     `json:"compost" yaml:"compost" validate:"catalog"`
	AnimaPlant       domain.AnimaPlant  `json:"anima_plant" yaml:"anima_plant" validate:"catalog"`
	MagicSecateurs   bool               `json:"magic_secateurs" yaml:"magic_secateurs"`
	FarmingCape      bool               `json:"farming_cape" yaml:"farming_cape"`
	BottomlessBucket bool               `json:"bottomless_bucket" yaml:"bottomless_bucket"`
	ResurrectCrops   bool               `json:"resurrect_crops" yaml:"resurrect_crops"`
}

// DefaultOptions farms every patch with ultracompost and no extras
func DefaultOptions() Options {
	return Options{
		Patches: domain.AllPatches(),
		Compost: domain.CompostUltra,
	}
}

// CatalogTag is the validation tag for fields holding a domain.CatalogValue
const CatalogTag = "catalog"

// ValidCatalogValue accepts catalog enums that exist in the catalog
func ValidCatalogValue(fl validator.FieldLevel) bool {
	cv, ok := fl.Field().Interface().(domain.CatalogValue)
	return ok && cv.IsValid()
}

// RegisterCatalogValidation installs the CatalogTag rule on v so any
// validator that checks Options understands its tags.
func RegisterCatalogValidation(v *validator.Validate) error {
	if err := v.RegisterValidation(CatalogTag, ValidCatalogValue); err != nil {
		return fmt.Errorf("register %q validation: %w", CatalogTag, err)
	}
	return nil
}

var validate = func() *validator.Validate {
	v := validator.New()
	if err := RegisterCatalogValidation(v); err != nil {
		panic(err)
	}
	return v
}()

// Validate checks the options against the catalog
func (o Options) Validate() error {
	if len(o.Patches) == 0 {
		return domain.ErrNoPatchesSelected
	}
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// Calculator computes expected herb farming results. It is pure: every call to
// Calculate reads the two providers and builds a fresh result.
type Calculator struct {
	opts   Options
	state  GameState
	prices PriceSource
}

// New creates a calculator after validating opts
func New(opts Options, state GameState, prices PriceSource) (*Calculator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if state == nil || prices == nil {
		return nil, fmt.Errorf("%w: game state and price source are required", domain.ErrInvalidArgument)
	}
	return &Calculator{opts: opts, state: state, prices: prices}, nil
}

// Calculate runs every herb against every configured patch.
// Either the whole result is returned or an error; partial results are never exposed.
func (c *Calculator) Calculate() (*domain.CalculatorResult, error) {
	signals := ResolveSignals(c.state)
	patches := ResolvePatchBuffs(c.opts.Patches, signals)

	slog.Debug("Running herb calculator",
		"farming_level", signals.FarmingLevel,
		"magic_level", signals.MagicLevel,
		"patches", len(patches),
		"warnings", len(signals.Warnings))

	run, err := c.newRun(signals)
	if err != nil {
		return nil, err
	}

	herbs := make([]domain.HerbResult, 0, len(domain.AllHerbs()))
	for _, herb := range domain.AllHerbs() {
		result := domain.HerbResult{Herb: herb, Patches: make([]domain.HerbPatchResult, 0, len(patches))}
		for _, buffs := range patches {
			pr, err := run.calculatePatch(herb, buffs)
			if err != nil {
				return nil, fmt.Errorf("failed to calculate %s at %s: %w", herb, buffs.Patch, err)
			}
			result.Patches = append(result.Patches, pr)
		}
		herbs = append(herbs, result)
	}

	return &domain.CalculatorResult{
		FarmingLevel: signals.FarmingLevel,
		MagicLevel:   signals.MagicLevel,
		Patches:      patches,
		Herbs:        herbs,
		Warnings:     signals.Warnings,
	}, nil
}

// run holds the values shared by every herb/patch pair in one Calculate call
type run struct {
	opts            Options
	prices          PriceSource
	signals         Signals
	diseaseChance   float64
	resurrectChance float64
	itemBonus       float64
}

func (c *Calculator) newRun(signals Signals) (*run, error) {
	r := &run{
		opts:          c.opts,
		prices:        c.prices,
		signals:       signals,
		diseaseChance: DiseaseChance(c.opts.Compost, c.opts.AnimaPlant),
		itemBonus:     ItemYieldBonus(c.opts.MagicSecateurs, c.opts.FarmingCape),
	}
	if c.opts.ResurrectCrops {
		chance, err := ResurrectSuccessChance(signals.MagicLevel)
		if err != nil {
			return nil, err
		}
		r.resurrectChance = chance
	}
	return r, nil
}

func (r *run) survival(diseaseFree bool) (Survival, error) {
	if r.opts.ResurrectCrops {
		return SurvivalChanceWithResurrect(r.diseaseChance, diseaseFree, r.resurrectChance)
	}
	chance, err := SurvivalChance(r.diseaseChance, diseaseFree)
	if err != nil {
		return Survival{}, err
	}
	return Survival{Chance: chance}, nil
}

func (r *run) calculatePatch(herb domain.Herb, buffs domain.PatchBuffs) (domain.HerbPatchResult, error) {
	survival, err := r.survival(buffs.DiseaseFree)
	if err != nil {
		return domain.HerbPatchResult{}, err
	}

	cts, err := ChanceToSave(herb.Info().MinChanceToSave, r.signals.FarmingLevel, YieldBonuses{
		Items: r.itemBonus,
		Patch: buffs.YieldBonus,
		Anima: r.opts.AnimaPlant.ChanceToSaveBonus(),
	})
	if err != nil {
		return domain.HerbPatchResult{}, err
	}
	ifMatured, err := ExpectedHarvestsIfMatured(r.opts.Compost.Info().HarvestLives, cts)
	if err != nil {
		return domain.HerbPatchResult{}, err
	}

	outcome := PlantingOutcome{
		Survival:      survival,
		ExpectedYield: ifMatured * survival.Chance,
	}

	return domain.HerbPatchResult{
		Herb:           herb,
		Patch:          buffs.Patch,
		SurvivalChance: survival.Chance,
		ExpectedYield:  outcome.ExpectedYield,
		ExpectedXP:     ExpectedXP(herb, r.opts.Compost, outcome, buffs.XPBonus),
		Cost:           PlantingCost(herb, r.opts, outcome, r.prices),
		Revenue:        HarvestRevenue(herb, outcome, r.prices),
	}, nil
}
