package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// Validator checks request structs against their `validate` tags
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateErr  error
	validateOnce sync.Once
)

const playerNameTag = "player_name"

// fieldMessages maps a failed tag to the text returned for that field
var fieldMessages = map[string]func(param string) string{
	"required":            func(string) string { return "This field is required" },
	calculator.CatalogTag: func(string) string { return "Unknown value" },
	"unique":              func(string) string { return "Values must not repeat" },
	"max":                 func(p string) string { return "Must be at most " + p },
	"min":                 func(p string) string { return "Must be at least " + p },
	"oneof":               func(p string) string { return "Must be one of: " + p },
	playerNameTag:         func(string) string { return fmt.Sprintf("Must be a player name of 1 to %d characters", domain.MaxPlayerNameLength) },
}

func newValidator() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := calculator.RegisterCatalogValidation(v); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation(playerNameTag, validatePlayerName); err != nil {
		return nil, fmt.Errorf("register %q validation: %w", playerNameTag, err)
	}

	// Field names in errors follow the JSON body, not the Go struct
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}, nil
}

// InitValidator builds the shared validator. Calls after the first return the
// first call's result.
func InitValidator() error {
	validateOnce.Do(func() { validate, validateErr = newValidator() })
	return validateErr
}

// GetValidator returns the shared validator, building it on first use.
// It panics if the validator could not be built; InitValidator at startup
// surfaces that as an error instead.
func GetValidator() *Validator {
	if err := InitValidator(); err != nil {
		panic(err)
	}
	return validate
}

func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError flattens validator errors into field -> message.
// Errors from anything other than the validator collapse to a single "error" key.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		if field == "" {
			field = strings.ToLower(e.StructField())
		}
		if msg, ok := fieldMessages[e.Tag()]; ok {
			errs[field] = msg(e.Param())
		} else {
			errs[field] = "Invalid value"
		}
	}
	return errs
}

// validatePlayerName accepts display names the game allows: letters, digits, spaces, '-' and '_'
func validatePlayerName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	if len(name) > domain.MaxPlayerNameLength || strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ' ', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
