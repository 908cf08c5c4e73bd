// Package config loads the optional YAML configuration of offergen.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/offergen-go/pkg/offergen/dates"
	"github.com/ukaji3/offergen-go/pkg/offergen/fields"
)

// Well-known sheet names of a procedure workbook.
const (
	ProcedureSheet = "dati_generali_procedura"
	OffersSheet    = "generazioni_offerte"
)

// DefaultOutputDir is used when no output directory is given.
const DefaultOutputDir = "A_preventivo"

// Config holds all offergen configuration.
type Config struct {
	// Sheets
	ProcedureSheet string `yaml:"procedure_sheet" validate:"required"`
	OffersSheet    string `yaml:"offers_sheet" validate:"required"`

	// Output
	OutputDir    string `yaml:"output_dir"`
	NameField    string `yaml:"name_field" validate:"required"`
	AcronymField string `yaml:"acronym_field"`

	// Context
	TodayField string            `yaml:"today_field" validate:"required"`
	DateFields []string          `yaml:"date_fields" validate:"dive,required"`
	Bindings   fields.Table      `yaml:"bindings" validate:"dive"`
	Fields     map[string]string `yaml:"fields"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		ProcedureSheet: ProcedureSheet,
		OffersSheet:    OffersSheet,
		OutputDir:      DefaultOutputDir,
		NameField:      "nome_cognome",
		AcronymField:   "acronimo_progetto",
		TodayField:     "data_corrente",
		DateFields:     append([]string(nil), dates.DefaultFields...),
		Bindings:       append(fields.Table(nil), fields.Default...),
		Fields:         map[string]string{},
	}
}

// Load reads a config file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Fields == nil {
		cfg.Fields = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the configuration for missing required settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s: %s", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadFields reads a YAML mapping of field name to value, as entered in the form.
func LoadFields(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fields: %w", err)
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}
	return values, nil
}
