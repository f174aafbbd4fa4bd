package main

import (
	"fmt"
	"os"

	"github.com/banachtech/amerput/mainfuncs"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the service address, API key and the default contract.
type Config struct {
	Server struct {
		Address string `yaml:"address" default:":8080" validate:"required"`
		APIKey  string `yaml:"api_key" default:"demo-key" validate:"required"`
	} `yaml:"server"`
	Contract struct {
		Sigma    float64 `yaml:"sigma" default:"0.2" validate:"gt=0"`
		Rate     float64 `yaml:"rate" default:"0.06"`
		Strike   float64 `yaml:"strike" default:"40" validate:"gt=0"`
		Spot     float64 `yaml:"spot" default:"36" validate:"gt=0"`
		Maturity float64 `yaml:"maturity" default:"1" validate:"gt=0"`
		Steps    int     `yaml:"steps" default:"50" validate:"min=1"`
		Order    int     `yaml:"order" default:"12" validate:"min=2"`
		Paths    int     `yaml:"paths" default:"100000" validate:"min=1"`
		Seed     uint64  `yaml:"seed" default:"0"`
		ITMOnly  bool    `yaml:"itm_only"`
	} `yaml:"contract"`
}

// LoadConfig reads a YAML config file on top of the built-in defaults. An
// empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("config defaults: %w", err)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Params maps the configured contract onto pricing parameters.
func (cfg Config) Params() mainfuncs.Params {
	c := cfg.Contract
	return mainfuncs.Params{
		Sigma:    c.Sigma,
		Rate:     c.Rate,
		Strike:   c.Strike,
		Spot:     c.Spot,
		Maturity: c.Maturity,
		Steps:    c.Steps,
		Order:    c.Order,
		Paths:    c.Paths,
		Seed:     c.Seed,
		ITMOnly:  c.ITMOnly,
	}
}
