package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	seedEnvName  = "FROGGY_SEED"
	pondEnvName  = "FROGGY_POND"
	mutedEnvName = "FROGGY_MUTED"
	scaleEnvName = "FROGGY_SCALE"
)

// Config holds front-end settings. Gameplay tuning is not configurable.
type Config struct {
	Seed  int64   `yaml:"seed"`  // 0 picks a time-based seed
	Pond  string  `yaml:"pond"`  // embedded practice pond; empty for random boards
	Muted bool    `yaml:"muted"`
	Scale float64 `yaml:"scale"` // window scale
	TPS   int     `yaml:"tps"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{Scale: 1, TPS: 60}
}

// Load reads a YAML file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// LoadEnv loads a .env file into the process environment if it exists. Values
// already set in the environment win.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg from FROGGY_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(seedEnvName); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", seedEnvName, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(pondEnvName); ok {
		c.Pond = v
	}
	if v, ok := os.LookupEnv(mutedEnvName); ok {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", mutedEnvName, err)
		}
		c.Muted = muted
	}
	if v, ok := os.LookupEnv(scaleEnvName); ok {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", scaleEnvName, err)
		}
		c.Scale = scale
	}
	return c.Validate()
}

// Validate rejects settings no front end can run with.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// Resolve builds the settings for a front end: defaults, then the YAML file
// named by -config, then .env and FROGGY_* variables, then the remaining flags.
func Resolve(name string, args []string) (Config, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	path := flags.String("config", "froggyhop.yaml", "YAML settings file")
	seed := flags.Int64("seed", 0, "board seed (0 = time-based)")
	pond := flags.String("pond", "", "practice pond name (empty = random boards)")
	mute := flags.Bool("mute", false, "disable sound")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := LoadEnv(".env"); err != nil {
		return Config{}, err
	}
	cfg, err := Load(*path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "pond":
			cfg.Pond = *pond
		case "mute":
			cfg.Muted = *mute
		}
	})
	return cfg, nil
}
