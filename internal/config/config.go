// internal/config/config.go
//
// Runtime configuration for the solver CLI.
//
// Precedence, lowest to highest: built-in defaults, an optional YAML file,
// environment variables. Command-line flags are applied on top by main.

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Nadock/wordle-solver/internal/solver"
)

// Config holds every tunable the CLI understands.
type Config struct {
	WordsFile  string `yaml:"words_file"`  // external word list; empty = embedded list
	HardMode   bool   `yaml:"hard_mode"`   // restrict guesses to remaining candidates
	Heuristic  string `yaml:"heuristic"`   // "pairwise" or "unique"
	Opener     string `yaml:"opener"`      // "fixed", "random" or "manual"
	OpenerWord string `yaml:"opener_word"` // first guess for the fixed opener
	ShowAll    bool   `yaml:"show_all"`    // print every remaining candidate, not a sample
	NoColor    bool   `yaml:"no_color"`    // disable coloured output
	DailySalt  string `yaml:"daily_salt"`  // salt for daily word selection
	LogLevel   string `yaml:"log_level"`   // zerolog level name
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Heuristic:  string(solver.HeuristicPairwise),
		Opener:     string(solver.OpenerFixed),
		OpenerWord: solver.DefaultOpenerWord,
		DailySalt:  "local_dev_salt",
		LogLevel:   "info",
	}
}

// Load assembles the effective configuration: defaults, then the YAML file at
// path (if non-empty), then environment variables.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return c, err
		}
	}
	c.FromEnv()
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// FromEnv overlays environment variables onto c. Unset or empty variables
// keep their current values; bools accept the strconv.ParseBool forms.
func (c *Config) FromEnv() {
	envString("WORDS_FILE", &c.WordsFile)
	envBool("HARD_MODE", &c.HardMode)
	envString("HEURISTIC", &c.Heuristic)
	envString("OPENER", &c.Opener)
	envString("OPENER_WORD", &c.OpenerWord)
	envBool("SHOW_ALL", &c.ShowAll)
	envBool("NO_COLOR", &c.NoColor)
	envString("DAILY_SALT", &c.DailySalt)
	envString("LOG_LEVEL", &c.LogLevel)
}

// Validate rejects unknown heuristic or opener names.
func (c *Config) Validate() error {
	if _, err := solver.ParseHeuristic(c.Heuristic); err != nil {
		return err
	}
	if _, err := solver.ParseOpener(c.Opener); err != nil {
		return err
	}
	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
