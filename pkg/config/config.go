/*
Package config manages the TOML configuration for spellward.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct file
access for runtime changes. CheckerOptions translates a loaded Config
into the option struct the core engine consumes; the engine itself never
parses configuration files.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spellward/spellward/pkg/checker"
	"github.com/spellward/spellward/pkg/suggest"
)

// Config holds the entire configuration structure.
type Config struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Checker    CheckerConfig    `toml:"checker"`
	Suggest    SuggestConfig    `toml:"suggest"`
	Cache      CacheConfig      `toml:"cache"`
}

// DictionaryConfig locates the reference dictionary.
type DictionaryConfig struct {
	Path string `toml:"path"`
}

// CheckerConfig holds tokenizer and lookup options.
type CheckerConfig struct {
	CaseSensitive bool `toml:"case_sensitive"`
	IgnoreNumbers bool `toml:"ignore_numbers"`
	IgnoreURLs    bool `toml:"ignore_urls"`
	IgnoreEmails  bool `toml:"ignore_emails"`
	MinWordLength int  `toml:"min_word_length"`
}

// SuggestConfig holds the candidate bounds and scoring weights.
type SuggestConfig struct {
	MaxSuggestions     int     `toml:"max_suggestions"`
	MaxEditDistance    int     `toml:"max_edit_distance"`
	EditDistanceWeight float64 `toml:"edit_distance_weight"`
	FrequencyWeight    float64 `toml:"frequency_weight"`
	PhoneticWeight     float64 `toml:"phonetic_weight"`
	PrefixWeight       float64 `toml:"prefix_weight"`
}

// CacheConfig toggles the suggestion cache.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`
	Size    int  `toml:"size"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Path: "dictionaries/en_US.dict",
		},
		Checker: CheckerConfig{
			IgnoreNumbers: true,
			IgnoreURLs:    true,
			IgnoreEmails:  true,
			MinWordLength: 3,
		},
		Suggest: SuggestConfig{
			MaxSuggestions:     10,
			MaxEditDistance:    2,
			EditDistanceWeight: 1.0,
			FrequencyWeight:    0.5,
			PhoneticWeight:     0.3,
			PrefixWeight:       0.2,
		},
		Cache: CacheConfig{
			Enabled: true,
			Size:    1000,
		},
	}
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("Failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}

// CheckerOptions translates the config into engine options.
func (c *Config) CheckerOptions() checker.Options {
	return checker.Options{
		DictionaryPath: c.Dictionary.Path,
		CaseSensitive:  c.Checker.CaseSensitive,
		IgnoreNumbers:  c.Checker.IgnoreNumbers,
		IgnoreURLs:     c.Checker.IgnoreURLs,
		IgnoreEmails:   c.Checker.IgnoreEmails,
		MinWordLength:  c.Checker.MinWordLength,
		MaxSuggestions: c.Suggest.MaxSuggestions,
		Suggest: suggest.Params{
			MaxEditDistance:    c.Suggest.MaxEditDistance,
			MaxSuggestions:     c.Suggest.MaxSuggestions,
			EditDistanceWeight: c.Suggest.EditDistanceWeight,
			FrequencyWeight:    c.Suggest.FrequencyWeight,
			PhoneticWeight:     c.Suggest.PhoneticWeight,
			PrefixWeight:       c.Suggest.PrefixWeight,
		},
		CacheEnabled: c.Cache.Enabled,
		CacheSize:    c.Cache.Size,
	}
}
