package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/anomredux/timerail/internal/domain"
	"github.com/anomredux/timerail/internal/preset"
	"github.com/anomredux/timerail/internal/selector"
)

// EnvPrefix marks environment overrides. A double underscore separates
// sections: TIMERAIL_SELECTOR__SCALE=month sets selector.scale.
const EnvPrefix = "TIMERAIL_"

type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Selector SelectorConfig `toml:"selector" yaml:"selector"`
	Watch    WatchConfig    `toml:"watch" yaml:"watch"`
}

type GeneralConfig struct {
	Timezone string `toml:"timezone" yaml:"timezone"`
	Language string `toml:"language" yaml:"language"`
	DataDir  string `toml:"data_dir" yaml:"data_dir"`
}

type SelectorConfig struct {
	Scale       string `toml:"scale" yaml:"scale"`
	MinimumUnit string `toml:"minimum_unit" yaml:"minimum_unit"`
	Comparison  string `toml:"comparison" yaml:"comparison"`
	Preset      string `toml:"preset" yaml:"preset"`
	Cadence     string `toml:"cadence" yaml:"cadence"`
	// MaxDate is "today", a YYYY-MM-DD date (inclusive) or empty for none.
	MaxDate           string `toml:"max_date" yaml:"max_date"`
	ShowMarker        bool   `toml:"show_marker" yaml:"show_marker"`
	FinalizeThreshold int    `toml:"finalize_threshold" yaml:"finalize_threshold"`
	FrameIntervalMS   int    `toml:"frame_interval_ms" yaml:"frame_interval_ms"`
	// RailMonths overrides the rail extent; 0 derives it from the scale.
	RailMonths int `toml:"rail_months" yaml:"rail_months"`
}

type WatchConfig struct {
	Enabled     bool `toml:"enabled" yaml:"enabled"`
	PollSeconds int  `toml:"poll_seconds" yaml:"poll_seconds"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Timezone: "UTC",
			Language: "en",
			DataDir:  DefaultDataDir(),
		},
		Selector: SelectorConfig{
			Scale:             "year",
			MinimumUnit:       "day",
			Comparison:        "off",
			Preset:            preset.YearToDate,
			Cadence:           "auto",
			MaxDate:           "today",
			ShowMarker:        true,
			FinalizeThreshold: selector.DefaultFinalizeThreshold,
			FrameIntervalMS:   16,
		},
		Watch: WatchConfig{
			Enabled:     true,
			PollSeconds: 5,
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timerail", "config.toml")
}

func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".local", "share", "timerail")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads the config file (TOML, or YAML by extension) over the
// defaults, then overlays TIMERAIL_* environment variables. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	k := koanf.New(".")

	_, statErr := os.Stat(path)
	switch {
	case os.IsNotExist(statErr):
		// use defaults
	case statErr != nil:
		return cfg, fmt.Errorf("access config %s: %w", path, statErr)
	case isYAML(path):
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("load env overrides: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "toml"}); err != nil {
		return cfg, fmt.Errorf("apply overrides: %w", err)
	}
	return cfg, nil
}

// envKey maps TIMERAIL_SELECTOR__MAX_DATE to selector.max_date.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// EnvOverrides lists the config keys currently set from the environment.
func EnvOverrides() []string {
	var keys []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			keys = append(keys, envKey(name))
		}
	}
	return keys
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if isYAML(path) {
		if err := yamlv3.NewEncoder(f).Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return nil
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks enum values, the timezone and the max date.
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := selector.ParseScale(c.Selector.Scale); err != nil {
		return fmt.Errorf("selector.scale: %w", err)
	}
	if _, err := selector.ParseUnit(c.Selector.MinimumUnit); err != nil {
		return fmt.Errorf("selector.minimum_unit: %w", err)
	}
	if _, err := selector.ParseComparison(c.Selector.Comparison); err != nil {
		return fmt.Errorf("selector.comparison: %w", err)
	}
	if _, err := domain.ParseCadence(c.Selector.Cadence); err != nil {
		return fmt.Errorf("selector.cadence: %w", err)
	}
	if !preset.Valid(c.Selector.Preset) {
		return fmt.Errorf("selector.preset: %w: %q", preset.ErrUnknown, c.Selector.Preset)
	}
	if _, err := c.Ceiling(time.Now()); err != nil {
		return err
	}
	if c.Selector.FinalizeThreshold < 0 {
		return fmt.Errorf("selector.finalize_threshold must be non-negative")
	}
	if c.Selector.RailMonths < 0 {
		return fmt.Errorf("selector.rail_months must be non-negative")
	}
	if c.Watch.PollSeconds < 0 {
		return fmt.Errorf("watch.poll_seconds must be non-negative")
	}
	return nil
}

// Location loads the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return nil, fmt.Errorf("general.timezone: %w", err)
	}
	return loc, nil
}

// Ceiling resolves max_date into an exclusive upper bound as seen at now.
// The zero time means no ceiling.
func (c Config) Ceiling(now time.Time) (time.Time, error) {
	switch c.Selector.MaxDate {
	case "":
		return time.Time{}, nil
	case "today":
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1), nil
	}
	t, err := time.ParseInLocation("2006-01-02", c.Selector.MaxDate, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("selector.max_date: %w", err)
	}
	return t.AddDate(0, 0, 1), nil
}
