package snapshot

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	// EnvRecordMode forces record mode for every verification when truthy.
	EnvRecordMode = "SNAPSHOT_RECORD_MODE"
	// EnvReferenceDir is the base path of the suffixed reference directories.
	EnvReferenceDir = "SNAPSHOT_REFERENCE_DIR"
	// EnvFailureDir receives reference/failed/diff images on mismatch.
	EnvFailureDir = "SNAPSHOT_FAILURE_DIR"
	// EnvConfigFile points to an optional TOML configuration file.
	EnvConfigFile = "SNAPSHOT_CONFIG"
)

// Defaults.
const (
	DefaultTolerance   = 0.05
	DefaultDrainBudget = 500 * time.Millisecond
)

// DotEnvFile is loaded by LoadConfig when present. Variables already set in
// the environment win over the file.
var DotEnvFile = ".env"

// ErrConfig is returned for unreadable or invalid configuration.
var ErrConfig = errors.New("snapshot: invalid configuration")

// Duration wraps time.Duration with TOML-friendly string parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the process-scoped verification configuration.
type Config struct {
	// ReferenceDir is the base path; references live in ReferenceDir+suffix.
	ReferenceDir string `toml:"reference_dir"`
	// FailureDir, when set, receives images for failed comparisons.
	FailureDir string `toml:"failure_dir"`
	// RecordOverride forces record mode for every verifier.
	RecordOverride bool `toml:"record"`
	// Tolerance is the default fraction of pixels allowed to differ.
	Tolerance float64 `toml:"tolerance"`
	// DrainBudget bounds each settle of pending UI work.
	DrainBudget Duration `toml:"drain_budget"`
	// Device describes the modelled screen.
	Device DeviceMetrics `toml:"device"`
	// Suffixes are the reference directory suffixes in default order.
	Suffixes []string `toml:"suffixes"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Tolerance:   DefaultTolerance,
		DrainBudget: Duration{DefaultDrainBudget},
		Device:      DefaultDevice,
		Suffixes:    DefaultSuffixes(),
	}
}

// LoadConfig builds a Config from defaults, the TOML file named by
// SNAPSHOT_CONFIG, DotEnvFile and the environment, in increasing priority.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(DotEnvFile); err == nil {
		if err := godotenv.Load(DotEnvFile); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrConfig, DotEnvFile, err)
		}
	}
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := LoadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFile decodes a TOML file over cfg. Keys absent from the file
// keep their current values.
func LoadConfigFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	return cfg.validate()
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvReferenceDir); ok {
		cfg.ReferenceDir = v
	}
	if v, ok := lookup(EnvFailureDir); ok {
		cfg.FailureDir = v
	}
	if v, ok := lookup(EnvRecordMode); ok {
		cfg.RecordOverride = Truthy(v)
	}
	return cfg.validate()
}

func (c *Config) validate() error {
	if c.Tolerance < 0 || c.Tolerance > 1 {
		return fmt.Errorf("%w: tolerance %v outside [0, 1]", ErrConfig, c.Tolerance)
	}
	if c.Device.Width <= 0 || c.Device.Height <= 0 {
		return fmt.Errorf("%w: device size %vx%v", ErrConfig, c.Device.Width, c.Device.Height)
	}
	if len(c.Suffixes) == 0 {
		return fmt.Errorf("%w: no reference suffixes", ErrConfig)
	}
	return nil
}

// Truthy reports whether an environment value enables a flag: 1, y, yes,
// true or on, in any case.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

var environment = sync.OnceValues(LoadConfig)

// Environment returns the process configuration, loaded once on first use.
func Environment() (Config, error) {
	return environment()
}
