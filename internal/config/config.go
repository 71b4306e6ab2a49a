// Package config loads and validates economy configuration for granary.
// An economy file enumerates the closed set of resource kinds, their
// definitions, and their starting rates; the ledger itself never reads
// configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"

	"github.com/petrichor-games/granary/pkg/ledger"
)

const (
	configFileName  = "economy"
	configFileType  = "yaml"
	economyFileName = "economy.yaml"

	// Config keys.
	cfgKeyResources = "resources"
	cfgKeyTick      = "tick"

	// DefaultTick is the delta-time applied per tick when the economy file
	// does not set one.
	DefaultTick = 1.0
)

// Validation errors.
var (
	ErrNoResources           = errors.New("economy defines no resources")
	ErrUnknownOverflowPolicy = errors.New("unknown overflow policy")
	ErrUnknownDeficitPolicy  = errors.New("unknown deficit policy")
	ErrNegativeCapacity      = errors.New("capacity must not be negative")
	ErrNegativeRate          = errors.New("rates must not be negative")
	ErrInvalidTick           = errors.New("tick must be positive")
)

// ResourceSpec is the configuration for one resource kind. Empty policy
// strings fall back to the ledger package defaults at define time.
type ResourceSpec struct {
	DisplayName string  `mapstructure:"display_name"`
	Initial     float64 `mapstructure:"initial"`
	Capacity    float64 `mapstructure:"capacity"`
	Overflow    string  `mapstructure:"overflow"`
	Deficit     string  `mapstructure:"deficit"`
	Production  float64 `mapstructure:"production"`
	Consumption float64 `mapstructure:"consumption"`
}

// Definition converts the resource entry into a ledger.Definition.
func (rs ResourceSpec) Definition() ledger.Definition {
	def := ledger.Definition{
		InitialAmount:  rs.Initial,
		MaxCapacity:    rs.Capacity,
		OverflowPolicy: ledger.OverflowPolicy(rs.Overflow),
		DeficitPolicy:  ledger.DeficitPolicy(rs.Deficit),
	}
	if rs.DisplayName != "" {
		name := rs.DisplayName
		def.DisplayName = &name
	}
	return def
}

// Economy is a fully loaded economy configuration.
type Economy struct {
	Resources map[string]ResourceSpec
	Tick      float64
}

// Kinds returns the configured resource kind names, sorted, so callers get a
// stable order out of the map-shaped config.
func (e Economy) Kinds() []string {
	kinds := make([]string, 0, len(e.Resources))
	for k := range e.Resources {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Validate checks that the economy is well-formed. It returns a sentinel
// error from this package, wrapped with the offending resource name.
func (e Economy) Validate() error {
	if len(e.Resources) == 0 {
		return ErrNoResources
	}
	if e.Tick <= 0 {
		return ErrInvalidTick
	}
	for _, kind := range e.Kinds() {
		rs := e.Resources[kind]
		if rs.Overflow != "" && !ledger.ValidOverflowPolicy(ledger.OverflowPolicy(rs.Overflow)) {
			return fmt.Errorf("resource %q: %w: %q", kind, ErrUnknownOverflowPolicy, rs.Overflow)
		}
		if rs.Deficit != "" && !ledger.ValidDeficitPolicy(ledger.DeficitPolicy(rs.Deficit)) {
			return fmt.Errorf("resource %q: %w: %q", kind, ErrUnknownDeficitPolicy, rs.Deficit)
		}
		if rs.Capacity < 0 {
			return fmt.Errorf("resource %q: %w", kind, ErrNegativeCapacity)
		}
		if rs.Production < 0 || rs.Consumption < 0 {
			return fmt.Errorf("resource %q: %w", kind, ErrNegativeRate)
		}
	}
	return nil
}

// Apply defines every configured kind on the ledger and seeds its rates.
// Existing definitions for the same kinds are fully replaced.
func (e Economy) Apply(l *ledger.Ledger[string]) {
	for _, kind := range e.Kinds() {
		rs := e.Resources[kind]
		l.Define(kind, rs.Definition())
		l.SetProductionRate(kind, rs.Production)
		l.SetConsumptionRate(kind, rs.Consumption)
	}
}

// defaultEconomyYAML is the content written to economy.yaml on first run.
const defaultEconomyYAML = `# Granary economy configuration.
#
# Each entry under resources defines one resource kind. Policies:
#   overflow: clamp | reject | allow          (default clamp)
#   deficit:  clamp | reject | allow_negative (default reject)
# capacity 0 means unlimited.

resources:
  gold:
    display_name: Gold
    initial: 100
    capacity: 1000
    overflow: clamp
    deficit: reject
  energy:
    display_name: Energy
    initial: 50
    capacity: 200
    overflow: clamp
    deficit: clamp
    production: 10
    consumption: 3

# Delta-time applied per simulation tick.
tick: 1.0
`

// Load reads economy.yaml from configDir using Viper. It creates the config
// directory and a default economy.yaml on first run; a missing file after
// that is not an error and yields an empty economy.
func Load(configDir string) (Economy, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return Economy{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultEconomyFile(configDir); err != nil {
		return Economy{}, fmt.Errorf("ensure default economy: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyTick, DefaultTick)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Economy{}, fmt.Errorf("read economy config: %w", err)
		}
	}

	var resources map[string]ResourceSpec
	if err := v.UnmarshalKey(cfgKeyResources, &resources); err != nil {
		return Economy{}, fmt.Errorf("unmarshal resources: %w", err)
	}

	return Economy{
		Resources: resources,
		Tick:      v.GetFloat64(cfgKeyTick),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultEconomyFile creates a default economy.yaml if the file does
// not exist in the config directory.
func ensureDefaultEconomyFile(configDir string) error {
	path := filepath.Join(configDir, economyFileName)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat economy file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultEconomyYAML), 0o644)
}
