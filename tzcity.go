// Package tzcity maps informal city and country names to canonical
// time-zone keys ("lOnDon" -> "Europe/London") and capitalizes place names
// following a small set of rules ("rio de janeiro" -> "Rio de Janeiro",
// "n'djamena" -> "N'Djamena").
package tzcity

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Version is the library version.
const Version = "0.0.2"

// Config contains configuration options for TZCity initialization.
type Config struct {
	Rules    Rules          // Capitalization rules (default: DefaultRules())
	Table    *Table         // Time-zone table (default: embedded table)
	DataFile string         // YAML table on disk, used when Table is nil
	Logger   zerolog.Logger // Debug logging (default: disabled)
}

// Option is a functional option for configuring TZCity.
type Option func(*Config)

// WithRules replaces the capitalization rules.
func WithRules(r Rules) Option {
	return func(c *Config) {
		c.Rules = r
	}
}

// WithTable replaces the time-zone table.
func WithTable(t *Table) Option {
	return func(c *Config) {
		c.Table = t
	}
}

// WithDataFile loads the time-zone table from a YAML file instead of the
// embedded one.
func WithDataFile(path string) Option {
	return func(c *Config) {
		c.DataFile = path
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func defaultConfig() *Config {
	return &Config{
		Rules:  DefaultRules(),
		Logger: zerolog.Nop(),
	}
}

// TZCity resolves place names to time-zone keys and formats them for display.
// Safe for concurrent use after initialization.
type TZCity struct {
	table      *Table
	resolver   *Resolver
	normalizer *Normalizer
	log        zerolog.Logger
}

// New builds a TZCity.
//
// Example:
//
//	tz, err := tzcity.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, err := tz.Find("port au prince") // "America/Port-au-Prince"
func New(opts ...Option) (*TZCity, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	caps, err := NewCapitalizer(cfg.Rules)
	if err != nil {
		return nil, err
	}

	table := cfg.Table
	switch {
	case table != nil:
	case cfg.DataFile != "":
		table, err = LoadTableFile(cfg.DataFile)
	default:
		table, err = DefaultTable()
	}
	if err != nil {
		return nil, fmt.Errorf("loading time-zone table: %w", err)
	}

	cfg.Logger.Debug().
		Int("zones", table.Len()).
		Str("source", tableSource(cfg)).
		Msg("time-zone table loaded")

	return &TZCity{
		table:      table,
		resolver:   NewResolver(table),
		normalizer: NewNormalizer(caps, table),
		log:        cfg.Logger,
	}, nil
}

func tableSource(cfg *Config) string {
	switch {
	case cfg.Table != nil:
		return "custom"
	case cfg.DataFile != "":
		return cfg.DataFile
	}
	return "embedded"
}

// Singleton pattern for the default instance.
var (
	defaultTZCity     *TZCity
	defaultTZCityOnce sync.Once
	defaultTZCityErr  error
)

// Default returns a shared TZCity built with default options.
func Default() (*TZCity, error) {
	defaultTZCityOnce.Do(func() {
		defaultTZCity, defaultTZCityErr = New()
	})
	return defaultTZCity, defaultTZCityErr
}

// Find resolves city and returns the display form of its time-zone key.
func (tz *TZCity) Find(city string) (string, error) {
	key, err := tz.Resolve(city)
	if err != nil {
		return "", err
	}
	return tz.normalizer.FormatDisplayName(key, true)
}

// Resolve returns the lowercase time-zone key for city.
func (tz *TZCity) Resolve(city string) (string, error) {
	key, err := tz.resolver.Resolve(city)
	if err != nil {
		tz.log.Debug().Str("query", city).Msg("no time zone matched")
		return "", err
	}
	return key, nil
}

// Normalize capitalizes a time-zone key or a plain place name.
func (tz *TZCity) Normalize(nameOrKey string) (string, error) {
	return tz.normalizer.Normalize(nameOrKey)
}

// Capitalize capitalizes name as a plain place name, even if it happens to
// be a time-zone key.
func (tz *TZCity) Capitalize(name string) (string, error) {
	return tz.normalizer.FormatDisplayName(name, false)
}

// Table returns the time-zone table in use.
func (tz *TZCity) Table() *Table {
	return tz.table
}

// Find resolves city with the default instance.
func Find(city string) (string, error) {
	tz, err := Default()
	if err != nil {
		return "", err
	}
	return tz.Find(city)
}

// Normalize capitalizes nameOrKey with the default instance.
func Normalize(nameOrKey string) (string, error) {
	tz, err := Default()
	if err != nil {
		return "", err
	}
	return tz.Normalize(nameOrKey)
}
