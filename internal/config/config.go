// Package config provides Viper-based configuration loading for tallgrass.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File, when set, receives log output instead of stderr so the terminal UI stays clean.
	File string `mapstructure:"file"`
}

// Pokedex sources.
const (
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
)

// GameConfig holds the rules and content the game session starts from.
type GameConfig struct {
	// PokedexSource selects where the species and move tables come from: "yaml" or "postgres".
	PokedexSource string `mapstructure:"pokedex_source"`
	// PokedexDir is the directory holding the YAML tables.
	PokedexDir string `mapstructure:"pokedex_dir"`
	// MapFile is the YAML map the player starts on.
	MapFile string `mapstructure:"map_file"`
	// Seed fixes the random stream; 0 draws from crypto/rand.
	Seed uint64 `mapstructure:"seed"`
	// MoveFallback is the policy for species with fewer than two moves: "reject" or "duplicate".
	MoveFallback string `mapstructure:"move_fallback"`
	// RegionX and RegionY, when either is non-zero, replace the map file's region index.
	RegionX int `mapstructure:"region_x"`
	RegionY int `mapstructure:"region_y"`
	// Starting bag counters.
	Potions   int `mapstructure:"potions"`
	Revives   int `mapstructure:"revives"`
	Pokeballs int `mapstructure:"pokeballs"`
}

// TelemetryConfig holds OpenTelemetry settings. The exporter endpoint and
// headers come from the standard OTEL_* environment variables.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Config is the top-level application configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Game      GameConfig      `mapstructure:"game"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateDatabase(c.Database); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTelemetry(c.Telemetry); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	switch g.PokedexSource {
	case SourceYAML:
		if g.PokedexDir == "" {
			errs = append(errs, "game.pokedex_dir must not be empty when game.pokedex_source is yaml")
		}
	case SourcePostgres:
	default:
		errs = append(errs, fmt.Sprintf("game.pokedex_source must be one of [yaml, postgres], got %q", g.PokedexSource))
	}
	if g.MapFile == "" {
		errs = append(errs, "game.map_file must not be empty")
	}
	if g.MoveFallback != "reject" && g.MoveFallback != "duplicate" {
		errs = append(errs, fmt.Sprintf("game.move_fallback must be one of [reject, duplicate], got %q", g.MoveFallback))
	}
	counters := []struct {
		name string
		n    int
	}{{"potions", g.Potions}, {"revives", g.Revives}, {"pokeballs", g.Pokeballs}}
	for _, c := range counters {
		if c.n < 0 {
			errs = append(errs, fmt.Sprintf("game.%s must be >= 0, got %d", c.name, c.n))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateTelemetry(t TelemetryConfig) error {
	if t.Enabled && t.ServiceName == "" {
		return errors.New("telemetry.service_name must not be empty when telemetry is enabled")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with TALLGRASS_ prefix
	v.SetEnvPrefix("TALLGRASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "tallgrass")
	v.SetDefault("database.password", "tallgrass")
	v.SetDefault("database.name", "tallgrass")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")

	v.SetDefault("game.pokedex_source", SourceYAML)
	v.SetDefault("game.pokedex_dir", "content/pokedex")
	v.SetDefault("game.map_file", "content/maps/route1.yaml")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.move_fallback", "reject")
	v.SetDefault("game.region_x", 0)
	v.SetDefault("game.region_y", 0)
	v.SetDefault("game.potions", 5)
	v.SetDefault("game.revives", 2)
	v.SetDefault("game.pokeballs", 10)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "tallgrass")
}
