// Package config resolves the runtime configuration of the tutte CLI and
// server. Precedence, lowest to highest:
//
//	defaults → YAML file → .env file → TUTTE_* environment → command-line flags
//
// Flags are applied by the caller (cmd/tutte) after Load.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tutte/cache"
	"github.com/katalvlaran/tutte/tutte"
)

// ErrInvalidConfig is returned by Validate (and Load) for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TUTTE_"

// Config is the resolved configuration.
type Config struct {
	LogLevel  string        // trace|debug|info|warn|error
	LogFormat string        // json|console
	Budget    int64         // engine node budget, 0 = unlimited
	Workers   int           // engine workers, 1 = sequential
	Timeout   time.Duration // per-computation deadline, 0 = none
	Addr      string        // HTTP listen address
	Cache     cache.Config

	// Family size caps checked before a graph is built, 0 = none.
	MaxVertices int
	MaxEdges    int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "json",
		Budget:      5_000_000,
		Workers:     1,
		Timeout:     30 * time.Second,
		MaxVertices: 256,
		MaxEdges:    2048,
		Addr:        ":8080",
		Cache:       cache.Config{Kind: cache.KindNone, MaxEntries: 1024},
	}
}

// FileConfig is the YAML shape; nil fields keep the lower-precedence value.
type FileConfig struct {
	Logging *LoggingFileConfig `yaml:"logging"`
	Engine  *EngineFileConfig  `yaml:"engine"`
	Server  *ServerFileConfig  `yaml:"server"`
	Cache   *CacheFileConfig   `yaml:"cache"`
}

type LoggingFileConfig struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

type EngineFileConfig struct {
	Budget      *int64  `yaml:"budget"`
	Workers     *int    `yaml:"workers"`
	Timeout     *string `yaml:"timeout"`
	MaxVertices *int    `yaml:"max_vertices"`
	MaxEdges    *int    `yaml:"max_edges"`
}

type ServerFileConfig struct {
	Addr *string `yaml:"addr"`
}

type CacheFileConfig struct {
	Kind       *string `yaml:"kind"`
	MaxEntries *int    `yaml:"max_entries"`
	Path       *string `yaml:"path"`
	Addr       *string `yaml:"addr"`
	Password   *string `yaml:"password"`
	DB         *int    `yaml:"db"`
	TTL        *string `yaml:"ttl"`
}

// Load resolves the configuration from an optional YAML file, an optional
// .env file and the process environment. Empty paths are skipped; a missing
// .env file is not an error, a missing YAML file is.
func Load(path, envFile string) (Config, error) {
	return load(path, envFile, os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := loadFileConfig(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		if err = applyFileConfig(&cfg, fileCfg); err != nil {
			return Config{}, err
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = vals
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("config: %s: %w", envFile, err)
		}
	}
	// Process environment wins over .env entries.
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FileConfig
	if err = yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	return &fc, nil
}

func parseDuration(field, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", field, raw, ErrInvalidConfig)
	}

	return d, nil
}

func applyFileConfig(cfg *Config, fc *FileConfig) error {
	if fc == nil {
		return nil
	}
	if l := fc.Logging; l != nil {
		if l.Level != nil {
			cfg.LogLevel = strings.TrimSpace(*l.Level)
		}
		if l.Format != nil {
			cfg.LogFormat = strings.TrimSpace(*l.Format)
		}
	}
	if e := fc.Engine; e != nil {
		if e.Budget != nil {
			cfg.Budget = *e.Budget
		}
		if e.Workers != nil {
			cfg.Workers = *e.Workers
		}
		if e.Timeout != nil {
			d, err := parseDuration("engine.timeout", *e.Timeout)
			if err != nil {
				return err
			}
			cfg.Timeout = d
		}
		if e.MaxVertices != nil {
			cfg.MaxVertices = *e.MaxVertices
		}
		if e.MaxEdges != nil {
			cfg.MaxEdges = *e.MaxEdges
		}
	}
	if s := fc.Server; s != nil && s.Addr != nil {
		cfg.Addr = strings.TrimSpace(*s.Addr)
	}
	if c := fc.Cache; c != nil {
		if c.Kind != nil {
			cfg.Cache.Kind = strings.TrimSpace(*c.Kind)
		}
		if c.MaxEntries != nil {
			cfg.Cache.MaxEntries = *c.MaxEntries
		}
		if c.Path != nil {
			cfg.Cache.Path = strings.TrimSpace(*c.Path)
		}
		if c.Addr != nil {
			cfg.Cache.Addr = strings.TrimSpace(*c.Addr)
		}
		if c.Password != nil {
			cfg.Cache.Password = *c.Password
		}
		if c.DB != nil {
			cfg.Cache.DB = *c.DB
		}
		if c.TTL != nil {
			d, err := parseDuration("cache.ttl", *c.TTL)
			if err != nil {
				return err
			}
			cfg.Cache.TTL = d
		}
	}

	return nil
}

func applyEnv(cfg *Config, env func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := env(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	integer := func(name string, set func(int64)) error {
		v, ok := env(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid %s%s %q: %w", EnvPrefix, name, v, ErrInvalidConfig)
		}
		set(n)
		return nil
	}
	duration := func(name string, dst *time.Duration) error {
		v, ok := env(EnvPrefix + name)
		if !ok {
			return nil
		}
		d, err := parseDuration(EnvPrefix+name, v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}

	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("ADDR", &cfg.Addr)
	str("CACHE", &cfg.Cache.Kind)
	str("CACHE_PATH", &cfg.Cache.Path)
	str("REDIS_ADDR", &cfg.Cache.Addr)
	str("REDIS_PASSWORD", &cfg.Cache.Password)

	for _, step := range []error{
		integer("BUDGET", func(n int64) { cfg.Budget = n }),
		integer("WORKERS", func(n int64) { cfg.Workers = int(n) }),
		integer("MAX_VERTICES", func(n int64) { cfg.MaxVertices = int(n) }),
		integer("MAX_EDGES", func(n int64) { cfg.MaxEdges = int(n) }),
		integer("CACHE_MAX_ENTRIES", func(n int64) { cfg.Cache.MaxEntries = int(n) }),
		integer("REDIS_DB", func(n int64) { cfg.Cache.DB = int(n) }),
		duration("TIMEOUT", &cfg.Timeout),
		duration("CACHE_TTL", &cfg.Cache.TTL),
	} {
		if step != nil {
			return step
		}
	}

	return nil
}

var (
	validLevels  = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"json": true, "console": true}
	validCaches  = map[string]bool{
		cache.KindNone: true, cache.KindMemory: true, cache.KindBadger: true, cache.KindRedis: true,
	}
)

// Validate checks value ranges; errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	var problems []string
	if !validLevels[strings.ToLower(c.LogLevel)] {
		problems = append(problems, fmt.Sprintf("log level %q", c.LogLevel))
	}
	if !validFormats[strings.ToLower(c.LogFormat)] {
		problems = append(problems, fmt.Sprintf("log format %q", c.LogFormat))
	}
	if c.Budget < 0 {
		problems = append(problems, fmt.Sprintf("budget %d < 0", c.Budget))
	}
	if c.Workers < 1 {
		problems = append(problems, fmt.Sprintf("workers %d < 1", c.Workers))
	}
	if c.MaxVertices < 0 {
		problems = append(problems, fmt.Sprintf("max vertices %d < 0", c.MaxVertices))
	}
	if c.MaxEdges < 0 {
		problems = append(problems, fmt.Sprintf("max edges %d < 0", c.MaxEdges))
	}
	if c.Timeout < 0 {
		problems = append(problems, fmt.Sprintf("timeout %s < 0", c.Timeout))
	}
	if !validCaches[c.Cache.Kind] {
		problems = append(problems, fmt.Sprintf("cache kind %q", c.Cache.Kind))
	}
	if c.Cache.Kind == cache.KindRedis && c.Cache.Addr == "" {
		problems = append(problems, "redis cache without address")
	}
	if c.Cache.TTL < 0 {
		problems = append(problems, fmt.Sprintf("cache ttl %s < 0", c.Cache.TTL))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// EngineOptions maps the engine settings onto tutte options.
func (c Config) EngineOptions(log logr.Logger) []tutte.Option {
	return []tutte.Option{
		tutte.WithNodeBudget(c.Budget),
		tutte.WithWorkers(c.Workers),
		tutte.WithLogger(log),
	}
}
