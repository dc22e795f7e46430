package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig indicates an environment value that cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid value")

// Environment keys read by FromLookup.
const (
	EnvWidth    = "MAZEGEN_WIDTH"
	EnvLength   = "MAZEGEN_LENGTH"
	EnvSeed     = "MAZEGEN_SEED"
	EnvFormat   = "MAZEGEN_FORMAT"
	EnvLogLevel = "MAZEGEN_LOG_LEVEL"
	EnvColor    = "MAZEGEN_COLOR"
)

// Output formats understood by the CLI.
const (
	FormatInts    = "ints"    // raw mask integers
	FormatLetters = "letters" // decoded direction letters
	FormatASCII   = "ascii"   // wall drawing
)

// Config holds the CLI settings.
type Config struct {
	Width    int    // Columns of the maze
	Length   int    // Rows of the maze
	Seed     int64  // Carving seed; 0 seeds from the clock
	Format   string // One of FormatInts, FormatLetters, FormatASCII
	LogLevel string // logrus level name
	Color    bool   // Colour ASCII output when stdout is a terminal
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Width:    8,
		Length:   8,
		Seed:     0,
		Format:   FormatASCII,
		LogLevel: "info",
		Color:    true,
	}
}

// LookupFunc reports the value of an environment key, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Lookup layers the given .env files (default ".env") under env: a key set
// in env wins over the same key in a file. Missing files are skipped and
// the process environment is never modified.
func Lookup(env LookupFunc, files ...string) (LookupFunc, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	fileEnv := make(map[string]string)
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: loading env file: %w", err)
		}
		for k, v := range vals {
			if _, ok := fileEnv[k]; !ok {
				fileEnv[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := env(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}, nil
}

// Without returns lookup with keys reported as unset.
func Without(lookup LookupFunc, keys ...string) LookupFunc {
	hidden := make(map[string]bool, len(keys))
	for _, k := range keys {
		hidden[k] = true
	}

	return func(key string) (string, bool) {
		if hidden[key] {
			return "", false
		}
		return lookup(key)
	}
}

// FromLookup builds a Config from a lookup function such as os.LookupEnv.
// Unset variables keep their Default value.
func FromLookup(lookup LookupFunc) (Config, error) {
	cfg := Default()

	var err error
	if cfg.Width, err = intEnv(lookup, EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Length, err = intEnv(lookup, EnvLength, cfg.Length); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: MAZEGEN_SEED=%q must be an integer", ErrInvalidConfig, v)
		}
	}
	if v, ok := lookup(EnvFormat); ok {
		cfg.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvColor); ok {
		if cfg.Color, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%w: MAZEGEN_COLOR=%q must be a boolean", ErrInvalidConfig, v)
		}
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the output format. Dimensions are left to maze.New so
// that the generator reports them with its own error.
func (c Config) Validate() error {
	switch c.Format {
	case FormatInts, FormatLetters, FormatASCII:
		return nil
	default:
		return fmt.Errorf("%w: format %q (want %s, %s or %s)", ErrInvalidConfig, c.Format, FormatInts, FormatLetters, FormatASCII)
	}
}

func intEnv(lookup LookupFunc, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidConfig, key, v)
	}

	return n, nil
}
