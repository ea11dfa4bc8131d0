package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseConfig is returned when environment parsing fails for a
// configuration struct.
var ErrParseConfig = errors.New("failed to parse config from environment")

var (
	// dotenvOnce loads .env files exactly once, before the first parse.
	// A missing .env file is not an error; real environments set vars
	// directly.
	dotenvOnce sync.Once

	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)
)

// Load populates cfg from environment variables using its env struct tags.
// The first call for a given type parses the environment; subsequent calls
// return the cached value. cfg must be a non-nil pointer to a struct.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil target", ErrParseConfig)
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseConfig, err)
	}

	cacheMu.Lock()
	cache[key] = *cfg
	cacheMu.Unlock()

	return nil
}

// MustLoad is Load that panics on failure. Intended for process startup
// where a missing required variable should stop the program immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
