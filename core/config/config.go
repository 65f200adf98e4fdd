package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// loadEnvOnce guards the .env autoload; a missing file is not an error.
	loadEnvOnce sync.Once

	// cache holds one loaded value per configuration type.
	cache sync.Map // reflect.Type -> any
)

// Load parses environment variables into cfg, which must be a non-nil
// pointer to a struct with `env` tags. Each configuration type is loaded
// once per process; subsequent calls return the cached value.
//
// On first use, variables from a `.env` file in the working directory are
// loaded into the environment (existing variables win).
func Load(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: expected non-nil struct pointer, got %T", cfg)
	}

	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := rv.Elem().Type()
	if cached, ok := cache.Load(typ); ok {
		rv.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}

	cache.Store(typ, rv.Elem().Interface())
	return nil
}

// MustLoad is like Load but panics on failure. Useful at process startup
// where a missing required variable should abort immediately.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
