// Package config reads struct configuration from environment variables.
//
// Structs declare their variables through `env` tags, parsed by the
// caarlos0/env library. A .env file in the working directory, when present,
// is merged into the environment before the first load. Loaded values are
// cached per struct type, so repeated loads of the same type are free and
// always agree:
//
//	type ServerConfig struct {
//		Addr    string        `env:"SERVER_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"SERVER_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad is the panicking variant for wiring done at startup:
//
//	config.MustLoad(&cfg)
//
// Caching is keyed by the concrete struct type, so an application composed of
// several config structs loads each exactly once.
package config
