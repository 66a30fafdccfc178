// Package config loads typed configuration structs from environment
// variables and optional .env files.
//
// Configuration is declared as plain structs with `env` tags and loaded with
// the generic Load function. Each distinct struct type is parsed once per
// process and cached, so independent components can load the same
// configuration without re-reading the environment.
//
// # Usage
//
//	type LogConfig struct {
//		Level  string `env:"GRAPHVALID_LOG_LEVEL" envDefault:"info"`
//		Format string `env:"GRAPHVALID_LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// # Error Handling
//
// Load returns ErrNilPointer for a nil destination and joins ErrParsingConfig
// with the underlying parser error when tags cannot be satisfied. A missing
// default .env file is not an error; explicitly requested files passed to
// LoadEnv must exist.
package config
