// Package config loads typed configuration structs from environment
// variables. A .env file is loaded once per process if present, then each
// struct type is parsed once and cached so every caller sees the same values.
//
// Usage:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
