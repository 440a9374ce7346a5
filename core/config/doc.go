// Package config loads typed configuration structs from environment
// variables using caarlos0/env. A .env file in the working directory is read
// once on first use via godotenv; variables already set in the process win.
//
// Provider packages ship their own Config types with env tags, so wiring a
// sender is usually:
//
//	import (
//		"github.com/dmitrymomot/mailkit/core/config"
//		"github.com/dmitrymomot/mailkit/integration/email/ohmysmtp"
//	)
//
//	var cfg ohmysmtp.Config
//	if err := config.Load(&cfg); err != nil {
//		return err // wraps config.ErrParsingConfig
//	}
//	client, err := ohmysmtp.NewFromConfig(cfg)
//
// MustLoad panics instead of returning the error, for use during startup.
//
// # Caching
//
// Each struct type is parsed once per process and cached; later calls for the
// same type return the cached value even if the environment changed in the
// meantime. Different types are cached independently.
package config
