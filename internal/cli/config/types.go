// Package config loads settings for the debase CLI.
package config

import "context"

// Config holds the settings shared by every command.
type Config struct {
	Mode    string `koanf:"mode"`
	Base    int    `koanf:"base"`
	Verbose bool   `koanf:"verbose"`
}

// ctxKey is used to store the config in a command context.
type ctxKey struct{}

// WithContext returns a context carrying cfg.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from the context, falling back to
// defaults when none was stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return &Config{
		Mode: DefaultMode,
		Base: DefaultBase,
	}
}
