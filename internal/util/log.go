package util

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFromContext returns the logger attached to ctx or the global logger
func LogFromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			return l
		}
	}

	return &log.Logger
}

// ContextWithComponent attaches a logger with a component field to ctx
func ContextWithComponent(ctx context.Context, component string) context.Context {
	l := LogFromContext(ctx).With().Str("component", component).Logger()
	return l.WithContext(ctx)
}
