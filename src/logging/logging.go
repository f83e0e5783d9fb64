package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a zap logger for the given mode ("prod"/"production" or
// anything else for development output).
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

// Nop returns a logger that discards everything. Handy in tests and as a
// fallback when a caller passes nil.
func Nop() *zap.Logger {
	return zap.NewNop()
}
