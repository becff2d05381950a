// internal/config/normalize.go
package config

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/tamzrod/claim-normalizer/pkg/claims"
)

const (
	DefaultFormat        = "json"
	DefaultTimeConverter = string(claims.TimeISO)
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	n := &cfg.Normalizer

	if n.Values.TimeConverter == "" {
		n.Values.TimeConverter = DefaultTimeConverter
	}
	if n.Output.Format == "" {
		n.Output.Format = DefaultFormat
	}
	if n.Workers == 0 {
		n.Workers = runtime.GOMAXPROCS(0)
	}
}

// SimplifyOptions maps the config onto claim simplification options.
func (c *Config) SimplifyOptions(logger *zap.Logger) claims.SimplifyOptions {
	v := c.Normalizer.Values
	return claims.SimplifyOptions{
		Options: claims.Options{
			KeepRichValues: v.KeepRichValues,
			EntityPrefix:   v.EntityPrefix,
			TimeConverter:  claims.TimeConverter(v.TimeConverter),
			Logger:         logger,
		},
		KeepNonTruthy: c.Normalizer.Claims.KeepNonTruthy,
		KeepNoValue:   c.Normalizer.Claims.KeepNoValue,
	}
}
