// internal/config/validate.go
package config

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/tamzrod/claim-normalizer/pkg/claims"
	"github.com/tamzrod/claim-normalizer/pkg/wikibase"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	// ------------------------------------------------------------
	// FIELD RULES (struct tags)
	// ------------------------------------------------------------

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// ------------------------------------------------------------
	// TIME CONVERTER
	// ------------------------------------------------------------

	tc := cfg.Normalizer.Values.TimeConverter
	if tc != "" && !slices.Contains(claims.TimeConverters, claims.TimeConverter(tc)) {
		return fmt.Errorf("values.time_converter: %q is not one of %s", tc, claims.TimeConverterNames())
	}

	// ------------------------------------------------------------
	// PROPERTY FILTER
	// ------------------------------------------------------------

	seen := make(map[string]struct{}, len(cfg.Normalizer.Claims.Properties))

	for _, p := range cfg.Normalizer.Claims.Properties {
		if !wikibase.IsPropertyID(p) {
			return fmt.Errorf("claims.properties: %q is not a property id", p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("claims.properties: %q listed twice", p)
		}
		seen[p] = struct{}{}
	}

	return nil
}
