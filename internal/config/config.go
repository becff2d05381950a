// internal/config/config.go
package config

type Config struct {
	Normalizer NormalizerConfig `yaml:"normalizer"`
}

type NormalizerConfig struct {
	Values  ValuesConfig `yaml:"values"`
	Claims  ClaimsConfig `yaml:"claims"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers" validate:"gte=0,lte=256"`
}

// ---- VALUES ----

type ValuesConfig struct {
	KeepRichValues bool   `yaml:"keep_rich_values"`
	EntityPrefix   string `yaml:"entity_prefix" validate:"omitempty,alphanum"`
	TimeConverter  string `yaml:"time_converter"`
}

// ---- CLAIMS ----

type ClaimsConfig struct {
	KeepNonTruthy bool `yaml:"keep_non_truthy"`
	KeepNoValue   bool `yaml:"keep_no_value"`

	// Properties restricts output to these property ids (optional).
	Properties []string `yaml:"properties"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json yaml"`
}
