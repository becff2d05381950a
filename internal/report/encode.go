// internal/report/encode.go
package report

import "go.uber.org/zap"

var healthNames = map[uint16]string{
	HealthUnknown:  "unknown",
	HealthOK:       "ok",
	HealthDegraded: "degraded",
	HealthFailed:   "failed",
}

// Encode converts a Snapshot into structured log fields.
// No IO. No side effects.
func Encode(s Snapshot) []zap.Field {
	fields := []zap.Field{
		zap.String("health", healthNames[Evaluate(s)]),
		zap.Int("inputs", s.Inputs),
		zap.Int("input_errors", s.InputErrors),
		zap.Int("entities", s.Entities),
		zap.Int("entity_failures", s.EntityFailures),
		zap.Int("properties", s.Properties),
		zap.Int("values", s.Values),
	}
	if s.LastError != "" {
		fields = append(fields, zap.String("last_error", s.LastError))
	}
	return fields
}
