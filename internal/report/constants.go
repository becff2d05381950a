// internal/report/constants.go
package report

// ---- HEALTH CODES ----

// HealthUnknown represents a run that has not processed anything yet.
const HealthUnknown uint16 = 0

// HealthOK represents a run in which every input and entity succeeded.
const HealthOK uint16 = 1

// HealthDegraded represents a run with some failed inputs or entities.
const HealthDegraded uint16 = 2

// HealthFailed represents a run in which nothing succeeded.
const HealthFailed uint16 = 3

// ---- EXIT CODES ----

const (
	ExitOK       = 0
	ExitDegraded = 2
	ExitFailed   = 1
)
