// internal/report/snapshot.go
package report

// Snapshot is the outcome of a normalization run so far.
// It holds counters only; Evaluate derives the health code.
type Snapshot struct {
	Inputs      int
	InputErrors int

	Entities       int
	EntityFailures int

	Properties int
	Values     int

	// LastError is the message of the most recent failure, if any.
	LastError string
}

// Evaluate derives the health code from the counters.
func Evaluate(s Snapshot) uint16 {
	if s.Inputs == 0 {
		return HealthUnknown
	}

	failures := s.InputErrors + s.EntityFailures
	successes := s.Entities - s.EntityFailures

	switch {
	case failures == 0:
		return HealthOK
	case successes <= 0:
		return HealthFailed
	default:
		return HealthDegraded
	}
}

// ExitCode maps a snapshot onto a process exit code.
func ExitCode(s Snapshot) int {
	switch Evaluate(s) {
	case HealthFailed:
		return ExitFailed
	case HealthDegraded:
		return ExitDegraded
	default:
		return ExitOK
	}
}
