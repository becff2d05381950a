// internal/report/report_test.go
package report

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		s    Snapshot
		want uint16
		exit int
	}{
		{"empty", Snapshot{}, HealthUnknown, ExitOK},
		{"ok", Snapshot{Inputs: 1, Entities: 3}, HealthOK, ExitOK},
		{"degraded", Snapshot{Inputs: 1, Entities: 3, EntityFailures: 1}, HealthDegraded, ExitDegraded},
		{"all entities failed", Snapshot{Inputs: 1, Entities: 2, EntityFailures: 2}, HealthFailed, ExitFailed},
		{"unreadable input", Snapshot{Inputs: 1, InputErrors: 1}, HealthFailed, ExitFailed},
		{"one of two inputs failed", Snapshot{Inputs: 2, InputErrors: 1, Entities: 4}, HealthDegraded, ExitDegraded},
	}

	for _, tc := range cases {
		if got := Evaluate(tc.s); got != tc.want {
			t.Fatalf("%s: Evaluate=%d, want %d", tc.name, got, tc.want)
		}
		if got := ExitCode(tc.s); got != tc.exit {
			t.Fatalf("%s: ExitCode=%d, want %d", tc.name, got, tc.exit)
		}
	}
}

func TestEncode(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("summary", Encode(Snapshot{Inputs: 1, Entities: 2, Values: 5, LastError: "boom"})...)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["health"] != "ok" || ctx["values"] != int64(5) || ctx["last_error"] != "boom" {
		t.Fatalf("unexpected fields: %v", ctx)
	}
}
