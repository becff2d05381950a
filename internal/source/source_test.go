// internal/source/source_test.go
package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const envelope = `{"entities": {
  "Q2": {"id": "Q2", "type": "item", "claims": {}},
  "Q1": {"type": "item", "claims": {"P31": [{"id": "Q1$x", "rank": "normal",
    "mainsnak": {"snaktype": "value", "property": "P31", "datatype": "wikibase-item",
      "datavalue": {"type": "wikibase-entityid", "value": {"id": "Q5"}}}}]}}
}}`

func TestDecode_Envelope(t *testing.T) {
	ents, err := Decode(strings.NewReader(envelope))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if len(ents) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(ents))
	}
	// sorted by id, id filled from key
	if ents[0].ID != "Q1" || ents[1].ID != "Q2" {
		t.Fatalf("unexpected order: %s, %s", ents[0].ID, ents[1].ID)
	}
	if got := ents[0].Claims["P31"][0].Mainsnak.Datatype; got != "wikibase-item" {
		t.Fatalf("datatype=%q", got)
	}
}

func TestDecode_JSONLines(t *testing.T) {
	in := `{"id": "Q1", "claims": {}}
{"id": "P31", "type": "property", "claims": {}}
`
	ents, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if len(ents) != 2 || ents[1].ID != "P31" {
		t.Fatalf("unexpected entities: %+v", ents)
	}
}

func TestDecode_Array(t *testing.T) {
	ents, err := Decode(strings.NewReader("\n [ {\"id\": \"Q1\"}, {\"id\": \"Q2\"} ]\n"))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if len(ents) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(ents))
	}
}

func TestDecode_Empty(t *testing.T) {
	ents, err := Decode(strings.NewReader("  \n"))
	if err != nil || len(ents) != 0 {
		t.Fatalf("expected nothing, got %v, %v", ents, err)
	}
}

func TestDecode_PartialFailure(t *testing.T) {
	ents, err := Decode(strings.NewReader("{\"id\": \"Q1\"}\n{\"id\": "))
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(ents) != 1 {
		t.Fatalf("expected the first entity to survive, got %d", len(ents))
	}
}

func TestReadOnce_FailureIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{\"id\": \"Q1\"}\n{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := New(Config{Paths: []string{path}})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	b := s.ReadOnce(path)
	if b.Err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(b.Entities) != 0 {
		t.Fatalf("failed batch must carry no entities, got %d", len(b.Entities))
	}
}

func TestReadOnce_MissingFile(t *testing.T) {
	s, _ := New(Config{Paths: []string{"does-not-exist.json"}})
	if b := s.ReadOnce("does-not-exist.json"); b.Err == nil {
		t.Fatalf("expected open error")
	}
}

func TestRun_StdinDefault(t *testing.T) {
	s, err := New(Config{Stdin: strings.NewReader(envelope)})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	out := make(chan Batch)
	go s.Run(context.Background(), out)

	var batches []Batch
	for b := range out {
		batches = append(batches, b)
	}

	if len(batches) != 1 || batches[0].Source != Stdin || len(batches[0].Entities) != 2 {
		t.Fatalf("unexpected batches: %+v", batches)
	}
}

func TestNew_RejectsDoubleStdin(t *testing.T) {
	if _, err := New(Config{Paths: []string{"-", "-"}}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
