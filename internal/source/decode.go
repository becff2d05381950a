// internal/source/decode.go
package source

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"unicode"
)

// Decode reads entities from r. Accepted layouts:
//
//	{"entities": {"Q42": {...}}}   one or more API envelopes
//	[{...}, {...}]                 a JSON dump array
//	{...}\n{...}\n                 JSON lines, one entity per line
//
// Entities decoded before an error are returned along with it.
func Decode(r io.Reader) ([]Entity, error) {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)

	if first == '[' {
		var list []Entity
		if err := dec.Decode(&list); err != nil {
			return nil, fmt.Errorf("source: decode array: %w", err)
		}
		return list, nil
	}

	var out []Entity
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("source: document %d: %w", len(out), err)
		}

		ents, err := decodeDocument(raw)
		if err != nil {
			return out, fmt.Errorf("source: document %d: %w", len(out), err)
		}
		out = append(out, ents...)
	}
}

// decodeDocument unpacks an API envelope or a single entity.
func decodeDocument(raw json.RawMessage) ([]Entity, error) {
	var env struct {
		Entities map[string]Entity `json:"entities"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	if env.Entities == nil {
		var e Entity
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return []Entity{e}, nil
	}

	out := make([]Entity, 0, len(env.Entities))
	for _, id := range slices.Sorted(maps.Keys(env.Entities)) {
		e := env.Entities[id]
		if e.ID == "" {
			e.ID = id
		}
		out = append(out, e)
	}
	return out, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(rune(b)) {
			return b, br.UnreadByte()
		}
	}
}
