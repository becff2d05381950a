// internal/sink/writer.go
package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// New builds a Writer for the given format.
// Failed results are never written; callers report them separately.
func New(format string, w io.Writer) (Writer, error) {
	if w == nil {
		return nil, errors.New("sink: output required")
	}

	switch format {
	case FormatJSON, "":
		return &jsonWriter{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlWriter{enc: enc}, nil
	default:
		return nil, fmt.Errorf("sink: unsupported format %q", format)
	}
}

// ---- JSON LINES ----

type jsonWriter struct {
	enc *json.Encoder
}

func (w *jsonWriter) Write(res Result) error {
	if res.Err != nil {
		return nil
	}
	if err := w.enc.Encode(res); err != nil {
		return fmt.Errorf("sink: entity=%s err=%w", res.EntityID, err)
	}
	return nil
}

func (w *jsonWriter) Close() error { return nil }

// ---- YAML DOCUMENTS ----

type yamlWriter struct {
	enc *yaml.Encoder
}

func (w *yamlWriter) Write(res Result) error {
	if res.Err != nil {
		return nil
	}
	if err := w.enc.Encode(res); err != nil {
		return fmt.Errorf("sink: entity=%s err=%w", res.EntityID, err)
	}
	return nil
}

func (w *yamlWriter) Close() error { return w.enc.Close() }
