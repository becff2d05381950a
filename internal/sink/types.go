// internal/sink/types.go
package sink

import "github.com/tamzrod/claim-normalizer/pkg/claims"

// Result is the normalized form of one entity.
type Result struct {
	Source   string                    `json:"-" yaml:"-"`
	EntityID string                    `json:"id" yaml:"id"`
	Claims   map[string][]claims.Value `json:"claims" yaml:"claims"`

	Err error `json:"-" yaml:"-"` // non-nil means the entity could not be normalized
}

// Writer delivers results to an output.
type Writer interface {
	Write(res Result) error
	Close() error
}
