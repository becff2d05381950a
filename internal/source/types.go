// internal/source/types.go
package source

import (
	"time"

	"github.com/tamzrod/claim-normalizer/pkg/claims"
)

// Entity is one entity document as found in Wikibase JSON.
// Only the parts the normalizer consumes are decoded.
type Entity struct {
	ID     string                    `json:"id"`
	Type   string                    `json:"type"`
	Claims map[string][]claims.Claim `json:"claims"`
}

// Batch is the result of reading one input.
type Batch struct {
	Source string
	At     time.Time

	Entities []Entity
	Err      error // non-nil means the input could not be read completely
}
