// pkg/claims/options.go
package claims

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tamzrod/claim-normalizer/pkg/wbtime"
)

// TimeConverter names a built-in time converter.
type TimeConverter string

const (
	TimeISO       TimeConverter = "iso"
	TimeEpoch     TimeConverter = "epoch"
	TimeSimpleDay TimeConverter = "simple-day"
	TimeNone      TimeConverter = "none"
)

// TimeConverters lists the built-in converter keys.
var TimeConverters = []TimeConverter{TimeISO, TimeEpoch, TimeSimpleDay, TimeNone}

// TimeConverterNames returns the built-in keys as "iso, epoch, ...".
func TimeConverterNames() string {
	names := make([]string, len(TimeConverters))
	for i, c := range TimeConverters {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// TimeConverterFunc is a caller-supplied time converter.
type TimeConverterFunc func(v wbtime.Value) Value

// Options controls the shape of normalized values.
// The zero value returns bare values, unprefixed ids and ISO times.
type Options struct {
	KeepRichValues bool

	// EntityPrefix, when set, renders entity ids as "<prefix>:<id>".
	EntityPrefix string

	// TimeConverter selects a built-in converter; empty means TimeISO.
	// TimeConverterFunc takes precedence when set.
	TimeConverter     TimeConverter
	TimeConverterFunc TimeConverterFunc

	// Logger receives diagnostics about malformed claims. Nil discards them.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
