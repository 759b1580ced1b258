// Package logging builds the structured logger used by cliffcalc.
// Library packages never log; only the command does.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Component is attached to every record.
const Component = "cliffcalc"

// New returns a JSON logger writing to w at the named level.
// An empty level means info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if s := strings.TrimSpace(level); s != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(s)); err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: level %q: %w", level, err)
		}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Str("component", Component).Logger(), nil
}
