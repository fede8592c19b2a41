package render

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/gridsort/pkg/errors"
	"github.com/matzehuels/gridsort/pkg/observability"
)

// Format is an export format name.
type Format string

// Export formats.
const (
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatDOT, FormatSVG}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want json, dot or svg)", name)
	}
	return f, nil
}

// Export encodes l in the given format, reporting to the registered
// render hooks.
func Export(ctx context.Context, l Layout, f Format) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(string(f), len(l.Items))
	start := time.Now()

	data, err := export(ctx, l, f)
	hooks.OnRenderComplete(string(f), len(data), time.Since(start), err)
	return data, err
}

func export(ctx context.Context, l Layout, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return RenderJSON(l)
	case FormatDOT:
		return []byte(ToDOT(l, Options{Detailed: true})), nil
	case FormatSVG:
		return RenderSVG(ctx, l, Options{})
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown format %q", f)
	}
}
