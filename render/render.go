// Package render draws the banner: it walks the art block top to bottom and,
// for each art row, prints the art fragment followed by the registry entry
// aligned to that row (or nothing), then a newline.
//
// The engine is platform-agnostic and strictly sequential. Providers are
// invoked synchronously as their row is reached; a slow provider blocks the
// pass and a failing one has already been mapped to its sentinel by sysinfo.
package render

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"bkfetch/ascii"
	"bkfetch/registry"
	"bkfetch/sysinfo"
)

// Printer turns one row into text. Implementations return strings without a
// trailing newline; the Engine owns line termination.
type Printer interface {
	// Begin is called once at the start of every pass.
	Begin(art ascii.Art)
	// Art renders one art row, including any padding before the fact column.
	Art(text string) string
	// Row renders a registry entry.
	Row(label, value string, kind registry.RowKind) string
	// Blank renders an empty fact column.
	Blank() string
}

// NopPrinter prints the art unchanged and leaves the fact column blank.
type NopPrinter struct{}

func (NopPrinter) Begin(ascii.Art)                             {}
func (NopPrinter) Art(text string) string                      { return text }
func (NopPrinter) Row(string, string, registry.RowKind) string { return "" }
func (NopPrinter) Blank() string                               { return "" }

// Engine aligns a registry against an art block and dispatches each row to a Printer.
type Engine struct {
	printer Printer
	user    sysinfo.Provider
	bias    int
	log     zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithBias overrides DefaultBias.
func WithBias(bias int) Option {
	return func(e *Engine) { e.bias = bias }
}

// WithLogger sets the logger used for pass and row diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New returns an Engine that renders through p. user supplies the label of
// the host row; a nil user renders as sysinfo.Unknown.
func New(p Printer, user sysinfo.Provider, opts ...Option) *Engine {
	if p == nil {
		p = NopPrinter{}
	}
	if user == nil {
		user = sysinfo.Static(sysinfo.Unknown)
	}
	e := &Engine{
		printer: p,
		user:    user,
		bias:    DefaultBias,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render writes exactly art.Height() lines to w.
//
// Parameters:
//   - w: Destination for the banner
//   - art: The art block; one output line per art row
//   - reg: The fact rows; entry k lands on art row k+Offset(height, bias)
//
// Returns:
//   - The first write error from w, or nil
//
// Entries that fall outside the art block are not shown. Provider failures
// never interrupt the pass.
func (e *Engine) Render(w io.Writer, art ascii.Art, reg registry.Registry) error {
	offset := Offset(art.Height(), e.bias)
	e.log.Debug().
		Str("art", art.Name).
		Int("height", art.Height()).
		Int("entries", reg.Len()).
		Int("offset", offset).
		Strs("rows", reg.Labels()).
		Msg("Rendering banner")

	e.printer.Begin(art)

	var line strings.Builder
	for i, text := range art.Lines {
		line.Reset()
		line.WriteString(e.printer.Art(text))
		line.WriteString(e.fact(reg, EntryIndex(i, offset)))
		line.WriteByte('\n')

		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// fact renders registry position idx, or a blank column if idx is out of range.
func (e *Engine) fact(reg registry.Registry, idx int) string {
	entry, ok := reg.At(idx)
	if !ok {
		return e.printer.Blank()
	}
	e.log.Trace().Int("index", idx).Stringer("kind", entry.Kind()).Msg("Dispatching row")

	switch en := entry.(type) {
	case registry.HostInfo:
		return e.printer.Row(e.user(), en.Hostname(), registry.HostInfoRow)
	case registry.Delimiter:
		return e.printer.Row("", "", registry.DelimiterRow)
	case registry.Detail:
		return e.printer.Row(en.Label(), en.Value(), registry.DetailRow)
	case registry.ColorSwatch:
		return e.printer.Row("", "", registry.ColorSwatchRow)
	default:
		return e.printer.Blank()
	}
}
