package display

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"bkfetch/ascii"
	"bkfetch/registry"
	"bkfetch/sysinfo"
)

// defaultDelimiterWidth is used when no width is configured and no host row
// has been printed yet in the current pass.
const defaultDelimiterWidth = 16

// swatchBlock is the cell drawn for each swatch color.
const swatchBlock = "   "

// Printer renders art and fact rows with a Theme. It keeps per-pass state
// (art width, host row width) that is reset by Begin, so a Printer must not
// be shared by concurrent passes.
type Printer struct {
	theme          Theme
	renderer       *lipgloss.Renderer
	gap            int
	delimiter      string
	delimiterWidth int
	maxWidth       int

	artStyle   lipgloss.Style
	hostStyle  lipgloss.Style
	labelStyle lipgloss.Style
	ruleStyle  lipgloss.Style

	artWidth  int
	hostWidth int
}

// Option configures a Printer.
type Option func(*Printer)

// WithGap sets the number of spaces between the art and the fact column.
func WithGap(n int) Option {
	return func(p *Printer) { p.gap = max(n, 0) }
}

// WithDelimiter sets the delimiter pattern and its width in cells. A width of
// zero matches the width of the user@host row.
func WithDelimiter(pattern string, width int) Option {
	return func(p *Printer) {
		if pattern != "" {
			p.delimiter = pattern
		}
		p.delimiterWidth = max(width, 0)
	}
}

// WithMaxWidth truncates fact values so no line exceeds n cells. Zero disables truncation.
func WithMaxWidth(n int) Option {
	return func(p *Printer) { p.maxWidth = max(n, 0) }
}

// WithProfile sets the terminal color profile. termenv.Ascii disables all styling.
func WithProfile(profile termenv.Profile) Option {
	return func(p *Printer) { p.renderer.SetColorProfile(profile) }
}

// NewPrinter returns a Printer for theme. Without WithProfile it renders plain text.
func NewPrinter(theme Theme, opts ...Option) *Printer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)

	p := &Printer{
		theme:     theme,
		renderer:  r,
		gap:       3,
		delimiter: "-",
	}
	for _, opt := range opts {
		opt(p)
	}

	p.artStyle = p.colored(theme.Accent)
	p.hostStyle = p.colored(theme.Accent).Bold(true)
	p.labelStyle = p.colored(theme.Label).Bold(true)
	p.ruleStyle = p.colored(theme.Label)
	return p
}

// colored returns a style with foreground c, or an unstyled one if c is empty.
func (p *Printer) colored(c lipgloss.Color) lipgloss.Style {
	style := p.renderer.NewStyle()
	if c != "" {
		style = style.Foreground(c)
	}
	return style
}

// Begin records the art width for padding and forgets the previous pass's host row.
func (p *Printer) Begin(art ascii.Art) {
	p.artWidth = art.Width()
	p.hostWidth = 0
}

// Art colors one art row and pads it to the art width plus the gap.
func (p *Printer) Art(text string) string {
	pad := p.artWidth - ascii.VisibleWidth(text)
	if pad < 0 {
		pad = 0
	}
	return p.artStyle.Render(text) + strings.Repeat(" ", pad+p.gap)
}

// Row renders one registry entry.
func (p *Printer) Row(label, value string, kind registry.RowKind) string {
	switch kind {
	case registry.HostInfoRow:
		value, ok := p.fit(value, ascii.VisibleWidth(label)+1)
		if !ok {
			return p.Blank()
		}
		p.hostWidth = ascii.VisibleWidth(label) + 1 + ascii.VisibleWidth(value)
		return p.hostStyle.Render(label) + "@" + p.hostStyle.Render(value)
	case registry.DelimiterRow:
		return p.ruleStyle.Render(p.rule())
	case registry.DetailRow:
		value, ok := p.fit(value, ascii.VisibleWidth(label)+2)
		if !ok {
			return p.Blank()
		}
		return p.labelStyle.Render(label) + ": " + value
	case registry.ColorSwatchRow:
		swatches := p.theme.Swatches
		if avail := p.available(); avail >= 0 {
			swatches = swatches[:min(len(swatches), avail/len(swatchBlock))]
		}
		var b strings.Builder
		for _, c := range swatches {
			b.WriteString(p.renderer.NewStyle().Background(c).Render(swatchBlock))
		}
		return b.String()
	default:
		return p.Blank()
	}
}

// Blank renders an empty fact column.
func (p *Printer) Blank() string {
	return ""
}

// available returns the cells left for the fact column, or -1 if unlimited.
func (p *Printer) available() int {
	if p.maxWidth == 0 {
		return -1
	}
	return max(p.maxWidth-p.artWidth-p.gap, 0)
}

// fit truncates value so that prefix cells plus value fit the fact column.
// It reports false when not even one cell of the value fits after the prefix,
// in which case the row is left blank.
func (p *Printer) fit(value string, prefix int) (string, bool) {
	avail := p.available()
	if avail < 0 {
		return value, true
	}
	if avail <= prefix {
		return "", false
	}
	return sysinfo.TruncateString(value, avail-prefix), true
}

// rule returns the delimiter pattern repeated to the delimiter width.
func (p *Printer) rule() string {
	width := p.delimiterWidth
	if width == 0 {
		width = p.hostWidth
	}
	if width == 0 {
		width = defaultDelimiterWidth
	}
	if avail := p.available(); avail >= 0 && width > avail {
		width = avail
	}

	unit := max(ascii.VisibleWidth(p.delimiter), 1)
	rule := strings.Repeat(p.delimiter, width/unit+1)
	return runewidth.Truncate(rule, width, "")
}

// DetectProfile picks the color profile for f: plain text when noColor is
// set, NO_COLOR is exported, or f is not a terminal.
func DetectProfile(f *os.File, noColor bool) termenv.Profile {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}
