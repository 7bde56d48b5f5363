package display

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bkfetch/ascii"
	"bkfetch/registry"
)

func testArt() ascii.Art {
	return ascii.Art{Name: "t", Lines: []string{"0123456789", "abc", ""}}
}

func plainPrinter(t *testing.T, opts ...Option) *Printer {
	t.Helper()
	th, err := Lookup("cyan")
	require.NoError(t, err)
	p := NewPrinter(th, opts...)
	p.Begin(testArt())
	return p
}

func TestArtPadsToWidestRowPlusGap(t *testing.T) {
	p := plainPrinter(t, WithGap(2))

	assert.Equal(t, "0123456789  ", p.Art("0123456789"))
	assert.Equal(t, "abc"+strings.Repeat(" ", 9), p.Art("abc"))
	assert.Equal(t, strings.Repeat(" ", 12), p.Art(""))
}

func TestArtPaddingIgnoresEscapes(t *testing.T) {
	p := plainPrinter(t, WithGap(1))

	got := p.Art("\x1b[31mabc\x1b[0m")
	assert.Equal(t, 11, ascii.VisibleWidth(got))
}

func TestRows(t *testing.T) {
	p := plainPrinter(t)

	assert.Equal(t, "me@box", p.Row("me", "box", registry.HostInfoRow))
	assert.Equal(t, "------", p.Row("", "", registry.DelimiterRow), "delimiter matches host row width")
	assert.Equal(t, "Arch: x86_64", p.Row("Arch", "x86_64", registry.DetailRow))
	assert.Equal(t, strings.Repeat(" ", 8*len(swatchBlock)), p.Row("", "", registry.ColorSwatchRow))
	assert.Equal(t, "", p.Blank())
}

func TestDelimiterWidth(t *testing.T) {
	t.Run("default before any host row", func(t *testing.T) {
		p := plainPrinter(t)
		assert.Equal(t, strings.Repeat("-", defaultDelimiterWidth), p.Row("", "", registry.DelimiterRow))
	})

	t.Run("configured width and pattern", func(t *testing.T) {
		p := plainPrinter(t, WithDelimiter("=-", 5))
		p.Row("me", "box", registry.HostInfoRow)
		assert.Equal(t, "=-=-=", p.Row("", "", registry.DelimiterRow))
	})

	t.Run("begin resets host width", func(t *testing.T) {
		p := plainPrinter(t)
		p.Row("someone", "somewhere", registry.HostInfoRow)
		p.Begin(testArt())
		assert.Equal(t, strings.Repeat("-", defaultDelimiterWidth), p.Row("", "", registry.DelimiterRow))
	})
}

func TestMaxWidthTruncatesValues(t *testing.T) {
	// 30 cells - 10 art - 3 gap leaves 17 for the fact column.
	p := plainPrinter(t, WithMaxWidth(30))

	got := p.Row("CPU", "AMD Ryzen 9 7950X 16-Core Processor (32)", registry.DetailRow)
	assert.Equal(t, "CPU: AMD Ryzen 9…", got)
	assert.Equal(t, 17, ascii.VisibleWidth(got))

	assert.Equal(t, "Arch: x86_64", p.Row("Arch", "x86_64", registry.DetailRow))
	assert.Len(t, p.Row("", "", registry.DelimiterRow), defaultDelimiterWidth)
}

func TestMaxWidthBlanksRowsThatCannotFit(t *testing.T) {
	t.Run("no room beside the art", func(t *testing.T) {
		// 12 cells - 10 art - 3 gap leaves nothing for the fact column.
		p := plainPrinter(t, WithMaxWidth(12))

		assert.Equal(t, "", p.Row("root", "box", registry.HostInfoRow))
		assert.Equal(t, "", p.Row("Distro", "Arch Linux", registry.DetailRow))
		assert.Equal(t, "", p.Row("", "", registry.DelimiterRow))
		assert.Equal(t, "", p.Row("", "", registry.ColorSwatchRow))
	})

	t.Run("room for short labels only", func(t *testing.T) {
		// 20 cells - 10 art - 3 gap leaves 7.
		p := plainPrinter(t, WithMaxWidth(20))

		assert.Equal(t, "", p.Row("Kernel", "6.1", registry.DetailRow), "label and separator fill the column")
		assert.Equal(t, "IP: 10…", p.Row("IP", "10.0.0.2", registry.DetailRow))
		assert.Equal(t, "me@box", p.Row("me", "box", registry.HostInfoRow))
		assert.Equal(t, strings.Repeat(" ", 2*len(swatchBlock)), p.Row("", "", registry.ColorSwatchRow))
	})
}

func TestMaxWidthClampsDelimiter(t *testing.T) {
	p := plainPrinter(t, WithMaxWidth(20), WithDelimiter("-", 40))
	assert.Equal(t, strings.Repeat("-", 7), p.Row("", "", registry.DelimiterRow))
}

func TestColorProfileAddsEscapes(t *testing.T) {
	th, err := Lookup("pink")
	require.NoError(t, err)
	p := NewPrinter(th, WithProfile(termenv.ANSI256))
	p.Begin(testArt())

	host := p.Row("me", "box", registry.HostInfoRow)
	assert.Contains(t, host, "\x1b[")
	assert.Contains(t, host, "me")

	swatch := p.Row("", "", registry.ColorSwatchRow)
	assert.Equal(t, 8, strings.Count(swatch, swatchBlock))
	assert.Contains(t, swatch, "\x1b[")
}

func TestMonoThemeHasNoForeground(t *testing.T) {
	th, err := Lookup("mono")
	require.NoError(t, err)
	p := NewPrinter(th, WithProfile(termenv.ANSI256))
	p.Begin(testArt())

	assert.Equal(t, "abc"+strings.Repeat(" ", 10), p.Art("abc"))
}

func TestDetectProfile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, termenv.Ascii, DetectProfile(f, true), "explicit no-color")
	assert.Equal(t, termenv.Ascii, DetectProfile(f, false), "regular files are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, DetectProfile(os.Stdout, false))
}
