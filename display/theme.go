// Package display implements the banner's Line Printer: it colors the art
// column and the fact rows with a theme using lipgloss, pads the art to a
// fixed width, and draws the delimiter and color swatch rows.
package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme is returned by Lookup for names that match no theme.
var ErrUnknownTheme = errors.New("unknown theme")

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "pink"

// Theme is a named color set for one banner.
type Theme struct {
	Name string

	// Accent colors the art and the user@host row.
	Accent lipgloss.Color

	// Label colors detail labels and the delimiter.
	Label lipgloss.Color

	// Swatches are drawn as background blocks on the color swatch row.
	Swatches []lipgloss.Color
}

var standardSwatches = []lipgloss.Color{"0", "1", "2", "3", "4", "5", "6", "7"}

// Themes returns every built-in theme in display order.
func Themes() []Theme {
	return []Theme{
		{Name: "pink", Accent: "212", Label: "218", Swatches: []lipgloss.Color{"205", "212", "218", "225", "231", "225", "218", "212"}},
		{Name: "red", Accent: "1", Label: "9", Swatches: standardSwatches},
		{Name: "green", Accent: "2", Label: "10", Swatches: standardSwatches},
		{Name: "yellow", Accent: "3", Label: "11", Swatches: standardSwatches},
		{Name: "blue", Accent: "4", Label: "12", Swatches: standardSwatches},
		{Name: "magenta", Accent: "5", Label: "13", Swatches: standardSwatches},
		{Name: "cyan", Accent: "6", Label: "14", Swatches: standardSwatches},
		{Name: "white", Accent: "7", Label: "15", Swatches: standardSwatches},
		{Name: "mono", Swatches: []lipgloss.Color{"232", "235", "238", "241", "244", "247", "250", "253"}},
	}
}

// ThemeNames returns the names of every built-in theme.
func ThemeNames() []string {
	themes := Themes()
	names := make([]string, len(themes))
	for i, th := range themes {
		names[i] = th.Name
	}
	return names
}

// Lookup finds a theme by case-insensitive name. "purple" is accepted as an
// alias for magenta.
func Lookup(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "purple" {
		name = "magenta"
	}
	for _, th := range Themes() {
		if th.Name == name {
			return th, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
}
