// Package ascii provides the ASCII art blocks printed in the banner's left column
// and selects one by name, by 1-based index, or at random.
package ascii

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Random is the selector that picks any art block.
const Random = "random"

// ErrUnknownArt is returned by Select when the selector matches no art block.
var ErrUnknownArt = errors.New("unknown art")

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Art is one fixed-height block of ASCII art.
type Art struct {
	Name  string
	Lines []string
}

// Height returns the number of rows in the block.
func (a Art) Height() int {
	return len(a.Lines)
}

// Width returns the visible width of the widest row, ignoring ANSI escapes.
func (a Art) Width() int {
	w := 0
	for _, line := range a.Lines {
		if vw := VisibleWidth(line); vw > w {
			w = vw
		}
	}
	return w
}

// VisibleWidth calculates the display width of a string excluding ANSI escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The number of terminal cells the string occupies
//
// Wide runes (CJK, some box drawing) count as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// All returns every bundled art block in index order. The slice is freshly
// built on each call and may be modified by the caller.
func All() []Art {
	return []Art{
		{Name: "blush", Lines: blush()},
		{Name: "loaf", Lines: loaf()},
		{Name: "peek", Lines: peek()},
		{Name: "windows", Lines: windowsClient()},
		{Name: "windows-server", Lines: windowsServer()},
		{Name: "windows-compact", Lines: windowsCompact()},
	}
}

// Select returns the art block named by selector.
//
// Parameters:
//   - selector: An art name, a 1-based index into All, or Random ("" means Random)
//
// Returns:
//   - The matching Art
//   - An error wrapping ErrUnknownArt if nothing matches
func Select(selector string) (Art, error) {
	return selectWith(selector, rand.Intn)
}

func selectWith(selector string, intN func(n int) int) (Art, error) {
	arts := All()
	selector = strings.TrimSpace(strings.ToLower(selector))

	if selector == "" || selector == Random {
		return arts[intN(len(arts))], nil
	}

	if n, err := strconv.Atoi(selector); err == nil {
		if n < 1 || n > len(arts) {
			return Art{}, fmt.Errorf("%w: index %d out of range 1-%d", ErrUnknownArt, n, len(arts))
		}
		return arts[n-1], nil
	}

	for _, a := range arts {
		if a.Name == selector {
			return a, nil
		}
	}
	return Art{}, fmt.Errorf("%w: %q", ErrUnknownArt, selector)
}

// splitArt turns a raw multi-line literal into rows, dropping the leading newline.
func splitArt(raw string) []string {
	return strings.Split(strings.TrimPrefix(raw, "\n"), "\n")
}
