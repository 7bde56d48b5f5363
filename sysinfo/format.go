// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// FormatUsage renders a used/total byte pair with binary units.
//
// Parameters:
//   - used: Bytes in use
//   - total: Total bytes available
//
// Returns:
//   - A string like "3.2 GiB / 16 GiB"
func FormatUsage(used, total uint64) string {
	return fmt.Sprintf("%s / %s", humanize.IBytes(used), humanize.IBytes(total))
}

// TruncateString truncates a string to a maximum display width and adds an
// ellipsis if needed.
//
// Parameters:
//   - s: The string to truncate
//   - maxWidth: Maximum display width of the result, in terminal cells
//
// Returns:
//   - The original string if it fits within maxWidth
//   - A truncated string ending in "…" otherwise
//
// Example: TruncateString("Hello World", 8) returns "Hello W…"
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads a string with spaces to reach a minimum display width.
//
// Parameters:
//   - s: The string to pad
//   - width: The desired minimum width, in terminal cells
//
// Returns:
//   - The padded string
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
