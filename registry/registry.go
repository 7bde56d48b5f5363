// Package registry defines the ordered list of rows shown in the fact column.
//
// Each row is one of four entry kinds. Every kind is its own type, so an entry
// always carries exactly the fields its kind needs. A Registry is built once
// per platform by Build and is read-only afterwards: it is indexed by
// position only and never re-sorted.
package registry

import (
	"fmt"

	"bkfetch/sysinfo"
)

// RowKind determines how a row is rendered, independent of its content.
type RowKind int

const (
	// HostInfoRow renders user@hostname.
	HostInfoRow RowKind = iota
	// DelimiterRow renders a horizontal separator.
	DelimiterRow
	// DetailRow renders "Label: value".
	DetailRow
	// ColorSwatchRow renders the theme's color swatches.
	ColorSwatchRow
)

func (k RowKind) String() string {
	switch k {
	case HostInfoRow:
		return "host"
	case DelimiterRow:
		return "delimiter"
	case DetailRow:
		return "detail"
	case ColorSwatchRow:
		return "colors"
	default:
		return fmt.Sprintf("RowKind(%d)", int(k))
	}
}

// Entry is one row of the registry. The set of implementations is closed:
// the unexported entry method keeps other packages from adding kinds.
type Entry interface {
	// Kind reports how the row is rendered.
	Kind() RowKind
	entry()
}

// HostInfo is the user@hostname row.
type HostInfo struct {
	hostname sysinfo.Provider
}

// NewHostInfo panics if hostname is nil.
func NewHostInfo(hostname sysinfo.Provider) HostInfo {
	if hostname == nil {
		panic("registry: host info row requires a hostname provider")
	}
	return HostInfo{hostname: hostname}
}

// Kind returns HostInfoRow.
func (HostInfo) Kind() RowKind { return HostInfoRow }
func (HostInfo) entry()        {}

// Hostname invokes the provider. The result is not cached.
func (h HostInfo) Hostname() string { return h.hostname() }

// Delimiter is a separator row.
type Delimiter struct{}

// Kind returns DelimiterRow.
func (Delimiter) Kind() RowKind { return DelimiterRow }
func (Delimiter) entry()        {}

// Detail is a labelled fact row.
type Detail struct {
	label string
	value sysinfo.Provider
}

// NewDetail panics if label is empty or value is nil.
func NewDetail(label string, value sysinfo.Provider) Detail {
	if label == "" {
		panic("registry: detail row requires a label")
	}
	if value == nil {
		panic(fmt.Sprintf("registry: detail row %q requires a provider", label))
	}
	return Detail{label: label, value: value}
}

// Kind returns DetailRow.
func (Detail) Kind() RowKind { return DetailRow }
func (Detail) entry()        {}

// Label is the text printed before the colon. It is never empty.
func (d Detail) Label() string { return d.label }

// Value invokes the provider. The result is not cached.
func (d Detail) Value() string { return d.value() }

// ColorSwatch is the theme color swatch row.
type ColorSwatch struct{}

// Kind returns ColorSwatchRow.
func (ColorSwatch) Kind() RowKind { return ColorSwatchRow }
func (ColorSwatch) entry()        {}

// Registry is an immutable, ordered sequence of entries.
type Registry struct {
	entries []Entry
}

// New returns a Registry holding a copy of entries in the given order.
func New(entries ...Entry) Registry {
	return Registry{entries: append([]Entry(nil), entries...)}
}

// Len returns the number of entries.
func (r Registry) Len() int {
	return len(r.entries)
}

// At returns the entry at position i. Any negative i or i >= Len reports false.
func (r Registry) At(i int) (Entry, bool) {
	if i < 0 || i >= len(r.entries) {
		return nil, false
	}
	return r.entries[i], true
}

// Kinds returns the row kind of each entry in display order.
//
// Returns:
//   - A fresh slice with one RowKind per entry; callers may modify it
//
// Two registries built for the same platform always report equal kinds.
func (r Registry) Kinds() []RowKind {
	kinds := make([]RowKind, len(r.entries))
	for i, e := range r.entries {
		kinds[i] = e.Kind()
	}
	return kinds
}

// Labels returns each entry's label in display order.
//
// Returns:
//   - A fresh slice with the Detail label, or the kind name for rows
//     without a label (host, delimiter, colors)
//
// Providers are not invoked, so Labels is safe to call for logging.
func (r Registry) Labels() []string {
	labels := make([]string, len(r.entries))
	for i, e := range r.entries {
		if d, ok := e.(Detail); ok {
			labels[i] = d.Label()
			continue
		}
		labels[i] = e.Kind().String()
	}
	return labels
}
