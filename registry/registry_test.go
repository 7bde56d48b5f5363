package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bkfetch/sysinfo"
)

// fakeProviders returns providers that echo their own fact name and count calls.
func fakeProviders(calls *int) sysinfo.Providers {
	fake := func(v string) sysinfo.Provider {
		return func() string {
			*calls++
			return v
		}
	}
	return sysinfo.Providers{
		User:       fake("user"),
		Hostname:   fake("hostname"),
		Distro:     fake("distro"),
		Product:    fake("product"),
		Kernel:     fake("kernel"),
		Arch:       fake("arch"),
		Shell:      fake("shell"),
		Resolution: fake("resolution"),
		IP:         fake("ip"),
		CPU:        fake("cpu"),
		DiskUsage:  fake("disk"),
		RAM:        fake("ram"),
		InitSystem: fake("init"),
		GPU:        fake("gpu"),
	}
}

func TestBuildPerPlatform(t *testing.T) {
	tests := []struct {
		platform Platform
		want     []string
	}{
		{
			platform: Linux,
			want: []string{"host", "delimiter", "Distro", "Kernel", "Arch", "Shell", "Resolution",
				"IP", "CPU", "RAM", "Init System", "delimiter", "colors"},
		},
		{
			platform: Windows,
			want: []string{"host", "delimiter", "Product", "Arch", "Shell", "Resolution",
				"IP", "CPU", "Disk usage", "RAM", "GPU", "delimiter", "colors"},
		},
		{
			platform: Darwin,
			want: []string{"host", "delimiter", "Arch", "Shell", "Resolution",
				"IP", "CPU", "RAM", "delimiter", "colors"},
		},
		{
			platform: Platform("freebsd"),
			want: []string{"host", "delimiter", "Arch", "Shell", "Resolution",
				"IP", "CPU", "RAM", "delimiter", "colors"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			calls := 0
			r := Build(tt.platform, fakeProviders(&calls))

			assert.Equal(t, tt.want, r.Labels())
			assert.Equal(t, len(tt.want), r.Len())
			assert.Zero(t, calls, "Build must not invoke providers")
		})
	}
}

func TestBuildIsPure(t *testing.T) {
	calls := 0
	p := fakeProviders(&calls)

	for _, platform := range []Platform{Linux, Windows, Darwin} {
		a := Build(platform, p)
		b := Build(platform, p)
		assert.Equal(t, a.Kinds(), b.Kinds())
		assert.Equal(t, a.Labels(), b.Labels())
	}
}

func TestBuildFramesWithHostAndSwatch(t *testing.T) {
	calls := 0
	kinds := Build(Linux, fakeProviders(&calls)).Kinds()

	require.GreaterOrEqual(t, len(kinds), 4)
	assert.Equal(t, []RowKind{HostInfoRow, DelimiterRow}, kinds[:2])
	assert.Equal(t, []RowKind{DelimiterRow, ColorSwatchRow}, kinds[len(kinds)-2:])
}

func TestBuildWiresProviders(t *testing.T) {
	calls := 0
	r := Build(Linux, fakeProviders(&calls))

	e, ok := r.At(0)
	require.True(t, ok)
	host, ok := e.(HostInfo)
	require.True(t, ok)
	assert.Equal(t, "hostname", host.Hostname())

	e, ok = r.At(2)
	require.True(t, ok)
	d, ok := e.(Detail)
	require.True(t, ok)
	assert.Equal(t, "Distro", d.Label())
	assert.Equal(t, "distro", d.Value())
	assert.Equal(t, 2, calls)
}

func TestBuildPanicsOnMissingProvider(t *testing.T) {
	calls := 0
	p := fakeProviders(&calls)
	p.Kernel = nil

	assert.Panics(t, func() { Build(Linux, p) })
	assert.NotPanics(t, func() { Build(Darwin, p) }, "kernel row is linux-only")
}

func TestAt(t *testing.T) {
	r := New(Delimiter{}, ColorSwatch{})

	for _, i := range []int{-1, -100, 2, 3} {
		_, ok := r.At(i)
		assert.False(t, ok, "index %d", i)
	}

	e, ok := r.At(1)
	require.True(t, ok)
	assert.Equal(t, ColorSwatchRow, e.Kind())
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry{Delimiter{}, ColorSwatch{}}
	r := New(entries...)
	entries[0] = ColorSwatch{}

	e, _ := r.At(0)
	assert.Equal(t, DelimiterRow, e.Kind())
}

func TestConstructorsRejectDefects(t *testing.T) {
	assert.Panics(t, func() { NewDetail("", sysinfo.Static("x")) })
	assert.Panics(t, func() { NewDetail("Arch", nil) })
	assert.Panics(t, func() { NewHostInfo(nil) })
	assert.NotPanics(t, func() { NewDetail("Arch", sysinfo.Static("x")) })
}

func TestRowKindString(t *testing.T) {
	assert.Equal(t, "host", HostInfoRow.String())
	assert.Equal(t, "delimiter", DelimiterRow.String())
	assert.Equal(t, "detail", DetailRow.String())
	assert.Equal(t, "colors", ColorSwatchRow.String())
	assert.Equal(t, "RowKind(9)", RowKind(9).String())
}
