package sysinfo

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bkfetch/logging"
)

func TestGuard(t *testing.T) {
	tests := []struct {
		name  string
		probe func() (string, error)
		want  string
	}{
		{"value is trimmed", func() (string, error) { return "  bash\n", nil }, "bash"},
		{"error maps to sentinel", func() (string, error) { return "partial", errors.New("boom") }, Unknown},
		{"blank maps to sentinel", func() (string, error) { return " \t", nil }, Unknown},
		{"panic maps to sentinel", func() (string, error) { panic("probe exploded") }, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			require.NotPanics(t, func() { got = Guard(tt.name, tt.probe)() })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuardLogsFailures(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	logging.SetupLoggerTo(&buf, 2)
	t.Cleanup(func() { logging.SetupLoggerTo(io.Discard, 0) })

	assert.Equal(t, Unknown, Guard("disk", func() (string, error) { return "", errors.New("boom") })())
	assert.Equal(t, Unknown, Guard("gpu", func() (string, error) { panic("no adapter") })())

	out := buf.String()
	assert.Contains(t, out, "Fact probe failed")
	assert.Contains(t, out, "fact=disk")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "Fact probe panicked")
	assert.Contains(t, out, "fact=gpu")
	assert.Contains(t, out, "no adapter")
}

func TestGuardIsNotMemoized(t *testing.T) {
	calls := 0
	p := Guard("counter", func() (string, error) {
		calls++
		return "x", nil
	})

	p()
	p()
	assert.Equal(t, 2, calls)
}

func TestStatic(t *testing.T) {
	assert.Equal(t, "host", Static("host")())
	assert.Equal(t, Unknown, Static("")())
}

func TestDefaultProvidersAreTotal(t *testing.T) {
	p := Default()

	// Only probes without network or subprocess side effects are invoked here.
	for name, fn := range map[string]Provider{
		"user":     p.User,
		"hostname": p.Hostname,
		"arch":     p.Arch,
		"product":  p.Product,
	} {
		require.NotNil(t, fn, name)
		assert.NotEmpty(t, fn(), name)
	}
}
