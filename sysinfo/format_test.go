package sysinfo

import "testing"

func TestFormatUsage(t *testing.T) {
	tests := []struct {
		used, total uint64
		want        string
	}{
		{512, 1536, "512 B / 1.5 KiB"},
		{1 << 30, 16 << 30, "1.0 GiB / 16 GiB"},
		{0, 1024 * 1024, "0 B / 1.0 MiB"},
	}

	for _, tc := range tests {
		if got := FormatUsage(tc.used, tc.total); got != tc.want {
			t.Fatalf("FormatUsage(%d, %d) = %q; want %q", tc.used, tc.total, got, tc.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Hello World", 8); got != "Hello W…" {
		t.Fatalf("TruncateString short failed: got %q", got)
	}
	if got := TruncateString("Hi", 5); got != "Hi" {
		t.Fatalf("TruncateString no-truncate failed: got %q", got)
	}
	if got := TruncateString("Hi", 0); got != "" {
		t.Fatalf("TruncateString zero width failed: got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Hi", 5); got != "Hi   " {
		t.Fatalf("PadRight failed: got %q", got)
	}
	if got := PadRight("HelloWorld", 5); got != "HelloWorld" {
		t.Fatalf("PadRight truncate-case failed: got %q", got)
	}
	if got := PadRight("日本", 6); got != "日本  " {
		t.Fatalf("PadRight wide-rune case failed: got %q", got)
	}
}
