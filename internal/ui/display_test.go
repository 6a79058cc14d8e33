package ui

import "testing"

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer track title", 10, "a longe..."},
		{"abc", 2, ".."},
		{"anything", 0, "anything"},
		{"日本語のタイトル", 9, "日本語..."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := TruncateWithEllipsis(tt.in, tt.width); got != tt.want {
				t.Fatalf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestDisplayContextFit(t *testing.T) {
	d := NewDisplayContextWithWidth(12)
	if got := d.Fit("a rather long line", 2); got != "a rathe..." {
		t.Fatalf("Fit() = %q", got)
	}

	d.IsTTY = false
	if got := d.Fit("a rather long line", 2); got != "a rather long line" {
		t.Fatalf("Fit() on non-TTY = %q", got)
	}
}
