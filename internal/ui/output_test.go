package ui

import "testing"

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 tracks"},
		{1, "1 track"},
		{2, "2 tracks"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, "track", "tracks"); got != tt.want {
			t.Fatalf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSuccessf(t *testing.T) {
	if got := Successf("Imported %d channels", 3); got != "✓ Imported 3 channels" {
		t.Fatalf("Successf() = %q", got)
	}
}
