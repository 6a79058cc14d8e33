package slugs

import "testing"

func TestChannelSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Oskar", "oskar"},
		{"Radio Ko002", "radio-ko002"},
		{"UPPER CASE", "upper-case"},
		{"Special: Characters!", "special-characters"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ChannelSlug(tt.in); got != tt.want {
				t.Fatalf("ChannelSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ko002", true},
		{"radio-ko002", true},
		{"Ko002", false},
		{"has space", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
