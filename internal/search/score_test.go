package search

import "testing"

func TestScoreSubsequence(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"night", "Night Drive", true},
		{"night", "Nightmare", true},
		{"night", "Daylight", false},
		{"ndr", "Night Drive", true},
		{"NIGHT", "night drive", true},
		{"drive night", "Night Drive", false},
		{"abc", "ab", false},
		{" ", "Night Drive", true},
		{"  ", "Night Drive", false},
		{"", "anything", true},
		{"", "", true},
		{"a", "", false},
		{"ø", "Sigur Rós og Ø", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			_, ok := Score(tt.pattern, tt.text)
			if ok != tt.want {
				t.Fatalf("Score(%q, %q) matched = %v, want %v", tt.pattern, tt.text, ok, tt.want)
			}
		})
	}
}

func TestScoreEmptyPatternIsZero(t *testing.T) {
	score, ok := Score("", "Night Drive")
	if !ok || score != 0 {
		t.Fatalf("Score(\"\", ...) = (%d, %v), want (0, true)", score, ok)
	}
}

func TestScoreRanksContiguousAboveScattered(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		contig    string
		scattered string
	}{
		{"mid-word substring vs boundary hits", "ab", "xxabyy", "a b"},
		{"substring vs spread letters", "dub", "king tubby dub", "d u b"},
		{"substring vs camel case", "tb", "rtbx", "Tom Baker"},
		{"long pattern", "ambient", "some ambient sounds", "a m b i e n t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Score(tt.pattern, tt.contig)
			if !ok {
				t.Fatalf("expected %q to match %q", tt.pattern, tt.contig)
			}
			s, ok := Score(tt.pattern, tt.scattered)
			if !ok {
				t.Fatalf("expected %q to match %q", tt.pattern, tt.scattered)
			}
			if c < s {
				t.Fatalf("contiguous score %d < scattered score %d", c, s)
			}
		})
	}
}

func TestScoreRanksPrefixAboveSubstring(t *testing.T) {
	prefix, _ := Score("night", "Nightmare")
	inner, _ := Score("night", "Last Night")
	if prefix <= inner {
		t.Fatalf("prefix score %d should exceed substring score %d", prefix, inner)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	first, _ := Score("drv", "Night Drive")
	// Interleave unrelated scoring to make sure no state carries over.
	_, _ = Score("zzz", "nothing here")
	_, _ = Score("night", "Nightmare")
	second, _ := Score("drv", "Night Drive")
	if first != second {
		t.Fatalf("Score not deterministic: %d then %d", first, second)
	}
}

func TestScoreFoldsFinalSigma(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
	}{
		{"Σ", "ΟΔΟΣ"},
		{"οδοσ", "ΟΔΟΣ"},
		{"οδος", "ΟΔΟΣ"},
		{"σ", "ΚΑΛΟΣ ΕΡΩΣ"},
		{"ΕΡΩΣ", "καλος ερως"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			if _, ok := Score(tt.pattern, tt.text); !ok {
				t.Fatalf("Score(%q, %q) did not match", tt.pattern, tt.text)
			}
		})
	}
}
