package sqlutil

import "testing"

func TestInClauseArgs(t *testing.T) {
	ph, args := InClauseArgs([]string{})
	if ph != "NULL" || args != nil {
		t.Fatalf("empty: got %q %v", ph, args)
	}

	ph, args = InClauseArgs([]string{"ko002", "oskar", "detecteve"})
	if ph != "?, ?, ?" {
		t.Fatalf("placeholders = %q", ph)
	}
	if len(args) != 3 || args[1] != "oskar" {
		t.Fatalf("args = %v", args)
	}

	ph, _ = InClauseArgs([]int{7})
	if ph != "?" {
		t.Fatalf("single placeholder = %q", ph)
	}
}
