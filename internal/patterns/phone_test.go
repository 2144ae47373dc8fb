package patterns

import "testing"

func TestPhonePattern(t *testing.T) {
	cases := map[string]bool{
		"555-123-4567":     true,
		"(555) 123-4567":   true,
		"+1 555.123.4567":  true,
		"5551234567":       true,
		"123-45-6789":      false, // SSN shape, one digit short of a phone
		"call me":          false,
	}
	for in, want := range cases {
		if got := rePhone.MatchString(in); got != want {
			t.Fatalf("rePhone.MatchString(%q)=%v want %v", in, got, want)
		}
	}
}

func TestPhoneLeftToRightOrder(t *testing.T) {
	ms := rePhone.FindAllString("a 555-123-4567 b 555-765-4321", -1)
	if len(ms) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(ms))
	}
	if ms[0] != "555-123-4567" || ms[1] != "555-765-4321" {
		t.Fatalf("matches out of order: %v", ms)
	}
}
