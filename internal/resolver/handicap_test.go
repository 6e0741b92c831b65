package resolver

import "testing"

func TestNormalizeHandicap(t *testing.T) {
	tests := []struct {
		raw       string
		wantValue float64
		wantCanon string
		wantOK    bool
	}{
		// Sentinels
		{"", 0, "-", false},
		{"-", 0, "-", false},
		{"?", 0, "-", false},
		{"  ? ", 0, "-", false},
		// Plain values
		{"0", 0, "0", true},
		{"-1", -1, "-1", true},
		{"2", 2, "2", true},
		{"0.5", 0.5, "0.5", true},
		{"-1.5", -1.5, "-1.5", true},
		{"0.25", 0.25, "0.25", true},
		{"-0.75", -0.75, "-0.75", true},
		// Off-grid values snap by range
		{"0.6", 0.6, "0.5", true},
		{"0.8", 0.8, "1", true},
		{"2.8", 2.8, "3", true},
		{"-1.3", -1.3, "-1.5", true},
		{"-0.1", -0.1, "0", true},
		// Split lines average the two parts
		{"0/0.5", 0.25, "0.25", true},
		{"0.5/1", 0.75, "0.75", true},
		{"1/1.5", 1.25, "1.25", true},
		// A leading minus on the first part carries onto an unsigned second
		{"-0/0.5", -0.25, "-0.25", true},
		{"-0.5/1", -0.75, "-0.75", true},
		{"-1/1.5", -1.25, "-1.25", true},
		{"-0.5/-1", -0.75, "-0.75", true},
		// Unparseable
		{"abc", 0, "-", false},
		{"1/x", 0, "-", false},
		{"x/1", 0, "-", false},
		{"1/2/3", 0, "-", false},
	}
	for _, tt := range tests {
		value, canon, ok := NormalizeHandicap(tt.raw)
		if ok != tt.wantOK || canon != tt.wantCanon {
			t.Errorf("NormalizeHandicap(%q) = (%v, %q, %v), want (%v, %q, %v)",
				tt.raw, value, canon, ok, tt.wantValue, tt.wantCanon, tt.wantOK)
			continue
		}
		if ok && value != tt.wantValue {
			t.Errorf("NormalizeHandicap(%q) value = %v, want %v", tt.raw, value, tt.wantValue)
		}
	}
}

func TestNormalizeHandicapIdempotent(t *testing.T) {
	inputs := []string{"0", "-1", "0.5", "-1.5", "0.25", "-0.75", "0.6", "0.8", "0/0.5", "-0/0.5", "0.5/1"}
	for _, raw := range inputs {
		_, canon1, ok := NormalizeHandicap(raw)
		if !ok {
			t.Fatalf("NormalizeHandicap(%q) unexpectedly not ok", raw)
		}
		value2, canon2, ok2 := NormalizeHandicap(canon1)
		if !ok2 || canon2 != canon1 {
			t.Errorf("NormalizeHandicap(%q) canonical %q is not a fixed point: got (%v, %q, %v)",
				raw, canon1, value2, canon2, ok2)
		}
	}
}

func TestNormalizeHandicapRepeatable(t *testing.T) {
	for _, raw := range []string{"-0.5/1", "0.6", "?", "abc"} {
		v1, c1, ok1 := NormalizeHandicap(raw)
		v2, c2, ok2 := NormalizeHandicap(raw)
		if v1 != v2 || c1 != c2 || ok1 != ok2 {
			t.Errorf("NormalizeHandicap(%q) not deterministic: (%v,%q,%v) vs (%v,%q,%v)",
				raw, v1, c1, ok1, v2, c2, ok2)
		}
	}
}
