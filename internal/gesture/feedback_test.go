package gesture

import (
	"regexp"
	"testing"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		confidence int
		want       Band
	}{
		{0, BandKeepTrying},
		{39, BandKeepTrying},
		{40, BandGettingThere},
		{69, BandGettingThere},
		{70, BandGood},
		{100, BandGood},
	}

	for _, tt := range tests {
		if got := BandFor(tt.confidence); got != tt.want {
			t.Errorf("BandFor(%d) = %s, want %s", tt.confidence, got, tt.want)
		}
	}
}

func TestBand_LabelAndColor(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	seen := map[string]bool{}

	for _, b := range []Band{BandGood, BandGettingThere, BandKeepTrying} {
		if b.Label() == "" {
			t.Errorf("%s has empty label", b)
		}
		c := b.Color()
		if !hex.MatchString(c) {
			t.Errorf("%s.Color() = %q, not a hex colour", b, c)
		}
		seen[c] = true
	}

	if len(seen) != 3 {
		t.Errorf("expected three distinct band colours, got %v", seen)
	}
}

func TestConfidenceColor(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	if ConfidenceColor(0) != BandKeepTrying.Color() {
		t.Errorf("ConfidenceColor(0) = %s, want keep-trying colour", ConfidenceColor(0))
	}
	if ConfidenceColor(100) != BandGood.Color() {
		t.Errorf("ConfidenceColor(100) = %s, want good colour", ConfidenceColor(100))
	}
	if ConfidenceColor(40) != BandGettingThere.Color() {
		t.Errorf("ConfidenceColor(40) = %s, want getting-there colour", ConfidenceColor(40))
	}

	for c := 0; c <= 100; c += 5 {
		if got := ConfidenceColor(c); !hex.MatchString(got) {
			t.Errorf("ConfidenceColor(%d) = %q, not a hex colour", c, got)
		}
	}
}
