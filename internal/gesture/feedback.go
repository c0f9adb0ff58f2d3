package gesture

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Band is a coarse feedback bucket for a live confidence value.
type Band string

const (
	BandGood         Band = "good"
	BandGettingThere Band = "getting-there"
	BandKeepTrying   Band = "keep-trying"
)

// Band boundaries on the 0-100 confidence scale.
const (
	GoodConfidence         = 70
	GettingThereConfidence = 40
)

var (
	colorKeepTrying = rgb(239, 68, 68)
	colorGetting    = rgb(234, 179, 8)
	colorGood       = rgb(34, 197, 94)
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// BandFor buckets a 0-100 confidence.
func BandFor(confidence int) Band {
	switch {
	case confidence >= GoodConfidence:
		return BandGood
	case confidence >= GettingThereConfidence:
		return BandGettingThere
	default:
		return BandKeepTrying
	}
}

// Label returns the short player-facing text for the band.
func (b Band) Label() string {
	switch b {
	case BandGood:
		return "Great!"
	case BandGettingThere:
		return "Getting there"
	default:
		return "Keep trying"
	}
}

// Color returns the band's base colour as a hex string.
func (b Band) Color() string {
	switch b {
	case BandGood:
		return colorGood.Hex()
	case BandGettingThere:
		return colorGetting.Hex()
	default:
		return colorKeepTrying.Hex()
	}
}

// ConfidenceColor returns a hex colour that moves smoothly from the
// keep-trying colour through getting-there to good as confidence rises.
func ConfidenceColor(confidence int) string {
	if confidence <= 0 {
		return colorKeepTrying.Hex()
	}
	if confidence >= GoodConfidence {
		return colorGood.Hex()
	}
	if confidence < GettingThereConfidence {
		t := float64(confidence) / GettingThereConfidence
		return colorKeepTrying.BlendHcl(colorGetting, t).Clamped().Hex()
	}
	t := float64(confidence-GettingThereConfidence) / (GoodConfidence - GettingThereConfidence)
	return colorGetting.BlendHcl(colorGood, t).Clamped().Hex()
}
