package gesture

import (
	"testing"

	"github.com/ayusman/ambidraw/internal/geometry"
	"github.com/ayusman/ambidraw/testdata"
)

func TestDefaultThresholds_Monotone(t *testing.T) {
	th := DefaultThresholds()
	order := []Difficulty{DifficultyTutorial, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert}

	for i := 1; i < len(order); i++ {
		if th.For(order[i]) <= th.For(order[i-1]) {
			t.Errorf("threshold %s (%d) should exceed %s (%d)",
				order[i], th.For(order[i]), order[i-1], th.For(order[i-1]))
		}
	}
}

func TestThresholds_UnknownTierIsStrictest(t *testing.T) {
	th := DefaultThresholds()
	if got := th.For("nightmare"); got != th.For(DifficultyExpert) {
		t.Errorf("For(unknown) = %d, want %d", got, th.For(DifficultyExpert))
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("advanced")
	if err != nil || d != DifficultyAdvanced {
		t.Errorf("ParseDifficulty(advanced) = %q, %v", d, err)
	}

	if _, err := ParseDifficulty("easy"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestEvaluate_RecognizesMatchingShape(t *testing.T) {
	r := NewRecognizer()

	eval := r.Evaluate(testdata.Circle(100, 100, 50, 36), ShapeCircle, DifficultyExpert)
	if !eval.Recognized {
		t.Errorf("expected circle to be recognized, got %+v", eval)
	}
	if eval.Confidence != 100 {
		t.Errorf("Confidence = %d, want 100", eval.Confidence)
	}

	tri := r.Evaluate(testdata.Triangle(10), ShapeTriangle, DifficultyTutorial)
	if !tri.Recognized || tri.Shape != ShapeTriangle || tri.Confidence != 80 {
		t.Errorf("triangle evaluation = %+v", tri)
	}
}

func TestEvaluate_NeverRecognizesWrongShape(t *testing.T) {
	r := NewRecognizer()

	strokes := map[string][]geometry.Point{
		"circle":   testdata.Circle(100, 100, 50, 36),
		"triangle": testdata.Triangle(10),
		"diamond":  testdata.Zigzag(100, 100, 4, 10),
		"square":   testdata.Zigzag(300, 100, 4, 10),
		"short":    testdata.Circle(0, 0, 10, 5),
	}
	targets := []Shape{ShapeCircle, ShapeSquare, ShapeTriangle, ShapeDiamond, ShapeStar, ShapeHeart, ShapeNone}
	tiers := []Difficulty{DifficultyTutorial, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert}

	for name, points := range strokes {
		classified := r.Classify(points).Shape
		for _, target := range targets {
			if classified == target && target != ShapeNone {
				continue
			}
			for _, tier := range tiers {
				eval := r.Evaluate(points, target, tier)
				if eval.Recognized {
					t.Errorf("%s stroke recognized as target %s at %s (classified %s)", name, target, tier, classified)
				}
			}
		}
	}
}

func TestEvaluate_ZeroThresholdStillRequiresShape(t *testing.T) {
	r := NewRecognizerWith(nil, Thresholds{DifficultyTutorial: 0})

	eval := r.Evaluate(testdata.Circle(0, 0, 10, 4), ShapeNone, DifficultyTutorial)
	if eval.Recognized {
		t.Errorf("unclassified stroke must not be recognized, got %+v", eval)
	}
}

func TestEvaluate_ThresholdGate(t *testing.T) {
	// Corner shapes score a fixed 80
	r := NewRecognizerWith(nil, Thresholds{
		DifficultyTutorial: 80,
		DifficultyExpert:   81,
	})

	points := testdata.Triangle(10)
	if eval := r.Evaluate(points, ShapeTriangle, DifficultyTutorial); !eval.Recognized {
		t.Errorf("confidence equal to threshold should be recognized: %+v", eval)
	}
	if eval := r.Evaluate(points, ShapeTriangle, DifficultyExpert); eval.Recognized {
		t.Errorf("confidence below threshold should be rejected: %+v", eval)
	}
}

func TestEvaluate_ReportedConfidenceMatchesDecision(t *testing.T) {
	r := NewRecognizer()
	threshold := r.Threshold(DifficultyExpert)

	// Growing wobble sweeps circularity down through the expert threshold
	crossed := false
	for i := 0; i <= 200; i++ {
		amp := float64(i) * 0.0025
		points := testdata.WobblyCircle(100, 100, 60, amp, 5, 72)

		eval := r.Evaluate(points, ShapeCircle, DifficultyExpert)
		if eval.Shape != ShapeCircle {
			continue
		}
		if eval.Recognized != (eval.Confidence >= threshold) {
			t.Fatalf("amp %.4f: confidence %d, threshold %d, recognized %v",
				amp, eval.Confidence, threshold, eval.Recognized)
		}
		if !eval.Recognized {
			crossed = true
		}
	}
	if !crossed {
		t.Error("wobble sweep never produced a rejected circle")
	}
}

func TestRecognizer_ThresholdsIsCopy(t *testing.T) {
	r := NewRecognizer()

	th := r.Thresholds()
	th[DifficultyTutorial] = 99

	if got := r.Threshold(DifficultyTutorial); got != 50 {
		t.Errorf("Threshold(tutorial) = %d after mutating the copy, want 50", got)
	}
}

func TestLiveConfidence(t *testing.T) {
	r := NewRecognizer()
	circle := testdata.Circle(100, 100, 50, 36)

	if got := r.LiveConfidence(circle[:MinPoints-1], ShapeCircle); got != 0 {
		t.Errorf("LiveConfidence(short) = %d, want 0", got)
	}
	if got := r.LiveConfidence(nil, ShapeCircle); got != 0 {
		t.Errorf("LiveConfidence(nil) = %d, want 0", got)
	}
	if got := r.LiveConfidence(circle, ShapeCircle); got != 100 {
		t.Errorf("LiveConfidence(circle) = %d, want 100", got)
	}
	if got := r.LiveConfidence(circle, ShapeSquare); got != 0 {
		t.Errorf("LiveConfidence(circle vs square) = %d, want 0", got)
	}
	if got := r.LiveConfidence(testdata.Triangle(10), ShapeTriangle); got != 80 {
		t.Errorf("LiveConfidence(triangle) = %d, want 80", got)
	}
}

func TestLiveConfidence_Range(t *testing.T) {
	r := NewRecognizer()
	circle := testdata.Circle(50, 50, 30, 60)

	// Growing partial paths stay within [0, 100]
	for n := 0; n <= len(circle); n++ {
		got := r.LiveConfidence(circle[:n], ShapeCircle)
		if got < 0 || got > 100 {
			t.Fatalf("LiveConfidence(%d points) = %d, out of range", n, got)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.8, 80},
		{0.756, 75},
		{0.7497, 74},
		{0.75, 75},
		{0.9999999999999999, 100},
		{1, 100},
		{1.2, 100},
		{-0.1, 0},
	}

	for _, tt := range tests {
		if got := percent(tt.in); got != tt.want {
			t.Errorf("percent(%f) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
