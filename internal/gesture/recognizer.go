package gesture

import (
	"fmt"
	"math"

	"github.com/ayusman/ambidraw/internal/geometry"
)

// Difficulty is a named acceptance-strictness tier.
type Difficulty string

const (
	DifficultyTutorial     Difficulty = "tutorial"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// ParseDifficulty converts a tier name into a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	switch d := Difficulty(name); d {
	case DifficultyTutorial, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", name)
}

// Thresholds maps each difficulty tier to the minimum confidence (0-100)
// required for a stroke to be accepted.
type Thresholds map[Difficulty]int

// DefaultThresholds returns the acceptance table, lowest for tutorial and
// highest for expert.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DifficultyTutorial:     50,
		DifficultyIntermediate: 60,
		DifficultyAdvanced:     70,
		DifficultyExpert:       75,
	}
}

// For returns the threshold for d. Unknown tiers use the strictest entry.
func (t Thresholds) For(d Difficulty) int {
	if v, ok := t[d]; ok {
		return v
	}
	strictest := 0
	for _, v := range t {
		if v > strictest {
			strictest = v
		}
	}
	return strictest
}

// Evaluation is the final accept/reject decision for a finished stroke.
type Evaluation struct {
	Shape      Shape `json:"shape"`
	Confidence int   `json:"confidence"` // 0-100
	Recognized bool  `json:"recognized"`
}

// Recognizer checks strokes against a target shape.
// It holds no per-stroke state; callers own confidence history and attempts.
type Recognizer struct {
	classifier *Classifier
	thresholds Thresholds
}

// NewRecognizer creates a Recognizer with the default classifier and thresholds.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		classifier: NewClassifier(),
		thresholds: DefaultThresholds(),
	}
}

// NewRecognizerWith creates a Recognizer from explicit parts.
// A nil classifier or empty thresholds table falls back to the defaults.
func NewRecognizerWith(c *Classifier, t Thresholds) *Recognizer {
	if c == nil {
		c = NewClassifier()
	}
	if len(t) == 0 {
		t = DefaultThresholds()
	}
	return &Recognizer{classifier: c, thresholds: t}
}

// Threshold returns the acceptance threshold for d.
func (r *Recognizer) Threshold(d Difficulty) int {
	return r.thresholds.For(d)
}

// Thresholds returns a copy of the acceptance table.
func (r *Recognizer) Thresholds() Thresholds {
	out := make(Thresholds, len(r.thresholds))
	for d, v := range r.thresholds {
		out[d] = v
	}
	return out
}

// Classify exposes the underlying classifier.
func (r *Recognizer) Classify(points []geometry.Point) Result {
	return r.classifier.Classify(points)
}

// LiveConfidence scores a stroke that is still being drawn, on a 0-100 scale.
// Paths below MinPoints and paths classified as anything other than target
// score 0. The value is advisory and never marks a stroke as recognized.
func (r *Recognizer) LiveConfidence(points []geometry.Point, target Shape) int {
	if len(points) < MinPoints {
		return 0
	}

	result := r.classifier.Classify(points)
	if result.Shape != target {
		return 0
	}
	return percent(result.Confidence)
}

// Evaluate makes the final decision for a finished stroke. It is recognized
// only when the classified shape equals target and its confidence reaches the
// threshold for difficulty.
func (r *Recognizer) Evaluate(points []geometry.Point, target Shape, difficulty Difficulty) Evaluation {
	result := r.classifier.Classify(points)
	confidence := percent(result.Confidence)

	// Gate on the reported value so a record never shows a passing
	// confidence next to a rejection
	recognized := result.Shape != ShapeNone &&
		result.Shape == target &&
		confidence >= r.thresholds.For(difficulty)

	return Evaluation{
		Shape:      result.Shape,
		Confidence: confidence,
		Recognized: recognized,
	}
}

// percentEpsilon absorbs float error, so 0.8 reads as 80 and not 79.
const percentEpsilon = 1e-9

// percent converts a 0-1 confidence into a 0-100 integer, truncating so the
// result never exceeds the raw score.
func percent(confidence float64) int {
	v := int(math.Floor(confidence*100 + percentEpsilon))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
