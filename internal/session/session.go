// Package session holds the per-level recognition state: live contacts,
// per-side confidence, recognized flags and the attempt history.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/ambidraw/internal/capture"
	"github.com/ayusman/ambidraw/internal/geometry"
	"github.com/ayusman/ambidraw/internal/gesture"
	"github.com/ayusman/ambidraw/internal/level"
)

// DefaultCanvasWidth is used when a session is created without a canvas width.
const DefaultCanvasWidth = 800

// Phase is the lifecycle phase of an input event.
type Phase string

const (
	PhaseStart Phase = "start"
	PhaseMove  Phase = "move"
	PhaseEnd   Phase = "end"
)

// Event is a normalized pointer event in canvas-local coordinates.
type Event struct {
	Phase     Phase   `json:"phase"`
	ContactID string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// Attempt is the immutable record of one finished stroke.
type Attempt struct {
	ID         string        `json:"id"`
	SessionID  string        `json:"sessionId"`
	LevelID    int           `json:"levelId"`
	ContactID  string        `json:"contactId"`
	Side       capture.Side  `json:"side"`
	Target     gesture.Shape `json:"target"`
	Shape      gesture.Shape `json:"shape"`
	Confidence int           `json:"confidence"` // 0-100
	Recognized bool          `json:"recognized"`
	Points     int           `json:"points"`
	Timestamp  time.Time     `json:"timestamp"`

	// Path is the stroke that was evaluated. It is not sent to clients.
	Path []geometry.Point `json:"-"`
}

// ContactFeedback is the live rendering state of one contact.
type ContactFeedback struct {
	Side           capture.Side     `json:"side"`
	Points         []geometry.Point `json:"points"`
	LiveConfidence int              `json:"liveConfidence"`
	Band           gesture.Band     `json:"band"`
	Color          string           `json:"color"`
}

// Frame maps live contact ids to their feedback.
type Frame map[string]ContactFeedback

// Recognized holds the per-side recognized flags.
type Recognized struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Output is what the session produces for an event or batch of events.
type Output struct {
	Frame      Frame      `json:"frame,omitempty"`
	Attempts   []Attempt  `json:"attempts,omitempty"`
	Recognized Recognized `json:"recognized"`
	Complete   bool       `json:"complete"`
}

// Config configures a new Session.
type Config struct {
	Level       level.Level
	CanvasWidth float64
	SidePolicy  capture.SidePolicy
	Recognizer  *gesture.Recognizer
	Clock       func() time.Time
}

// Session is the recognition context for one play-through of a level.
//
// A Session is created at level start and reset at level end or when the
// canvas is cleared. It is not safe for concurrent use.
type Session struct {
	id         string
	level      level.Level
	tracker    *capture.Tracker
	recognizer *gesture.Recognizer
	now        func() time.Time

	confidence map[capture.Side]int
	recognized map[capture.Side]bool
	attempts   []Attempt
}

// New creates a Session for the configured level.
func New(cfg Config) *Session {
	width := cfg.CanvasWidth
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	rec := cfg.Recognizer
	if rec == nil {
		rec = gesture.NewRecognizer()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	s := &Session{
		id:         uuid.New().String(),
		level:      cfg.Level,
		tracker:    capture.NewTracker(width, cfg.SidePolicy),
		recognizer: rec,
		now:        clock,
	}
	s.resetState()
	return s
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// Level returns the level the session was created for.
func (s *Session) Level() level.Level {
	return s.level
}

// Tracker returns the session's contact tracker.
func (s *Session) Tracker() *capture.Tracker {
	return s.tracker
}

// Handle applies a single event.
func (s *Session) Handle(ev Event) Output {
	var out Output

	switch ev.Phase {
	case PhaseStart:
		s.tracker.Start(ev.ContactID, ev.X, ev.Y)
	case PhaseMove:
		if live, ok := s.tracker.Move(ev.ContactID, ev.X, ev.Y); ok {
			out.Frame = s.frame(live)
		}
	case PhaseEnd:
		if snap, ok := s.tracker.End(ev.ContactID); ok {
			out.Attempts = append(out.Attempts, s.finalize(snap))
		}
	}

	out.Recognized = s.Recognized()
	out.Complete = s.Complete()
	return out
}

// HandleBatch applies events in order. The returned frame is the one produced
// by the last move in the batch; attempts accumulate across the batch.
func (s *Session) HandleBatch(events []Event) Output {
	var out Output
	for _, ev := range events {
		o := s.Handle(ev)
		if o.Frame != nil {
			out.Frame = o.Frame
		}
		out.Attempts = append(out.Attempts, o.Attempts...)
	}
	out.Recognized = s.Recognized()
	out.Complete = s.Complete()
	return out
}

// Attempts returns a copy of the attempt history.
func (s *Session) Attempts() []Attempt {
	out := make([]Attempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// Recognized returns the per-side recognized flags.
func (s *Session) Recognized() Recognized {
	return Recognized{
		Left:  s.recognized[capture.SideLeft],
		Right: s.recognized[capture.SideRight],
	}
}

// Confidence returns the live confidence for a side from the most recent
// frame: the highest value among that side's live contacts.
func (s *Session) Confidence(side capture.Side) int {
	return s.confidence[side]
}

// Complete reports whether the level's recognition goal is met. Single-mode
// levels need one recognized side; every other mode needs both.
func (s *Session) Complete() bool {
	r := s.Recognized()
	if s.level.Mode == level.ModeSingle {
		return r.Left || r.Right
	}
	return r.Left && r.Right
}

// ClearCanvas discards live contacts without touching the attempt history.
func (s *Session) ClearCanvas() {
	s.tracker.Clear()
}

// Reset discards live contacts and all feedback state.
func (s *Session) Reset() {
	s.tracker.Clear()
	s.resetState()
}

func (s *Session) resetState() {
	s.confidence = map[capture.Side]int{capture.SideLeft: 0, capture.SideRight: 0}
	s.recognized = map[capture.Side]bool{capture.SideLeft: false, capture.SideRight: false}
	s.attempts = nil
}

func (s *Session) target(side capture.Side) gesture.Shape {
	return s.level.Target(string(side))
}

// frame computes live feedback for every live contact. Each side with live
// contacts records the best confidence among them; sides without live
// contacts keep their previous value.
func (s *Session) frame(live []capture.Snapshot) Frame {
	f := make(Frame, len(live))
	best := make(map[capture.Side]int, 2)
	for _, snap := range live {
		conf := s.recognizer.LiveConfidence(snap.Points, s.target(snap.Side))
		if prev, ok := best[snap.Side]; !ok || conf > prev {
			best[snap.Side] = conf
		}

		f[snap.ID] = ContactFeedback{
			Side:           snap.Side,
			Points:         snap.Points,
			LiveConfidence: conf,
			Band:           gesture.BandFor(conf),
			Color:          gesture.ConfidenceColor(conf),
		}
	}
	for side, conf := range best {
		s.confidence[side] = conf
	}
	return f
}

// finalize evaluates a released contact exactly once and appends its attempt.
// A recognized side stays recognized for the rest of the session.
func (s *Session) finalize(snap capture.Snapshot) Attempt {
	target := s.target(snap.Side)
	eval := s.recognizer.Evaluate(snap.Points, target, s.level.Difficulty)

	a := Attempt{
		ID:         uuid.New().String(),
		SessionID:  s.id,
		LevelID:    s.level.ID,
		ContactID:  snap.ID,
		Side:       snap.Side,
		Target:     target,
		Shape:      eval.Shape,
		Confidence: eval.Confidence,
		Recognized: eval.Recognized,
		Points:     len(snap.Points),
		Timestamp:  s.now(),
		Path:       snap.Points,
	}

	if eval.Recognized {
		s.recognized[snap.Side] = true
	}
	s.attempts = append(s.attempts, a)
	return a
}
