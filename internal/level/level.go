// Package level provides the built-in level catalog: per-side target shapes,
// difficulty tiers and the opaque modifiers a level carries.
package level

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/ayusman/ambidraw/internal/gesture"
)

// ErrUnknownLevel is returned when a level id is not in the catalog.
var ErrUnknownLevel = errors.New("unknown level")

// Mode describes how the two targets are meant to be drawn.
type Mode string

const (
	// ModeSingle accepts the one target shape from either hand.
	ModeSingle Mode = "single"
	// ModeSequential draws the left target, then the right.
	ModeSequential Mode = "sequential"
	// ModeSimultaneous draws both targets at the same time.
	ModeSimultaneous Mode = "simultaneous"
)

// Modifiers are passed through to the game layer and not interpreted by recognition.
type Modifiers struct {
	Direction string `json:"direction,omitempty"` // clockwise, counter, any
	Mirror    bool   `json:"mirror,omitempty"`
	Precision bool   `json:"precision,omitempty"`
}

// Level is the configuration a recognition session is created from.
type Level struct {
	ID          int                `json:"id"`
	Mode        Mode               `json:"mode"`
	Left        gesture.Shape      `json:"left"`
	Right       gesture.Shape      `json:"right"`
	TimeLimit   time.Duration      `json:"-"` // zero means untimed
	Difficulty  gesture.Difficulty `json:"difficulty"`
	Instruction string             `json:"instruction,omitempty"`
	Modifiers   Modifiers          `json:"modifiers"`
}

type levelAlias Level

// levelJSON is the wire form of a Level. The time limit travels in whole
// seconds, the same unit the level listing uses.
type levelJSON struct {
	levelAlias
	TimeLimitSeconds int `json:"timeLimitSeconds"`
}

// MarshalJSON encodes the level with its time limit in seconds.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(levelJSON{
		levelAlias:       levelAlias(l),
		TimeLimitSeconds: int(l.TimeLimit / time.Second),
	})
}

// UnmarshalJSON decodes a level whose time limit is given in seconds.
func (l *Level) UnmarshalJSON(data []byte) error {
	var v levelJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = Level(v.levelAlias)
	l.TimeLimit = time.Duration(v.TimeLimitSeconds) * time.Second
	return nil
}

// Target returns the shape expected from the given side ("left" or "right").
func (l Level) Target(side string) gesture.Shape {
	if side == "left" {
		return l.Left
	}
	return l.Right
}

func single(id int, shape gesture.Shape, instruction string) Level {
	return Level{
		ID:          id,
		Mode:        ModeSingle,
		Left:        shape,
		Right:       shape,
		Difficulty:  gesture.DifficultyTutorial,
		Instruction: instruction,
	}
}

func pair(id int, mode Mode, left, right gesture.Shape, seconds int, d gesture.Difficulty, m Modifiers) Level {
	return Level{
		ID:         id,
		Mode:       mode,
		Left:       left,
		Right:      right,
		TimeLimit:  time.Duration(seconds) * time.Second,
		Difficulty: d,
		Modifiers:  m,
	}
}

var levels = func() []Level {
	const (
		circle   = gesture.ShapeCircle
		square   = gesture.ShapeSquare
		triangle = gesture.ShapeTriangle
		diamond  = gesture.ShapeDiamond

		tutorial     = gesture.DifficultyTutorial
		intermediate = gesture.DifficultyIntermediate
		advanced     = gesture.DifficultyAdvanced
		expert       = gesture.DifficultyExpert
	)
	none := Modifiers{}

	all := []Level{
		single(1, circle, "Draw a circle with either hand"),
		single(2, square, "Draw a square with either hand"),
		pair(3, ModeSequential, circle, square, 30, tutorial, none),
		pair(4, ModeSequential, triangle, circle, 25, tutorial, none),
		pair(5, ModeSimultaneous, circle, square, 25, tutorial, none),

		pair(6, ModeSimultaneous, circle, square, 20, intermediate, none),
		pair(7, ModeSimultaneous, triangle, square, 20, intermediate, none),
		pair(8, ModeSimultaneous, circle, triangle, 18, intermediate, none),
		pair(9, ModeSimultaneous, square, triangle, 15, intermediate, none),
		pair(10, ModeSimultaneous, triangle, circle, 15, intermediate, none),

		pair(11, ModeSimultaneous, circle, circle, 15, advanced, Modifiers{Direction: "clockwise"}),
		pair(12, ModeSimultaneous, triangle, square, 12, advanced, Modifiers{Direction: "clockwise"}),
		pair(13, ModeSimultaneous, diamond, square, 12, advanced, Modifiers{Direction: "any"}),
		pair(14, ModeSimultaneous, circle, square, 10, advanced, Modifiers{Direction: "any"}),
		pair(15, ModeSimultaneous, circle, triangle, 10, advanced, Modifiers{Direction: "counter"}),

		pair(16, ModeSimultaneous, circle, square, 12, expert, Modifiers{Mirror: true}),
		pair(17, ModeSimultaneous, circle, circle, 10, expert, Modifiers{Mirror: true}),
		pair(18, ModeSimultaneous, square, triangle, 10, expert, Modifiers{Precision: true}),
		pair(19, ModeSimultaneous, diamond, triangle, 8, expert, Modifiers{Precision: true}),
		pair(20, ModeSimultaneous, square, circle, 8, expert, Modifiers{Precision: true, Mirror: true}),
	}

	all[2].Instruction = "Draw circle, then square"
	all[3].Instruction = "Draw triangle, then circle"
	all[4].Instruction = "Draw both at the same time!"
	return all
}()

// All returns every level in id order.
func All() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// Get returns the level with the given id.
func Get(id int) (Level, error) {
	if id < 1 || id > len(levels) {
		return Level{}, ErrUnknownLevel
	}
	return levels[id-1], nil
}

// Count returns the number of levels in the catalog.
func Count() int {
	return len(levels)
}
