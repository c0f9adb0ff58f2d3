// Package capture tracks live pointer contacts and the paths they draw.
package capture

import (
	"fmt"
	"sort"

	"github.com/ayusman/ambidraw/internal/geometry"
)

// Side is the half of the divided canvas a contact is attributed to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// SidePolicy selects which point of a path decides its side.
type SidePolicy string

const (
	// SideByLatestPoint re-derives the side from the most recent point on every
	// query, so a stroke that crosses the midline changes hands mid-draw.
	SideByLatestPoint SidePolicy = "latest"
	// SideByFirstPoint pins the side to where the stroke started.
	SideByFirstPoint SidePolicy = "first"
)

// ParseSidePolicy converts a configuration value into a SidePolicy.
// An empty value selects SideByLatestPoint.
func ParseSidePolicy(v string) (SidePolicy, error) {
	switch p := SidePolicy(v); p {
	case "":
		return SideByLatestPoint, nil
	case SideByLatestPoint, SideByFirstPoint:
		return p, nil
	}
	return "", fmt.Errorf("unknown side policy %q", v)
}

// Snapshot is an immutable copy of a contact's state.
type Snapshot struct {
	ID     string           `json:"id"`
	Side   Side             `json:"side"`
	Points []geometry.Point `json:"points"`
}

// contact is a live pointer with an append-only path.
type contact struct {
	id     string
	points []geometry.Point
}

// Tracker maintains live per-contact paths from start/move/end events.
//
// Tracker is not safe for concurrent use; events for one canvas must be fed
// from a single goroutine.
type Tracker struct {
	width    float64
	policy   SidePolicy
	contacts map[string]*contact
}

// NewTracker creates a Tracker for a canvas of the given width.
// An empty policy defaults to SideByLatestPoint.
func NewTracker(width float64, policy SidePolicy) *Tracker {
	if policy == "" {
		policy = SideByLatestPoint
	}
	return &Tracker{
		width:    width,
		policy:   policy,
		contacts: make(map[string]*contact),
	}
}

// Midline returns the x coordinate dividing the left and right halves.
func (t *Tracker) Midline() float64 {
	return t.width / 2
}

// Policy returns the tracker's side policy.
func (t *Tracker) Policy() SidePolicy {
	return t.policy
}

// Start begins a new contact with a single point.
// A start for an id that is already live replaces the previous contact.
func (t *Tracker) Start(id string, x, y float64) {
	t.contacts[id] = &contact{
		id:     id,
		points: []geometry.Point{{X: x, Y: y}},
	}
}

// Move appends a point to a live contact and returns every live path.
// Events for unknown ids are dropped and report false.
func (t *Tracker) Move(id string, x, y float64) ([]Snapshot, bool) {
	c, ok := t.contacts[id]
	if !ok {
		return nil, false
	}
	c.points = append(c.points, geometry.Point{X: x, Y: y})
	return t.Live(), true
}

// End removes a contact and returns a snapshot of its full path.
// Ending an unknown or already ended id is a no-op that reports false.
func (t *Tracker) End(id string) (Snapshot, bool) {
	c, ok := t.contacts[id]
	if !ok {
		return Snapshot{}, false
	}
	delete(t.contacts, id)
	return t.snapshot(c), true
}

// Clear discards all live contacts.
func (t *Tracker) Clear() {
	clear(t.contacts)
}

// Len returns the number of live contacts.
func (t *Tracker) Len() int {
	return len(t.contacts)
}

// Live returns snapshots of all live contacts ordered by id.
func (t *Tracker) Live() []Snapshot {
	snaps := make([]Snapshot, 0, len(t.contacts))
	for _, c := range t.contacts {
		snaps = append(snaps, t.snapshot(c))
	}
	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].ID < snaps[j].ID
	})
	return snaps
}

// SideOf returns the side a point falls on. Points exactly on the midline
// belong to the right half.
func (t *Tracker) SideOf(p geometry.Point) Side {
	if p.X < t.Midline() {
		return SideLeft
	}
	return SideRight
}

func (t *Tracker) snapshot(c *contact) Snapshot {
	points := make([]geometry.Point, len(c.points))
	copy(points, c.points)
	return Snapshot{
		ID:     c.id,
		Side:   t.sideOfPath(points),
		Points: points,
	}
}

func (t *Tracker) sideOfPath(points []geometry.Point) Side {
	if t.policy == SideByFirstPoint {
		return t.SideOf(points[0])
	}
	return t.SideOf(points[len(points)-1])
}
