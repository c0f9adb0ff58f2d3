package app

import (
	"log"

	"github.com/ayusman/ambidraw/internal/session"
	"github.com/ayusman/ambidraw/internal/store"
)

// Play feeds a batch of input events to a session and archives any attempts
// it produces.
//
// Events for one session are applied under that session's lock, in order, so
// concurrent callers never interleave inside a batch.
func (a *App) Play(id string, events []session.Event) (session.Output, error) {
	e, err := a.lookup(id)
	if err != nil {
		return session.Output{}, err
	}

	e.mu.Lock()
	out := e.session.HandleBatch(events)
	e.mu.Unlock()

	for _, attempt := range out.Attempts {
		log.Printf("Attempt %s: side=%s target=%s shape=%s confidence=%d recognized=%v",
			attempt.ID, attempt.Side, attempt.Target, attempt.Shape, attempt.Confidence, attempt.Recognized)
		a.archiveAttempt(attempt)
	}

	if out.Complete && len(out.Attempts) > 0 {
		log.Printf("Session %s complete", id)
	}

	return out, nil
}

// archiveAttempt stores an attempt and its path when an archive is configured.
// Archive failures are logged and never surface to the player.
func (a *App) archiveAttempt(attempt session.Attempt) {
	if a.config.Store == nil {
		return
	}

	path := make([]store.PathPoint, len(attempt.Path))
	for i, p := range attempt.Path {
		path[i] = store.PathPoint{Sequence: i, X: p.X, Y: p.Y}
	}

	record := &store.Attempt{
		ID:         attempt.ID,
		SessionID:  attempt.SessionID,
		ContactID:  attempt.ContactID,
		Side:       string(attempt.Side),
		Target:     string(attempt.Target),
		Shape:      string(attempt.Shape),
		Confidence: attempt.Confidence,
		Recognized: attempt.Recognized,
		CreatedAt:  attempt.Timestamp,
	}

	if err := a.config.Store.Attempts().Create(record, path); err != nil {
		log.Printf("Failed to archive attempt %s: %v", attempt.ID, err)
	}
}
