// Package app provides the main application logic for the ambidraw recognition service.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ayusman/ambidraw/internal/capture"
	"github.com/ayusman/ambidraw/internal/geometry"
	"github.com/ayusman/ambidraw/internal/gesture"
	"github.com/ayusman/ambidraw/internal/level"
	"github.com/ayusman/ambidraw/internal/session"
	"github.com/ayusman/ambidraw/internal/store"
)

// ErrUnknownSession is returned when a session id is not registered.
var ErrUnknownSession = errors.New("unknown session")

// Config holds configuration options for the application.
type Config struct {
	Store       *store.Store // optional attempt archive
	CanvasWidth float64
	SidePolicy  capture.SidePolicy
	Thresholds  gesture.Thresholds
	Corners     geometry.CornerConfig
}

// entry pairs a session with the lock that serializes its callers.
type entry struct {
	mu      sync.Mutex
	session *session.Session
}

// App owns the live recognition sessions and archives their attempts.
type App struct {
	config     Config
	recognizer *gesture.Recognizer
	sessions   map[string]*entry
	mu         sync.RWMutex
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.CanvasWidth <= 0 {
		config.CanvasWidth = session.DefaultCanvasWidth
	}
	if config.SidePolicy == "" {
		config.SidePolicy = capture.SideByLatestPoint
	}

	classifier := gesture.NewClassifier()
	if config.Corners.Window > 0 {
		classifier = gesture.NewClassifierWithCorners(config.Corners)
	}

	return &App{
		config:     config,
		recognizer: gesture.NewRecognizerWith(classifier, config.Thresholds),
		sessions:   make(map[string]*entry),
	}
}

// Recognizer returns the recognizer shared by all sessions.
func (a *App) Recognizer() *gesture.Recognizer {
	return a.recognizer
}

// CornerConfig returns the corner detection settings, or the defaults when
// none were configured.
func (a *App) CornerConfig() geometry.CornerConfig {
	if a.config.Corners.Window > 0 {
		return a.config.Corners
	}
	return geometry.DefaultCornerConfig()
}

// StartSession creates and registers a session for a level.
// A non-positive width uses the configured canvas width.
func (a *App) StartSession(levelID int, width float64) (*session.Session, error) {
	lvl, err := level.Get(levelID)
	if err != nil {
		return nil, fmt.Errorf("start session for level %d: %w", levelID, err)
	}
	if width <= 0 {
		width = a.config.CanvasWidth
	}

	s := session.New(session.Config{
		Level:       lvl,
		CanvasWidth: width,
		SidePolicy:  a.config.SidePolicy,
		Recognizer:  a.recognizer,
	})

	if a.config.Store != nil {
		err := a.config.Store.Sessions().Create(&store.Session{
			ID:          s.ID(),
			LevelID:     lvl.ID,
			CanvasWidth: width,
			SidePolicy:  string(s.Tracker().Policy()),
		})
		if err != nil {
			return nil, fmt.Errorf("archive session: %w", err)
		}
	}

	a.mu.Lock()
	a.sessions[s.ID()] = &entry{session: s}
	a.mu.Unlock()

	log.Printf("Started session %s for level %d", s.ID(), lvl.ID)
	return s, nil
}

// EndSession unregisters a session and marks it finished in the archive.
func (a *App) EndSession(id string) error {
	a.mu.Lock()
	e, ok := a.sessions[id]
	delete(a.sessions, id)
	a.mu.Unlock()

	if !ok {
		return ErrUnknownSession
	}

	e.mu.Lock()
	e.session.Reset()
	e.mu.Unlock()

	if a.config.Store != nil {
		if err := a.config.Store.Sessions().End(id, time.Now()); err != nil {
			log.Printf("Failed to mark session %s ended: %v", id, err)
		}
	}

	log.Printf("Ended session %s", id)
	return nil
}

// SessionCount returns the number of live sessions.
func (a *App) SessionCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.sessions)
}

// Status is a point-in-time view of a session.
type Status struct {
	ID         string             `json:"id"`
	Level      level.Level        `json:"level"`
	Recognized session.Recognized `json:"recognized"`
	Complete   bool               `json:"complete"`
	Attempts   []session.Attempt  `json:"attempts"`
	Contacts   int                `json:"contacts"`
}

// Status returns the current state of a session.
func (a *App) Status(id string) (Status, error) {
	e, err := a.lookup(id)
	if err != nil {
		return Status{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	return Status{
		ID:         s.ID(),
		Level:      s.Level(),
		Recognized: s.Recognized(),
		Complete:   s.Complete(),
		Attempts:   s.Attempts(),
		Contacts:   s.Tracker().Len(),
	}, nil
}

// Reset clears a session's canvas and feedback state for a retry.
func (a *App) Reset(id string) error {
	e, err := a.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.session.Reset()
	e.mu.Unlock()
	return nil
}

// ClearCanvas discards a session's live contacts.
func (a *App) ClearCanvas(id string) error {
	e, err := a.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.session.ClearCanvas()
	e.mu.Unlock()
	return nil
}

func (a *App) lookup(id string) (*entry, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	e, ok := a.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return e, nil
}
