package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/ambidraw/internal/app"
	"github.com/ayusman/ambidraw/internal/level"
	"github.com/ayusman/ambidraw/internal/session"
)

// SessionHandler exposes live recognition sessions over plain HTTP, for
// clients that post whole event batches instead of holding a websocket.
type SessionHandler struct {
	app *app.App
}

// NewSessionHandler creates a new SessionHandler for the given app.
func NewSessionHandler(a *app.App) *SessionHandler {
	return &SessionHandler{app: a}
}

type createSessionRequest struct {
	Level int     `json:"level"`
	Width float64 `json:"width,omitempty"`
}

type sessionResponse struct {
	ID    string      `json:"id"`
	Level level.Level `json:"level"`
}

type eventsRequest struct {
	Events []session.Event `json:"events"`
}

// ServeHTTP routes the session endpoints:
//
//	POST   /api/sessions              start a session
//	GET    /api/sessions/{id}         session status
//	POST   /api/sessions/{id}/events  feed an event batch
//	POST   /api/sessions/{id}/reset   clear canvas and feedback
//	DELETE /api/sessions/{id}         end the session
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.create(w, r)
		return
	}

	id, action, _ := strings.Cut(path, "/")
	switch {
	case action == "" && r.Method == http.MethodGet:
		h.status(w, id)
	case action == "" && r.Method == http.MethodDelete:
		h.end(w, id)
	case action == "events" && r.Method == http.MethodPost:
		h.events(w, r, id)
	case action == "reset" && r.Method == http.MethodPost:
		h.reset(w, id)
	case action == "events" || action == "reset" || action == "":
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

func (h *SessionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s, err := h.app.StartSession(req.Level, req.Width)
	if err != nil {
		if errors.Is(err, level.ErrUnknownLevel) {
			writeError(w, http.StatusNotFound, "Level not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{ID: s.ID(), Level: s.Level()})
}

func (h *SessionHandler) status(w http.ResponseWriter, id string) {
	status, err := h.app.Status(id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *SessionHandler) events(w http.ResponseWriter, r *http.Request, id string) {
	var req eventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	out, err := h.app.Play(id, req.Events)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *SessionHandler) reset(w http.ResponseWriter, id string) {
	if err := h.app.Reset(id); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) end(w http.ResponseWriter, id string) {
	if err := h.app.EndSession(id); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, app.ErrUnknownSession) {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeError(w, http.StatusInternalServerError, "Session request failed")
}
