package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ayusman/ambidraw/internal/geometry"
	"github.com/ayusman/ambidraw/internal/store"
)

// AttemptHandler serves archived attempts.
type AttemptHandler struct {
	store *store.Store
}

// NewAttemptHandler creates a new AttemptHandler with the given store.
func NewAttemptHandler(s *store.Store) *AttemptHandler {
	return &AttemptHandler{store: s}
}

type attemptResponse struct {
	ID         string           `json:"id"`
	SessionID  string           `json:"sessionId"`
	ContactID  string           `json:"contactId"`
	Side       string           `json:"side"`
	Target     string           `json:"target"`
	Shape      string           `json:"shape"`
	Confidence int              `json:"confidence"`
	Recognized bool             `json:"recognized"`
	CreatedAt  string           `json:"createdAt"`
	Path       []geometry.Point `json:"path,omitempty"`
}

type listAttemptsResponse struct {
	SessionID string            `json:"sessionId"`
	LevelID   int               `json:"levelId"`
	Attempts  []attemptResponse `json:"attempts"`
}

type sessionSummary struct {
	ID          string  `json:"id"`
	LevelID     int     `json:"levelId"`
	CanvasWidth float64 `json:"canvasWidth"`
	SidePolicy  string  `json:"sidePolicy"`
	StartedAt   string  `json:"startedAt"`
	EndedAt     string  `json:"endedAt,omitempty"`
}

type listSessionsResponse struct {
	Sessions []sessionSummary `json:"sessions"`
}

// ServeHTTP handles GET /api/attempts?session={id}[&paths=true].
// Without a session it lists the archived sessions, most recent first.
func (h *AttemptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		h.listSessions(w)
		return
	}
	withPaths := r.URL.Query().Get("paths") == "true"

	sess, err := h.store.Sessions().GetByID(sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	attempts, err := h.store.Attempts().ListBySession(sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list attempts")
		return
	}

	response := listAttemptsResponse{
		SessionID: sess.ID,
		LevelID:   sess.LevelID,
		Attempts:  make([]attemptResponse, 0, len(attempts)),
	}

	for _, a := range attempts {
		item := toAttemptResponse(a)
		if withPaths {
			path, err := h.store.Attempts().GetPath(a.ID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to get attempt path")
				return
			}
			item.Path = make([]geometry.Point, len(path))
			for i, p := range path {
				item.Path[i] = geometry.Point{X: p.X, Y: p.Y}
			}
		}
		response.Attempts = append(response.Attempts, item)
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *AttemptHandler) listSessions(w http.ResponseWriter) {
	sessions, err := h.store.Sessions().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	response := listSessionsResponse{
		Sessions: make([]sessionSummary, 0, len(sessions)),
	}
	for _, sess := range sessions {
		item := sessionSummary{
			ID:          sess.ID,
			LevelID:     sess.LevelID,
			CanvasWidth: sess.CanvasWidth,
			SidePolicy:  sess.SidePolicy,
			StartedAt:   sess.StartedAt.Format(time.RFC3339),
		}
		if sess.EndedAt != nil {
			item.EndedAt = sess.EndedAt.Format(time.RFC3339)
		}
		response.Sessions = append(response.Sessions, item)
	}

	writeJSON(w, http.StatusOK, response)
}

func toAttemptResponse(a *store.Attempt) attemptResponse {
	return attemptResponse{
		ID:         a.ID,
		SessionID:  a.SessionID,
		ContactID:  a.ContactID,
		Side:       a.Side,
		Target:     a.Target,
		Shape:      a.Shape,
		Confidence: a.Confidence,
		Recognized: a.Recognized,
		CreatedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
