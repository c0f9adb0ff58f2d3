package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/ambidraw/internal/gesture"
	"github.com/ayusman/ambidraw/internal/level"
)

// LevelHandler serves the read-only level catalog.
type LevelHandler struct {
	thresholds gesture.Thresholds
}

// NewLevelHandler creates a LevelHandler. Each level is reported with the
// acceptance threshold of its difficulty from t.
func NewLevelHandler(t gesture.Thresholds) *LevelHandler {
	if len(t) == 0 {
		t = gesture.DefaultThresholds()
	}
	return &LevelHandler{thresholds: t}
}

type levelResponse struct {
	ID               int                `json:"id"`
	Mode             level.Mode         `json:"mode"`
	Left             gesture.Shape      `json:"left"`
	Right            gesture.Shape      `json:"right"`
	LeftIcon         string             `json:"leftIcon"`
	RightIcon        string             `json:"rightIcon"`
	TimeLimitSeconds int                `json:"timeLimitSeconds"`
	Difficulty       gesture.Difficulty `json:"difficulty"`
	Threshold        int                `json:"threshold"`
	Instruction      string             `json:"instruction,omitempty"`
	Modifiers        level.Modifiers    `json:"modifiers"`
}

type listLevelsResponse struct {
	Levels []levelResponse `json:"levels"`
	Shapes []gesture.Info  `json:"shapes"`
}

// ServeHTTP routes /api/levels and /api/levels/{id}.
func (h *LevelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/levels")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		h.list(w)
		return
	}
	h.get(w, path)
}

func (h *LevelHandler) list(w http.ResponseWriter) {
	levels := level.All()
	response := listLevelsResponse{
		Levels: make([]levelResponse, 0, len(levels)),
		Shapes: gesture.Catalog(),
	}
	for _, l := range levels {
		response.Levels = append(response.Levels, h.toResponse(l))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *LevelHandler) get(w http.ResponseWriter, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid level id")
		return
	}

	l, err := level.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Level not found")
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(l))
}

func (h *LevelHandler) toResponse(l level.Level) levelResponse {
	left, _ := gesture.Lookup(l.Left)
	right, _ := gesture.Lookup(l.Right)
	return levelResponse{
		ID:               l.ID,
		Mode:             l.Mode,
		Left:             l.Left,
		Right:            l.Right,
		LeftIcon:         left.Icon,
		RightIcon:        right.Icon,
		TimeLimitSeconds: int(l.TimeLimit.Seconds()),
		Difficulty:       l.Difficulty,
		Threshold:        h.thresholds.For(l.Difficulty),
		Instruction:      l.Instruction,
		Modifiers:        l.Modifiers,
	}
}
