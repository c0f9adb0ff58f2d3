package api

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/ayusman/ambidraw/internal/geometry"
	"github.com/ayusman/ambidraw/internal/gesture"
)

// maxResample bounds the resample count a client may request.
const maxResample = 1024

// ClassifyHandler classifies a complete stroke submitted in one request.
type ClassifyHandler struct {
	recognizer *gesture.Recognizer
	corners    geometry.CornerConfig
}

// NewClassifyHandler creates a ClassifyHandler. A nil recognizer or a zero
// corner window uses the defaults.
func NewClassifyHandler(r *gesture.Recognizer, corners geometry.CornerConfig) *ClassifyHandler {
	if r == nil {
		r = gesture.NewRecognizer()
	}
	if corners.Window <= 0 {
		corners = geometry.DefaultCornerConfig()
	}
	return &ClassifyHandler{recognizer: r, corners: corners}
}

type classifyRequest struct {
	Points     []geometry.Point `json:"points"`
	Target     string           `json:"target,omitempty"`
	Difficulty string           `json:"difficulty,omitempty"`
	Resample   int              `json:"resample,omitempty"`
}

type featuresResponse struct {
	Points      int                  `json:"points"`
	Box         geometry.BoundingBox `json:"box"`
	AspectRatio float64              `json:"aspectRatio"`
	Circularity float64              `json:"circularity"`
	Corners     int                  `json:"corners"`
	Length      float64              `json:"length"`
}

type evaluationResponse struct {
	Target     gesture.Shape      `json:"target"`
	Difficulty gesture.Difficulty `json:"difficulty"`
	Threshold  int                `json:"threshold"`
	Confidence int                `json:"confidence"`
	Recognized bool               `json:"recognized"`
	Band       gesture.Band       `json:"band"`
	Label      string             `json:"label"`
	Color      string             `json:"color"`
}

type classifyResponse struct {
	Shape      gesture.Shape       `json:"shape"`
	Confidence float64             `json:"confidence"`
	Features   *featuresResponse   `json:"features,omitempty"`
	Evaluation *evaluationResponse `json:"evaluation,omitempty"`
}

// ServeHTTP handles POST /api/classify.
func (h *ClassifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Resample < 0 || req.Resample > maxResample {
		writeError(w, http.StatusBadRequest, "Resample out of range")
		return
	}

	points := req.Points
	if req.Resample > 0 && len(points) >= 2 {
		points = geometry.Resample(points, req.Resample)
	}

	result := h.recognizer.Classify(points)
	response := classifyResponse{
		Shape:      result.Shape,
		Confidence: result.Confidence,
		Features:   h.features(points),
	}

	if req.Target != "" {
		target, err := gesture.ParseShape(req.Target)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown target shape")
			return
		}

		difficulty := gesture.DifficultyTutorial
		if req.Difficulty != "" {
			difficulty, err = gesture.ParseDifficulty(req.Difficulty)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Unknown difficulty")
				return
			}
		}

		eval := h.recognizer.Evaluate(points, target, difficulty)
		band := gesture.BandFor(eval.Confidence)
		response.Evaluation = &evaluationResponse{
			Target:     target,
			Difficulty: difficulty,
			Threshold:  h.recognizer.Threshold(difficulty),
			Confidence: eval.Confidence,
			Recognized: eval.Recognized,
			Band:       band,
			Label:      band.Label(),
			Color:      gesture.ConfidenceColor(eval.Confidence),
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// features reports the raw geometry of points, or nil for an empty path.
func (h *ClassifyHandler) features(points []geometry.Point) *featuresResponse {
	box, err := geometry.BoundingBoxOf(points)
	if err != nil {
		return nil
	}

	aspect := box.AspectRatio()
	if math.IsInf(aspect, 0) {
		aspect = 0 // not representable in JSON
	}

	return &featuresResponse{
		Points:      len(points),
		Box:         box,
		AspectRatio: aspect,
		Circularity: geometry.Circularity(points, box.Center()),
		Corners:     geometry.Corners(points, h.corners),
		Length:      geometry.PathLength(points),
	}
}
