package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/ayusman/ambidraw/internal/app"
	"github.com/ayusman/ambidraw/internal/level"
	"github.com/ayusman/ambidraw/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// Client message types.
const (
	msgStart = "start"
	msgMove  = "move"
	msgEnd   = "end"
	msgClear = "clear"
	msgReset = "reset"
)

// Server message types.
const (
	msgSession  = "session"
	msgFrame    = "frame"
	msgAttempts = "attempts"
	msgCleared  = "cleared"
	msgError    = "error"
)

// contactMessage is one changed contact in a client message.
type contactMessage struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// clientMessage mirrors a touch event: every changed contact shares one phase.
type clientMessage struct {
	Type     string           `json:"type"`
	Contacts []contactMessage `json:"contacts"`
}

type serverMessage struct {
	Type       string              `json:"type"`
	SessionID  string              `json:"sessionId,omitempty"`
	Level      *level.Level        `json:"level,omitempty"`
	Frame      session.Frame       `json:"frame,omitempty"`
	Attempts   []session.Attempt   `json:"attempts,omitempty"`
	Recognized *session.Recognized `json:"recognized,omitempty"`
	Complete   bool                `json:"complete,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// PlayHandler runs one recognition session per WebSocket connection.
//
// The session lives as long as the connection. Messages from one connection
// are handled in order by its read loop, which is also the only writer.
type PlayHandler struct {
	app *app.App
}

// NewPlayHandler creates a new PlayHandler backed by the given app.
func NewPlayHandler(a *app.App) *PlayHandler {
	return &PlayHandler{app: a}
}

// ServeHTTP handles GET /api/play?level={id}&width={px}.
func (h *PlayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	levelID, err := strconv.Atoi(r.URL.Query().Get("level"))
	if err != nil {
		http.Error(w, "Invalid level", http.StatusBadRequest)
		return
	}
	if _, err := level.Get(levelID); err != nil {
		http.Error(w, "Level not found", http.StatusNotFound)
		return
	}

	var width float64
	if raw := r.URL.Query().Get("width"); raw != "" {
		width, err = strconv.ParseFloat(raw, 64)
		if err != nil || width <= 0 {
			http.Error(w, "Invalid width", http.StatusBadRequest)
			return
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	sess, err := h.app.StartSession(levelID, width)
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		conn.WriteJSON(serverMessage{Type: msgError, Error: "failed to start session"})
		return
	}
	defer h.app.EndSession(sess.ID())

	lvl := sess.Level()
	if err := conn.WriteJSON(serverMessage{Type: msgSession, SessionID: sess.ID(), Level: &lvl}); err != nil {
		return
	}

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}

		reply, err := h.handle(sess.ID(), msg)
		if err != nil {
			reply = serverMessage{Type: msgError, Error: err.Error()}
		}
		if reply.Type == "" {
			continue
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// handle applies one client message to the session and builds the reply.
// An empty reply type means nothing needs to be sent.
func (h *PlayHandler) handle(id string, msg clientMessage) (serverMessage, error) {
	switch msg.Type {
	case msgClear:
		if err := h.app.ClearCanvas(id); err != nil {
			return serverMessage{}, err
		}
		return serverMessage{Type: msgCleared}, nil
	case msgReset:
		if err := h.app.Reset(id); err != nil {
			return serverMessage{}, err
		}
		return serverMessage{Type: msgCleared}, nil
	}

	var phase session.Phase
	switch msg.Type {
	case msgStart:
		phase = session.PhaseStart
	case msgMove:
		phase = session.PhaseMove
	case msgEnd:
		phase = session.PhaseEnd
	default:
		return serverMessage{}, errors.New("unknown message type " + strconv.Quote(msg.Type))
	}

	events := make([]session.Event, len(msg.Contacts))
	for i, c := range msg.Contacts {
		events[i] = session.Event{Phase: phase, ContactID: c.ID, X: c.X, Y: c.Y}
	}

	out, err := h.app.Play(id, events)
	if err != nil {
		return serverMessage{}, err
	}

	switch phase {
	case session.PhaseMove:
		if len(out.Frame) == 0 {
			return serverMessage{}, nil
		}
		return serverMessage{Type: msgFrame, Frame: out.Frame, Recognized: &out.Recognized}, nil
	case session.PhaseEnd:
		return serverMessage{
			Type:       msgAttempts,
			Attempts:   out.Attempts,
			Recognized: &out.Recognized,
			Complete:   out.Complete,
		}, nil
	}
	return serverMessage{}, nil
}
