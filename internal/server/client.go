package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rybkr/puzzle15/internal/board"
	"github.com/rybkr/puzzle15/internal/scramble"
)

const wsIdlePingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type movePayload struct {
	Move board.Move `json:"move"`
}

type statePayload struct {
	Board  string `json:"board"`
	Moved  bool   `json:"moved"`
	Solved bool   `json:"solved"`
}

// playSession is one websocket client playing one board. Sessions are
// independent: the board lives and dies with the connection.
type playSession struct {
	conn   *websocket.Conn
	puzzle *board.Board
	send   chan []byte
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	sess := &playSession{
		conn:   conn,
		puzzle: board.New(),
		send:   make(chan []byte, 8),
	}

	go func() {
		defer conn.Close()
		writeWithHeartbeat(conn, sess.send)
	}()
	defer close(sess.send)

	sess.pushState(false)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sess.pushError(err)
			continue
		}
		sess.handle(msg)
	}
}

func (sess *playSession) handle(msg wsMessage) {
	switch msg.Type {
	case "move":
		var p movePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			sess.pushError(err)
			return
		}
		sess.pushState(sess.puzzle.Apply(p.Move))
	case "scramble":
		b, _, err := scramble.New(nil).Generate()
		if err != nil {
			sess.pushError(err)
			return
		}
		sess.puzzle = b
		sess.pushState(true)
	case "reset":
		sess.puzzle = board.New()
		sess.pushState(true)
	case "state":
		sess.pushState(false)
	default:
		sess.pushError(fmt.Errorf("unknown message type %q", msg.Type))
	}
}

func (sess *playSession) pushState(moved bool) {
	payload := statePayload{
		Board:  sess.puzzle.String(),
		Moved:  moved,
		Solved: sess.puzzle.Equal(board.New()),
	}
	sess.push(wsMessage{Type: "state", Payload: mustMarshal(payload)})
}

func (sess *playSession) pushError(err error) {
	sess.push(wsMessage{Type: "error", Payload: mustMarshal(errorResponse{Error: err.Error()})})
}

func (sess *playSession) push(msg wsMessage) {
	sess.send <- mustMarshal(msg)
}

// writeWithHeartbeat drains send onto the connection and pings when the
// link has been idle for a full interval, so proxies keep it open.
func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
