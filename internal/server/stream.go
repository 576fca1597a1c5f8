package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/robherley/game-of-life/internal/game"
	"github.com/robherley/game-of-life/internal/render"
	"github.com/robherley/game-of-life/internal/store"
	"github.com/robherley/game-of-life/pkg/logger"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	// One simulation step per tick while streaming.
	stepPeriod = 500 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// streamFrame is one generation pushed to a live-stream client.
type streamFrame struct {
	Name       string `json:"name"`
	Generation uint64 `json:"generation"`
	Delta      uint64 `json:"delta"`
	Board      string `json:"board"`
	Terminal   bool   `json:"terminal"`
}

// streamClient drives one websocket subscriber: readPump watches for
// the client going away, writePump steps the game on a fixed tick and
// pushes frames until the board reaches a fixed point.
type streamClient struct {
	srv  *Server
	conn *websocket.Conn
	name string
	done chan struct{}
}

// handleStream serves GET /ws/{name}: a live simulation stream of an
// existing game. Each frame advances and persists one generation, so
// reconnecting resumes where the stream left off.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if _, err := s.Store.Find(r.Context(), name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, fmt.Sprintf("game '%s' not found", name), http.StatusNotFound)
			return
		}
		logger.Log.WithError(err).WithField("game", name).Error("find failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("websocket upgrade failed")
		return
	}

	c := &streamClient{
		srv:  s,
		conn: conn,
		name: name,
		done: make(chan struct{}),
	}

	logger.Log.WithField("game", name).Info("stream client connected")
	go c.readPump()
	c.writePump()
}

// readPump discards client messages and watches for disconnects.
func (c *streamClient) readPump() {
	defer close(c.done)

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Debug("stream read error")
			}
			return
		}
	}
}

// writePump ticks the simulation and pushes frames, plus keepalive
// pings, until the game is terminal or the client leaves.
func (c *streamClient) writePump() {
	stepTicker := time.NewTicker(stepPeriod)
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		stepTicker.Stop()
		pingTicker.Stop()
		if err := c.conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close stream connection")
		}
		logger.Log.WithField("game", c.name).Info("stream client disconnected")
	}()

	// Opening frame: the stored state as-is, no step taken.
	g, err := c.srv.Store.Find(context.Background(), c.name)
	if err != nil {
		logger.Log.WithError(err).WithField("game", c.name).Error("stream find failed")
		return
	}
	if !c.send(g, 0) {
		return
	}

	for {
		select {
		case <-c.done:
			return

		case <-stepTicker.C:
			g, err := c.step()
			if err != nil {
				logger.Log.WithError(err).WithField("game", c.name).Error("stream step failed")
				return
			}
			if !c.send(g, g.Delta) {
				return
			}
			if g.Terminal() {
				c.close(websocket.CloseNormalClosure, "board reached a fixed point")
				return
			}

		case <-pingTicker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

// step advances the stored game one generation under the per-name
// lock, the same read-modify-write discipline the render path uses.
func (c *streamClient) step() (*game.Game, error) {
	unlock := c.srv.locks.lock(c.name)
	defer unlock()

	ctx := context.Background()
	g, err := c.srv.Store.Find(ctx, c.name)
	if err != nil {
		return nil, err
	}
	g.Next()
	if err := c.srv.Store.Update(ctx, c.name, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (c *streamClient) send(g *game.Game, delta uint64) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set write deadline")
	}
	frame := streamFrame{
		Name:       c.name,
		Generation: g.Generation,
		Delta:      delta,
		Board:      render.Text(g.Board, render.DefaultTextOptions()),
		Terminal:   g.Terminal(),
	}
	if err := c.conn.WriteJSON(frame); err != nil {
		logger.Log.WithError(err).Debug("write frame failed")
		return false
	}
	return true
}

func (c *streamClient) close(code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	if err := c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		logger.Log.WithError(err).Debug("write close message failed")
	}
}
