package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Outbound queue length. Older states are dropped when the peer lags.
	sendBuffer = 64
)

// session is one browser connection playing one game.
type session struct {
	id      string
	player  string
	conn    *websocket.Conn
	runner  *pacman.Runner
	send    chan []byte
	store   *storage.Store
	logger  *log.Logger
	started time.Time
	saved   bool
}

func newSession(conn *websocket.Conn, rules pacman.Rules, seed int64, store *storage.Store, logger *log.Logger) *session {
	id := uuid.NewString()
	s := &session{
		id:      id,
		player:  "web-" + id[:8],
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		store:   store,
		logger:  logger.With("session", id),
		started: time.Now(),
	}
	s.runner = pacman.NewRunner(rules, pacman.NewRandSource(seed), s.onUpdate)
	return s
}

// run plays the game until the peer disconnects or ctx is done.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.queue(ServerMessage{Type: MsgHello, Session: s.id})

	go func() {
		if err := s.runner.Run(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("game loop stopped", "error", err)
		}
	}()
	go s.writePump(ctx)

	s.readPump()
}

// onUpdate runs on the runner goroutine for every state change.
func (s *session) onUpdate(snap pacman.Snapshot, sounds []core.Sound) {
	if !snap.GameOver {
		if s.saved {
			s.saved = false
			s.started = time.Now()
		}
	} else if !s.saved {
		s.saved = true
		s.saveScore(snap)
	}

	s.queue(stateMessage(snap, sounds))
}

// saveScore records a finished game. Failures are logged only.
func (s *session) saveScore(snap pacman.Snapshot) {
	s.logger.Info("game over", "score", snap.Score, "won", snap.Won)
	if s.store == nil || snap.Score <= 0 {
		return
	}
	_, err := s.store.SaveScore(storage.ScoreEntry{
		GameID:   "pacman",
		Player:   s.player,
		Score:    snap.Score,
		Won:      snap.Won,
		Duration: time.Since(s.started),
	})
	if err != nil {
		s.logger.Warn("score not saved", "error", err)
	}
}

// queue encodes msg for the write pump, dropping the oldest queued message
// when the peer is not keeping up.
func (s *session) queue(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("cannot encode message", "error", err)
		return
	}
	for {
		select {
		case s.send <- data:
			return
		default:
		}
		select {
		case <-s.send:
		default:
		}
	}
}

// readPump applies client messages until the connection fails.
func (s *session) readPump() {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageSize)
	//nolint:errcheck // a failed deadline surfaces on the next read
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket error", "error", err)
			}
			return
		}

		cmd, err := ParseClientMessage(data)
		if err != nil {
			s.logger.Debug("ignoring message", "error", err)
			continue
		}
		if cmd.Restart {
			s.runner.Restart()
		} else {
			s.runner.SetDirection(cmd.Dir)
		}
	}
}

// writePump sends queued messages and keepalive pings.
func (s *session) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			//nolint:errcheck // best-effort close frame
			s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return

		case data := <-s.send:
			//nolint:errcheck // a failed deadline surfaces on the write
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			//nolint:errcheck // a failed deadline surfaces on the write
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
