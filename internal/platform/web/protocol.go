// Package web serves the game to browsers. Each WebSocket connection plays
// its own game on a pacman.Runner; the page renders the JSON snapshots the
// runner publishes and sends direction and restart requests back.
package web

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// Server to client message types.
const (
	MsgHello = "hello"
	MsgState = "state"
)

// Client to server message types.
const (
	MsgDir     = "dir"
	MsgRestart = "restart"
)

// ErrBadMessage is returned for client messages that cannot be applied.
var ErrBadMessage = errors.New("web: bad client message")

// ServerMessage is sent to the browser.
type ServerMessage struct {
	Type    string           `json:"type"`
	Session string           `json:"session,omitempty"`
	State   *pacman.Snapshot `json:"state,omitempty"`
	Sounds  []string         `json:"sounds,omitempty"`
}

// ClientMessage is received from the browser.
type ClientMessage struct {
	Type string `json:"type"`
	Dir  string `json:"dir,omitempty"`
}

// Command is a decoded client message.
type Command struct {
	Restart bool
	Dir     pacman.Direction
}

// ParseClientMessage decodes and validates a client message.
func ParseClientMessage(data []byte) (Command, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrBadMessage, err)
	}

	switch msg.Type {
	case MsgDir:
		dir, ok := pacman.ParseDirection(msg.Dir)
		if !ok {
			return Command{}, fmt.Errorf("%w: unknown direction %q", ErrBadMessage, msg.Dir)
		}
		return Command{Dir: dir}, nil
	case MsgRestart:
		return Command{Restart: true}, nil
	default:
		return Command{}, fmt.Errorf("%w: unknown type %q", ErrBadMessage, msg.Type)
	}
}

// stateMessage builds the state message for a snapshot.
func stateMessage(snap pacman.Snapshot, sounds []core.Sound) ServerMessage {
	msg := ServerMessage{Type: MsgState, State: &snap}
	for _, s := range sounds {
		msg.Sounds = append(msg.Sounds, s.String())
	}
	return msg
}
