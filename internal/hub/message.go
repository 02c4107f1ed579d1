package hub

import (
	"time"

	"github.com/soar/padframe/internal/gamepad"
)

// WSMessage represents a WebSocket message sent from server to client.
// PadIndex is always present since pad 0 is a valid subscription.
type WSMessage struct {
	Type      string                 `json:"type"`      // "full", "delta" or "pad_selected"
	Seq       int64                  `json:"seq"`       // Sequence number for ordering
	Timestamp int64                  `json:"timestamp"` // Unix timestamp in milliseconds
	PadIndex  int                    `json:"padIndex"`
	Data      *gamepad.PadState      `json:"data,omitempty"`    // Full pad state for type "full"
	Changes   *gamepad.DeltaChanges  `json:"changes,omitempty"` // Delta changes for type "delta"
}

// NewFullMessage creates a "full" type message containing complete pad state.
func NewFullMessage(seq int64, padIndex int, state *gamepad.PadState) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		PadIndex:  padIndex,
		Data:      state,
	}
}

// NewDeltaMessage creates a "delta" type message containing only changed fields.
func NewDeltaMessage(seq int64, padIndex int, changes *gamepad.DeltaChanges) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		PadIndex:  padIndex,
		Changes:   changes,
	}
}

// NewPadSelectedMessage creates a "pad_selected" confirmation message.
func NewPadSelectedMessage(padIndex int) *WSMessage {
	return &WSMessage{
		Type:      "pad_selected",
		Timestamp: time.Now().UnixMilli(),
		PadIndex:  padIndex,
	}
}

// ClientMessage represents a message sent from the client to the server.
type ClientMessage struct {
	Type     string `json:"type"`
	PadIndex int    `json:"padIndex,omitempty"`
}
