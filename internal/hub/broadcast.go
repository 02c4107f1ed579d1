package hub

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soar/padframe/internal/gamepad"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster turns the pump's snapshot stream into per-pad delta messages
// with periodic full syncs.
type Broadcaster struct {
	hub     *Hub
	changes <-chan []gamepad.PadState
	seq     atomic.Int64

	mu   sync.Mutex
	last []gamepad.PadState
}

func NewBroadcaster(h *Hub, changes <-chan []gamepad.PadState) *Broadcaster {
	return &Broadcaster{
		hub:     h,
		changes: changes,
	}
}

// Run starts the broadcaster loop. Should be run in a goroutine.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	var deltaCount int64

	for {
		select {
		case states, ok := <-b.changes:
			if !ok {
				return
			}

			b.mu.Lock()
			prev := b.last
			b.last = states
			b.mu.Unlock()

			for i := range states {
				var old gamepad.PadState
				if i < len(prev) {
					old = prev[i]
				}
				delta := gamepad.ComputeDelta(old, states[i])
				if delta.IsEmpty() {
					continue
				}

				deltaCount++
				// Send full sync periodically
				if deltaCount >= deltaCountSync {
					b.sendFull(i, states[i])
					deltaCount = 0
				} else {
					b.sendDelta(i, delta)
				}
			}

			// Pads that disappeared get a final disconnected snapshot.
			for i := len(states); i < len(prev); i++ {
				b.sendFull(i, gamepad.PadState{Index: i})
			}

		case <-ticker.C:
			b.mu.Lock()
			states := b.last
			b.mu.Unlock()
			for i, state := range states {
				if state.Connected {
					b.sendFull(i, state)
				}
			}
		}
	}
}

// SendInitialState sends the current full state of the client's pad. Used
// on connect and after a subscription change.
func (b *Broadcaster) SendInitialState(c *Client) {
	index := c.PadIndex()

	b.mu.Lock()
	state := gamepad.PadState{Index: index}
	if index >= 0 && index < len(b.last) {
		state = b.last[index]
	}
	b.mu.Unlock()

	msg := NewFullMessage(b.seq.Add(1), index, &state)
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling initial state: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (b *Broadcaster) sendFull(padIndex int, state gamepad.PadState) {
	msg := NewFullMessage(b.seq.Add(1), padIndex, &state)
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling full message: %v", err)
		return
	}
	b.hub.BroadcastToPad(data, padIndex)
}

func (b *Broadcaster) sendDelta(padIndex int, delta *gamepad.DeltaChanges) {
	msg := NewDeltaMessage(b.seq.Add(1), padIndex, delta)
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling delta message: %v", err)
		return
	}
	b.hub.BroadcastToPad(data, padIndex)
}
