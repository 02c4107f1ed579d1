package hub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroadcastToPadFiltersBySubscription(t *testing.T) {
	h := NewHub()

	pad0 := NewClient(h, nil)
	pad1 := NewClient(h, nil)
	pad1.SetPadIndex(1)
	h.clients[pad0] = true
	h.clients[pad1] = true

	h.BroadcastToPad([]byte("for pad 0"), 0)

	select {
	case msg := <-pad0.send:
		require.Equal(t, "for pad 0", string(msg))
	default:
		t.Fatal("pad 0 client received nothing")
	}

	select {
	case msg := <-pad1.send:
		t.Fatalf("pad 1 client received unexpected message: %s", msg)
	default:
	}
}

func TestRegisterUnregisterLifecycle(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := NewClient(h, nil)
	h.Register(c)
	h.Unregister(c)

	// Unregister closes the client's send channel.
	select {
	case _, ok := <-c.send:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestClientDefaultsToPadZero(t *testing.T) {
	h := NewHub()
	c := NewClient(h, nil)
	require.Equal(t, 0, c.PadIndex())
}
