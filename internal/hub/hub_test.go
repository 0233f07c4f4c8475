package hub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan []byte) ([]byte, bool) {
	t.Helper()
	select {
	case msg, ok := <-ch:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil, false
	}
}

func TestHubBroadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	a, b := NewSubscriber(1), NewSubscriber(1)
	h.Register <- a
	h.Register <- b
	require.Equal(t, 2, h.Count())

	h.Broadcast <- []byte("reload")

	msg, ok := receive(t, a.Send)
	require.True(t, ok)
	assert.Equal(t, "reload", string(msg))
	msg, ok = receive(t, b.Send)
	require.True(t, ok)
	assert.Equal(t, "reload", string(msg))
}

func TestHubUnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	s := NewSubscriber(1)
	h.Register <- s
	h.Unregister <- s

	_, ok := receive(t, s.Send)
	assert.False(t, ok)
	assert.Equal(t, 0, h.Count())
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	slow := NewSubscriber(1)
	h.Register <- slow

	h.Broadcast <- []byte("one")
	h.Broadcast <- []byte("two")

	assert.Equal(t, 0, h.Count())
	msg, ok := receive(t, slow.Send)
	require.True(t, ok)
	assert.Equal(t, "one", string(msg))
	_, ok = receive(t, slow.Send)
	assert.False(t, ok)
}

func TestHubClosesSubscribersOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	s := NewSubscriber(1)
	h.Register <- s
	cancel()
	<-done

	_, ok := receive(t, s.Send)
	assert.False(t, ok)
}

func TestHubLeaveAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	h := NewHub()
	go h.Run(ctx)

	s := NewSubscriber(1)
	require.True(t, h.Join(s))
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	_, ok := receive(t, s.Send)
	assert.False(t, ok, "subscriber should be closed when the hub stops")

	left := make(chan struct{})
	go func() {
		h.Leave(s)
		close(left)
	}()
	select {
	case <-left:
	case <-time.After(time.Second):
		t.Fatal("Leave blocked after the hub stopped")
	}

	assert.False(t, h.Join(NewSubscriber(1)))
}
