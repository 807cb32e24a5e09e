package ws

import (
	"context"
	"englishauction/internal/services/auction"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, c *clientConn) string {
	t.Helper()
	select {
	case msg := <-c.send:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("no frame queued")
		return ""
	}
}

func TestHub_JoinQueuesGreetingFirst(t *testing.T) {
	h := NewHub()
	c := newClientConn(nil, "ann")

	sent := make(chan struct{})
	greet := func() any {
		// an event raised while the snapshot is being read
		go func() {
			h.Broadcast([]byte(`"bid"`))
			close(sent)
		}()
		time.Sleep(20 * time.Millisecond)
		return "snapshot"
	}
	require.True(t, h.Join(c, greet))
	<-sent

	assert.Equal(t, `"snapshot"`, recv(t, c))
	assert.Equal(t, `"bid"`, recv(t, c))
	assert.Equal(t, 1, h.Len())
}

func TestHub_JoinClosedClient(t *testing.T) {
	h := NewHub()
	c := newClientConn(nil, "ann")
	c.close()

	assert.False(t, h.Join(c, func() any { return "snapshot" }))
	assert.Equal(t, 0, h.Len())
}

func TestHub_SlowClientDoesNotBlockPublish(t *testing.T) {
	h := NewHub()
	slow := newClientConn(nil, "slow")
	fast := newClientConn(nil, "fast")
	require.True(t, h.Join(slow, nil))
	require.True(t, h.Join(fast, nil))

	// slow stopped reading and its queue is already full
	for i := 0; i < sendBuffer; i++ {
		require.True(t, slow.enqueue([]byte(`"old"`)))
	}

	done := make(chan error, 1)
	go func() { done <- h.Publish(context.Background(), auction.Event{Type: auction.EventBid}) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a client that stopped reading")
	}

	assert.Equal(t, 1, h.Len())
	select {
	case <-slow.done:
	default:
		t.Fatal("slow client was not closed")
	}
	assert.Contains(t, recv(t, fast), `"event":"auction/bid"`)
}
