package ws

import (
	"context"
	"encoding/json"
	"englishauction/internal/services/auction"
	"sync"

	"go.uber.org/zap"
)

// Hub keeps the connected clients of the hosted auction and pushes every
// auction event to all of them.
type Hub struct {
	mu    sync.RWMutex
	conns map[*clientConn]struct{}
}

var _ auction.EventSink = (*Hub)(nil)

func NewHub() *Hub { return &Hub{conns: map[*clientConn]struct{}{}} }

// Join queues greet() for c and registers it under the same write lock, so
// no broadcast can land between the greeting and the registration.
func (h *Hub) Join(c *clientConn, greet func() any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if greet != nil && !c.writeJSON(greet()) {
		return false
	}
	h.conns[c] = struct{}{}
	return true
}

func (h *Hub) Leave(c *clientConn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	c.close()
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Publish wraps ev as an "auction/<type>" frame and broadcasts it.
func (h *Hub) Publish(_ context.Context, ev auction.Event) error {
	msg, err := json.Marshal(outFrame{Event: eventPrefix + string(ev.Type), Body: ev})
	if err != nil {
		return err
	}
	h.Broadcast(msg)
	return nil
}

// Broadcast queues msg on every client without waiting on the network.
// Clients whose queue is full are dropped.
func (h *Hub) Broadcast(msg []byte) {
	var slow []*clientConn
	h.mu.RLock()
	for c := range h.conns {
		if !c.enqueue(msg) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		zap.L().Debug("ws_slow_client_dropped", zap.String("bidder", c.bidder))
		h.Leave(c)
	}
}
