package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// sendBuffer is how many frames may queue for one client before the hub
// gives up on it.
const sendBuffer = 32

// clientConn queues outgoing frames; only the writer goroutine touches the
// socket for writing since gorilla allows one concurrent writer.
type clientConn struct {
	rawConn *websocket.Conn
	bidder  string
	send    chan []byte
	done    chan struct{}
	once    sync.Once
}

func newClientConn(raw *websocket.Conn, bidder string) *clientConn {
	return &clientConn{
		rawConn: raw,
		bidder:  bidder,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
	}
}

// enqueue never blocks. It reports false when the client is closed or its
// queue is full.
func (c *clientConn) enqueue(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *clientConn) writeJSON(v any) bool {
	msg, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return c.enqueue(msg)
}

func (c *clientConn) write(mt int, data []byte) error {
	_ = c.rawConn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.rawConn.WriteMessage(mt, data)
}

func (c *clientConn) ping() error {
	return c.rawConn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// close is idempotent and releases the writer.
func (c *clientConn) close() {
	c.once.Do(func() {
		close(c.done)
		if c.rawConn != nil {
			_ = c.rawConn.Close()
		}
	})
}
