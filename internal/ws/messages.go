package ws

import "encoding/json"

const eventPrefix = "auction/"

// Envelope wraps every WS frame.
type Envelope struct {
	Event string          `json:"event"`          // e.g. "auction/bid"
	Body  json.RawMessage `json:"body,omitempty"` // arbitrary JSON object
}

// outFrame is the server-side twin of Envelope.
type outFrame struct {
	Event string `json:"event"`
	Body  any    `json:"body,omitempty"`
}

// BidRequest is the body for "auction/bid". The bidder comes from the
// connection, not the frame.
type BidRequest struct {
	Amount *float64 `json:"amount" validate:"required"`
}

// ErrorBody is returned for failures.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
