package ws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoReq struct {
	Text string `json:"text"`
}

func TestRouter_Dispatch(t *testing.T) {
	r := NewRouter()
	Register(r, "echo", func(_ context.Context, c *ConnContext, req echoReq) (string, error) {
		return c.Bidder + ":" + req.Text, nil
	})

	cc := &ConnContext{Bidder: "Ann"}
	res, err := r.dispatch(context.Background(), cc, Envelope{Event: "echo", Body: json.RawMessage(`{"text":"hi"}`)})
	require.NoError(t, err)
	assert.Equal(t, "Ann:hi", res)

	_, err = r.dispatch(context.Background(), cc, Envelope{Event: "echo", Body: json.RawMessage(`{"text":1}`)})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = r.dispatch(context.Background(), cc, Envelope{Event: "missing"})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestRegister_EmptyEventPanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(NewRouter(), "", func(context.Context, *ConnContext, echoReq) (int, error) { return 0, nil })
	})
}
