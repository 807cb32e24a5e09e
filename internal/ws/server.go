package ws

import (
	"context"
	"encoding/json"
	core "englishauction/internal/auction"
	"englishauction/internal/services/auction"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 12 * time.Second
	pingPeriod = 3 * time.Second // must be < pongWait

	handlerTimeout = 1900 * time.Millisecond
	maxFrameSize   = 512
)

type WsServer struct {
	hub        *Hub
	router     *Router
	auctionSvc auction.IAuctionService
	upgrader   websocket.Upgrader
	validate   *validator.Validate
}

func NewWsServer(h *Hub, auctionSvc auction.IAuctionService) *WsServer {
	srv := &WsServer{
		hub:        h,
		router:     NewRouter(),
		auctionSvc: auctionSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true }, // dev-only
		},
		validate: validator.New(),
	}
	srv.registerHandlers()
	return srv
}

// Handle upgrades GET /ws?bidder=<name>. The bidder may be empty for
// watch-only clients; their bids are rejected by the auction itself.
func (s *WsServer) Handle(ginCtx *gin.Context) {
	rawConn, err := s.upgrader.Upgrade(ginCtx.Writer, ginCtx.Request, nil)
	if err != nil {
		zap.L().Warn("ws.accept", zap.Error(err))
		return
	}
	rawConn.SetReadLimit(maxFrameSize)
	_ = rawConn.SetReadDeadline(time.Now().Add(pongWait))
	rawConn.SetPongHandler(func(string) error {
		return rawConn.SetReadDeadline(time.Now().Add(pongWait))
	})

	conn := newClientConn(rawConn, ginCtx.Query("bidder"))

	// the snapshot is queued ahead of any broadcast this client will see
	joined := s.hub.Join(conn, func() any {
		return outFrame{Event: eventPrefix + "snapshot", Body: s.auctionSvc.GetAuction(ginCtx.Request.Context())}
	})
	if !joined {
		zap.L().Warn("ws.snapshot", zap.String("bidder", conn.bidder))
		conn.close()
		return
	}

	go s.reader(conn)
	go s.writer(conn)
}

func (s *WsServer) registerHandlers() {
	Register(
		s.router,
		eventPrefix+"bid",
		func(ctx context.Context, cc *ConnContext, req BidRequest) (*auction.Event, error) {
			if err := s.validate.Struct(req); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
			}
			return s.auctionSvc.PlaceBid(ctx, cc.Bidder, *req.Amount)
		},
	)
}

func (s *WsServer) reader(conn *clientConn) {
	defer s.hub.Leave(conn)

	cc := &ConnContext{Bidder: conn.bidder, Server: s}

	for {
		_, data, err := conn.rawConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Debug("ws.read", zap.Error(err))
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			conn.writeJSON(outFrame{Event: "error", Body: errorBody(fmt.Errorf("%w: %v", ErrBadRequest, err))})
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		res, err := s.router.dispatch(ctx, cc, env)
		cancel()

		if err != nil {
			conn.writeJSON(outFrame{Event: "error", Body: errorBody(err)})
			continue
		}
		conn.writeJSON(outFrame{Event: env.Event + "-ack", Body: res})
	}
}

// writer owns all socket writes for conn: queued frames and pings.
func (s *WsServer) writer(conn *clientConn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer s.hub.Leave(conn)

	for {
		select {
		case <-conn.done:
			return
		case msg := <-conn.send:
			if err := conn.write(websocket.TextMessage, msg); err != nil {
				zap.L().Debug("ws.write", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		}
	}
}

func errorBody(err error) ErrorBody {
	kind := core.KindOf(err)
	if kind == "" && errors.Is(err, ErrBadRequest) {
		kind = core.KindInvalidArgument
	}
	return ErrorBody{Error: err.Error(), Kind: kind}
}
