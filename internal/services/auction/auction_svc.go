package auction

import (
	"context"
	core "englishauction/internal/auction"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuctionDTO struct {
	Name         string  `json:"name"          example:"Item"`
	MinIncrement float64 `json:"min_increment" example:"1"`
	Status       string  `json:"status"        example:"RUNNING"`
	HighBid      float64 `json:"high_bid"`
	HighBidder   string  `json:"high_bidder"   example:"No Bids"`
	Bidders      int     `json:"bidders"`
}

const (
	StatusRunning = "RUNNING"
	StatusStopped = "STOPPED"
)

type EventType string

const (
	EventStart EventType = "start"
	EventStop  EventType = "stop"
	EventBid   EventType = "bid"
)

// Event describes one state change of the hosted auction.
type Event struct {
	ID      string    `json:"id"`
	Type    EventType `json:"event"`
	Auction string    `json:"auction"`
	Bidder  string    `json:"bidder,omitempty"`
	Amount  float64   `json:"amount,omitempty"`
	BestBid float64   `json:"best_bid"`
	Winner  string    `json:"winner"`
	At      time.Time `json:"at"`
}

// EventSink receives every event after the auction state has changed.
type EventSink interface {
	Publish(ctx context.Context, ev Event) error
}

// sinkTimeout bounds one delivery to one sink.
const sinkTimeout = 5 * time.Second

type IAuctionService interface {
	StartAuction(ctx context.Context)
	StopAuction(ctx context.Context)
	PlaceBid(ctx context.Context, bidder string, amount float64) (*Event, error)
	GetAuction(ctx context.Context) *AuctionDTO
}

type auctionService struct {
	auction *core.Auction
	sinks   []EventSink
	now     func() time.Time

	// mu orders state changes with their delivery, so sinks see events in
	// the order the auction applied them.
	mu sync.Mutex
}

var _ IAuctionService = (*auctionService)(nil)

func NewAuctionService(a *core.Auction, sinks ...EventSink) IAuctionService {
	return &auctionService{
		auction: a,
		sinks:   sinks,
		now:     time.Now,
	}
}

func (svc *auctionService) StartAuction(ctx context.Context) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.auction.Start()
	svc.emit(ctx, svc.event(EventStart, svc.auction.Snapshot()))
}

func (svc *auctionService) StopAuction(ctx context.Context) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.auction.Stop()
	svc.emit(ctx, svc.event(EventStop, svc.auction.Snapshot()))
}

// PlaceBid validates and records the bid on the hosted auction. Entity errors
// are returned unchanged so callers can match them with errors.Is.
func (svc *auctionService) PlaceBid(ctx context.Context, bidder string, amount float64) (*Event, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	st, err := svc.auction.BidState(bidder, amount)
	if err != nil {
		zap.L().Debug("bid_rejected",
			zap.String("bidder", bidder),
			zap.Float64("amount", amount),
			zap.Error(err),
		)
		return nil, err
	}

	ev := svc.event(EventBid, st)
	ev.Bidder = core.Normalize(bidder)
	ev.Amount = amount
	svc.emit(ctx, ev)
	return &ev, nil
}

func (svc *auctionService) GetAuction(_ context.Context) *AuctionDTO {
	return DTOFromState(svc.auction.Snapshot())
}

func DTOFromState(s core.State) *AuctionDTO {
	st := StatusStopped
	if s.Active {
		st = StatusRunning
	}
	return &AuctionDTO{
		Name:         s.Name,
		MinIncrement: s.MinIncrement,
		Status:       st,
		HighBid:      s.BestBid,
		HighBidder:   s.Winner,
		Bidders:      s.Bidders,
	}
}

func (svc *auctionService) event(t EventType, s core.State) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    t,
		Auction: s.Name,
		BestBid: s.BestBid,
		Winner:  s.Winner,
		At:      svc.now().UTC(),
	}
}

// emit hands ev to every sink. The change is already applied, so delivery
// outlives the caller's context and a failing sink never undoes it.
func (svc *auctionService) emit(ctx context.Context, ev Event) {
	for _, s := range svc.sinks {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
		err := s.Publish(sctx, ev)
		cancel()
		if err != nil {
			zap.L().Warn("event_publish_failed",
				zap.String("event", string(ev.Type)),
				zap.String("id", ev.ID),
				zap.Error(err),
			)
		}
	}
}
