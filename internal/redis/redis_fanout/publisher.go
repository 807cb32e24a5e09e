package redis_fanout

import (
	"context"
	"encoding/json"
	"englishauction/internal/services/auction"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Channel returns the pub/sub channel carrying events of the named auction.
func Channel(auctionName string) string { return "auc:" + auctionName + ":events" }

// Publisher fans auction events out to other processes over redis pub/sub.
type Publisher struct {
	rdc *redis.Client
}

var _ auction.EventSink = (*Publisher)(nil)

func NewPublisher(rdc *redis.Client) *Publisher { return &Publisher{rdc: rdc} }

func (p *Publisher) Publish(ctx context.Context, ev auction.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.rdc.Publish(ctx, Channel(ev.Auction), string(payload)).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ev.ID, err)
	}
	return nil
}
