package syncsnap

import (
	"context"
	"englishauction/internal/services/auction"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const hashPrefix = "auc:"

func Key(auctionName string) string { return hashPrefix + auctionName }

// Run mirrors the auction's public state into a redis hash every interval
// until ctx is done. The hash expires after three missed ticks.
func Run(ctx context.Context, rdc *redis.Client, svc auction.IAuctionService, interval time.Duration) {
	tk := time.NewTicker(interval)
	go func() {
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.C:
				if err := syncOnce(ctx, rdc, svc, 3*interval); err != nil {
					zap.L().Warn("syncsnap.sync", zap.Error(err))
				}
			}
		}
	}()
}

func syncOnce(ctx context.Context, rdc *redis.Client, svc auction.IAuctionService, ttl time.Duration) error {
	dto := svc.GetAuction(ctx)
	key := Key(dto.Name)

	if err := rdc.HSet(ctx, key, fields(dto)...).Err(); err != nil {
		return err
	}
	return rdc.Expire(ctx, key, ttl).Err()
}

func fields(dto *auction.AuctionDTO) []any {
	return []any{
		"name", dto.Name,
		"inc", strconv.FormatFloat(dto.MinIncrement, 'f', -1, 64),
		"st", dto.Status,
		"hb", strconv.FormatFloat(dto.HighBid, 'f', -1, 64),
		"hbid", dto.HighBidder,
		"n", strconv.Itoa(dto.Bidders),
	}
}
