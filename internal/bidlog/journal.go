package bidlog

import (
	"context"
	"database/sql"
	"englishauction/internal/services/auction"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS bids (
    id         UUID PRIMARY KEY,
    auction    TEXT             NOT NULL,
    bidder     TEXT             NOT NULL,
    amount     DOUBLE PRECISION NOT NULL,
    placed_at  TIMESTAMPTZ      NOT NULL
)`

const insertBid = `INSERT INTO bids (id, auction, bidder, amount, placed_at)
             VALUES ($1, $2, $3, $4, $5)
             ON CONFLICT DO NOTHING`

// EnsureSchema creates the bids table when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("bidlog schema: %w", err)
	}
	return nil
}

// Journal appends every accepted bid to postgres. It is an audit trail only;
// nothing reads it back into the auction.
type Journal struct {
	db *sql.DB
}

var _ auction.EventSink = (*Journal)(nil)

func NewJournal(db *sql.DB) *Journal { return &Journal{db: db} }

func (j *Journal) Publish(ctx context.Context, ev auction.Event) error {
	if ev.Type != auction.EventBid {
		return nil
	}
	if _, err := j.db.ExecContext(ctx, insertBid, ev.ID, ev.Auction, ev.Bidder, ev.Amount, ev.At); err != nil {
		return fmt.Errorf("bidlog insert %s: %w", ev.ID, err)
	}
	return nil
}
