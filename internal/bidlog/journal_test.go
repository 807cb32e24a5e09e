package bidlog

import (
	"context"
	"englishauction/internal/services/auction"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bidEvent() auction.Event {
	return auction.Event{
		ID:      "9f0c1a52-6f3e-4d0e-8a43-1b2f3c4d5e6f",
		Type:    auction.EventBid,
		Auction: "Item",
		Bidder:  "Bob",
		Amount:  60,
		BestBid: 60,
		Winner:  "Bob",
		At:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS bids").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_RecordsBids(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ev := bidEvent()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bids")).
		WithArgs(ev.ID, "Item", "Bob", 60.0, ev.At).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewJournal(db).Publish(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_IgnoresOtherEvents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	j := NewJournal(db)
	for _, typ := range []auction.EventType{auction.EventStart, auction.EventStop} {
		ev := bidEvent()
		ev.Type = typ
		require.NoError(t, j.Publish(context.Background(), ev))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO bids").WillReturnError(errors.New("conn reset"))
	err = NewJournal(db).Publish(context.Background(), bidEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conn reset")
}
