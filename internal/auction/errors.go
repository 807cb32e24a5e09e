package auction

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by Bid wraps exactly one of them.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrValidation      = errors.New("validation error")
	ErrAuctionState    = errors.New("auction state error")
)

var (
	ErrInvalidBidderName = fmt.Errorf("%w: bidder name must be valid UTF-8", ErrInvalidArgument)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be a number", ErrInvalidArgument)

	ErrNotActive = fmt.Errorf("%w: bidding not allowed now", ErrAuctionState)
	ErrBidTooLow = fmt.Errorf("%w: bid is too low", ErrAuctionState)

	ErrMissingBidder     = fmt.Errorf("%w: missing bidder name", ErrValidation)
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be positive", ErrValidation)
)

const (
	KindInvalidArgument = "invalid_argument"
	KindValidation      = "validation"
	KindAuctionState    = "auction_state"
)

// KindOf reports the failure kind wrapped by err, or "" for foreign errors.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrAuctionState):
		return KindAuctionState
	}
	return ""
}
