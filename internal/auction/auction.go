package auction

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	// NoBidsLabel is the sentinel bidder key present from construction on.
	NoBidsLabel = "no bids"

	DefaultMinIncrement float64 = 1
)

// Auction is a single-item English auction. One Auction is for bidding on a
// single item; all methods are safe for concurrent use.
type Auction struct {
	name         string
	minIncrement float64

	mu     sync.Mutex
	active bool
	bids   map[string]float64
	order  []string // insertion order of bids keys, sentinel first
}

// State is a consistent read of an auction taken under a single lock.
type State struct {
	Name         string
	MinIncrement float64
	Active       bool
	BestBid      float64
	Winner       string
	Bidders      int
}

// New creates an inactive auction. Neither argument is validated.
func New(name string, minIncrement float64) *Auction {
	return &Auction{
		name:         name,
		minIncrement: minIncrement,
		bids:         map[string]float64{NoBidsLabel: 0},
		order:        []string{NoBidsLabel},
	}
}

// NewDefault creates an auction using DefaultMinIncrement.
func NewDefault(name string) *Auction { return New(name, DefaultMinIncrement) }

func (a *Auction) Name() string { return a.name }

func (a *Auction) MinIncrement() float64 { return a.minIncrement }

// Start enables bidding.
func (a *Auction) Start() {
	a.mu.Lock()
	a.active = true
	a.mu.Unlock()
}

// Stop disables bidding. Recorded bids are kept.
func (a *Auction) Stop() {
	a.mu.Lock()
	a.active = false
	a.mu.Unlock()
}

func (a *Auction) IsActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Bid submits a bid. Checks run in a fixed order and the first failing one
// determines the returned error; bids are only written when all pass.
func (a *Auction) Bid(bidderName string, amount float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bidLocked(bidderName, amount)
}

// BidState is Bid that also returns the state right after the bid was
// recorded, read under the same lock.
func (a *Auction) BidState(bidderName string, amount float64) (State, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.bidLocked(bidderName, amount); err != nil {
		return State{}, err
	}
	return a.snapshotLocked(), nil
}

func (a *Auction) bidLocked(bidderName string, amount float64) error {
	if !utf8.ValidString(bidderName) {
		return ErrInvalidBidderName
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}
	if !a.active {
		return ErrNotActive
	}
	if strings.TrimSpace(bidderName) == "" {
		return ErrMissingBidder
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount < a.bestBidLocked()+a.minIncrement {
		return ErrBidTooLow
	}

	key := Normalize(bidderName)
	if _, ok := a.bids[key]; !ok {
		a.order = append(a.order, key)
	}
	a.bids[key] = amount
	return nil
}

// BestBid returns the highest bid so far, 0 when nobody has bid.
func (a *Auction) BestBid() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bestBidLocked()
}

// Winner returns the normalized name holding the best bid. On a tie the
// bidder who first entered the auction wins.
func (a *Auction) Winner() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.winnerLocked()
}

func (a *Auction) Snapshot() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *Auction) snapshotLocked() State {
	return State{
		Name:         a.name,
		MinIncrement: a.minIncrement,
		Active:       a.active,
		BestBid:      a.bestBidLocked(),
		Winner:       a.winnerLocked(),
		Bidders:      len(a.order) - 1,
	}
}

func (a *Auction) String() string { return "Auction for " + a.name }

func (a *Auction) GoString() string {
	return fmt.Sprintf("auction.New(%q, %v)", a.name, a.minIncrement)
}

func (a *Auction) bestBidLocked() float64 {
	best := a.bids[a.order[0]]
	for _, k := range a.order[1:] {
		if v := a.bids[k]; v > best {
			best = v
		}
	}
	return best
}

func (a *Auction) winnerLocked() string {
	best := a.bestBidLocked()
	for _, k := range a.order {
		if a.bids[k] == best {
			return Normalize(k)
		}
	}
	return Normalize(NoBidsLabel)
}
