package auctionhandler

// PlaceBidBody only checks presence and JSON types; a blank bidder or a
// non-positive amount is left to the auction so its check order holds.
type PlaceBidBody struct {
	Bidder *string  `json:"bidder" binding:"required" example:"Jane Doe"`
	Amount *float64 `json:"amount" binding:"required" example:"5"`
} // @name PlaceBidRequest

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
} // @name ErrorResponse
