package auctionhandler

import (
	core "englishauction/internal/auction"
	"englishauction/internal/services/auction"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc auction.IAuctionService
}

func New(svc auction.IAuctionService) *Handler { return &Handler{svc: svc} }

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/auction", h.info)
	r.POST("/auction/start", h.start)
	r.POST("/auction/stop", h.stop)
	r.POST("/auction/bid", h.bid)
}

// StatusFor maps an auction error to the HTTP status reported for it.
func StatusFor(err error) int {
	switch core.KindOf(err) {
	case core.KindInvalidArgument:
		return http.StatusBadRequest
	case core.KindValidation:
		return http.StatusUnprocessableEntity
	case core.KindAuctionState:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// @Summary		Get auction details
// @Description	Returns the current best bid, its holder and whether bidding is open.
// @Tags			Auction
// @Success		200	{object}	auction.AuctionDTO
// @Router			/auction [get]
func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetAuction(c.Request.Context()))
}

// @Summary		Start the auction
// @Description	Opens the auction for bidding. Starting a running auction is a no-op.
// @Tags			Auction
// @Success		202
// @Router			/auction/start [post]
func (h *Handler) start(ginCtx *gin.Context) {
	h.svc.StartAuction(ginCtx.Request.Context())
	ginCtx.Status(http.StatusAccepted)
}

// @Summary		Stop the auction
// @Description	Closes bidding. The best bid and its holder are kept.
// @Tags			Auction
// @Success		202
// @Router			/auction/stop [post]
func (h *Handler) stop(ginCtx *gin.Context) {
	h.svc.StopAuction(ginCtx.Request.Context())
	ginCtx.Status(http.StatusAccepted)
}

// @Summary		Place a bid
// @Description	Bidder places a bid that must clear the best bid by the minimum increment.
// @Tags			Auction
// @Param			body	body		PlaceBidBody	true	"Bid payload"
// @Success		202		{object}	auction.Event
// @Failure		400		{object}	ErrorResponse
// @Failure		409		{object}	ErrorResponse
// @Failure		422		{object}	ErrorResponse
// @Router			/auction/bid [post]
func (h *Handler) bid(ginCtx *gin.Context) {
	var body PlaceBidBody
	if err := ginCtx.ShouldBindJSON(&body); err != nil {
		ginCtx.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error(), Kind: core.KindInvalidArgument})
		return
	}

	ev, err := h.svc.PlaceBid(ginCtx.Request.Context(), *body.Bidder, *body.Amount)
	if err != nil {
		ginCtx.JSON(StatusFor(err), &ErrorResponse{Error: err.Error(), Kind: core.KindOf(err)})
		return
	}
	ginCtx.JSON(http.StatusAccepted, ev)
}
