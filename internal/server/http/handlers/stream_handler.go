package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/pubsub"
	"github.com/mberkut/dishpatch/internal/server/http/dto"
)

// StreamHandler exposes broker subscriptions as server-sent event streams.
type StreamHandler struct {
	facade StreamFacade
}

// NewStreamHandler constructs StreamHandler.
func NewStreamHandler(facade StreamFacade) *StreamHandler {
	return &StreamHandler{facade: facade}
}

// PendingOrders handles GET /api/streams/pending-orders. Only events for
// restaurants owned by the caller are delivered.
func (h *StreamHandler) PendingOrders(c *gin.Context) {
	actor := CurrentActor(c)
	if actor.Role != model.RoleOwner {
		c.JSON(http.StatusForbidden, dto.StatusResponse{Error: "you cannot do that"})
		return
	}
	h.stream(c, h.facade.PendingOrders(actor))
}

// CookedOrders handles GET /api/streams/cooked-orders, the delivery-side
// feed of orders ready for pickup.
func (h *StreamHandler) CookedOrders(c *gin.Context) {
	actor := CurrentActor(c)
	if actor.Role != model.RoleDelivery {
		c.JSON(http.StatusForbidden, dto.StatusResponse{Error: "you cannot do that"})
		return
	}
	h.stream(c, h.facade.CookedOrders())
}

// OrderUpdates handles GET /api/orders/:id/stream. The subscription filter
// re-checks visibility per event, so a watcher who cannot see the order
// simply receives nothing.
func (h *StreamHandler) OrderUpdates(c *gin.Context) {
	actor := CurrentActor(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	h.stream(c, h.facade.OrderUpdates(actor, orderID))
}

func (h *StreamHandler) stream(c *gin.Context, sub *pubsub.Subscription) {
	if sub == nil {
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{Error: "stream unavailable"})
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent("order", toOrderResponse(ev.Order))
			return true
		}
	})
}
