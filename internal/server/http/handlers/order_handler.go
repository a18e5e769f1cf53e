package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/server/http/dto"
	"github.com/mberkut/dishpatch/internal/usecase"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	actor := CurrentActor(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.CreateOrderResponse{Error: "could not create order"})
		return
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		options := make([]model.ItemOption, 0, len(item.Options))
		for _, opt := range item.Options {
			options = append(options, model.ItemOption{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, usecase.OrderItemInput{DishID: item.DishID, Options: options})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), actor, req.RestaurantID, items)
	if err != nil {
		respondError(c, err, "could not create order")
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{OK: true, OrderID: order.ID})
}

// List handles GET /api/orders with an optional status query parameter.
func (h *OrderHandler) List(c *gin.Context) {
	actor := CurrentActor(c)

	var status *model.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := model.OrderStatus(raw)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, dto.OrdersResponse{Error: "could not get orders"})
			return
		}
		status = &s
	}

	orders, err := h.facade.Orders(c.Request.Context(), actor, status)
	if err != nil {
		status, msg := errorStatus(err, "could not get orders")
		c.JSON(status, dto.OrdersResponse{Error: msg})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{OK: true, Orders: response})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	actor := CurrentActor(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), actor, orderID)
	if err != nil {
		status, msg := errorStatus(err, "could not load order")
		c.JSON(status, dto.GetOrderResponse{Error: msg})
		return
	}

	response := toOrderResponse(*order)
	c.JSON(http.StatusOK, dto.GetOrderResponse{OK: true, Order: &response})
}

// Edit handles PATCH /api/orders/:id.
func (h *OrderHandler) Edit(c *gin.Context) {
	actor := CurrentActor(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Error: "could not edit order"})
		return
	}
	status := model.OrderStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Error: "could not edit order"})
		return
	}

	if err := h.facade.EditOrder(c.Request.Context(), actor, orderID, status); err != nil {
		// the edit path has its own visibility wording, distinct from reads
		if errors.Is(err, domainErrors.ErrCannotSeeOrder) {
			c.JSON(http.StatusForbidden, dto.StatusResponse{Error: "cannot see this"})
			return
		}
		respondError(c, err, "could not edit order")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{OK: true})
}

// Take handles POST /api/orders/:id/take.
func (h *OrderHandler) Take(c *gin.Context) {
	actor := CurrentActor(c)
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.facade.TakeOrder(c.Request.Context(), actor, orderID); err != nil {
		respondError(c, err, "could not take order")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{OK: true})
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Error: "order not found"})
		return 0, false
	}
	return id, true
}
