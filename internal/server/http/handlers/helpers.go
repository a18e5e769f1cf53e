package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/server/http/dto"
	"github.com/mberkut/dishpatch/internal/server/http/middleware"
)

// CurrentActor extracts the authenticated user from the gin context.
func CurrentActor(c *gin.Context) model.User {
	val, ok := c.Get(middleware.ActorContextKey)
	if !ok {
		return model.User{}
	}
	actor, _ := val.(model.User)
	return actor
}

// errorStatus maps a domain error onto an HTTP status and the stable
// user-facing message. Storage and other unexpected errors surface only as
// the operation's generic fallback message.
func errorStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, domainErrors.ErrRestaurantNotFound):
		return http.StatusNotFound, "restaurant not found"
	case errors.Is(err, domainErrors.ErrDishNotFound):
		return http.StatusNotFound, "dish not found"
	case errors.Is(err, domainErrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, domainErrors.ErrCannotSeeOrder):
		return http.StatusForbidden, "you cannot see that"
	case errors.Is(err, domainErrors.ErrCannotEditOrder), errors.Is(err, domainErrors.ErrNotOwner):
		return http.StatusForbidden, "you cannot do that"
	case errors.Is(err, domainErrors.ErrDriverTaken):
		return http.StatusConflict, "this order already has a driver"
	case errors.Is(err, domainErrors.ErrEmptyOrder):
		return http.StatusBadRequest, fallback
	default:
		return http.StatusInternalServerError, fallback
	}
}

func respondError(c *gin.Context, err error, fallback string) {
	status, msg := errorStatus(err, fallback)
	c.JSON(status, dto.StatusResponse{OK: false, Error: msg})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:      item.ID,
			DishID:  item.DishID,
			Options: toItemOptions(item.Options),
		})
	}
	return dto.OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		DriverID:     order.DriverID,
		RestaurantID: order.RestaurantID,
		Total:        order.Total,
		Status:       string(order.Status),
		Items:        items,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

func toItemOptions(options []model.ItemOption) []dto.ItemOptionRequest {
	if len(options) == 0 {
		return nil
	}
	result := make([]dto.ItemOptionRequest, 0, len(options))
	for _, opt := range options {
		result = append(result, dto.ItemOptionRequest{Name: opt.Name, Choice: opt.Choice})
	}
	return result
}
