package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mberkut/dishpatch/internal/domain/model"
	"github.com/mberkut/dishpatch/internal/server/http/dto"
)

// RestaurantHandler manages the owner-side catalog endpoints.
type RestaurantHandler struct {
	facade CatalogFacade
}

// NewRestaurantHandler constructs RestaurantHandler.
func NewRestaurantHandler(facade CatalogFacade) *RestaurantHandler {
	return &RestaurantHandler{facade: facade}
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(c *gin.Context) {
	actor := CurrentActor(c)
	if actor.Role != model.RoleOwner {
		c.JSON(http.StatusForbidden, dto.CreateRestaurantResponse{Error: "you cannot do that"})
		return
	}

	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, dto.CreateRestaurantResponse{Error: "could not create restaurant"})
		return
	}

	restaurant, err := h.facade.CreateRestaurant(c.Request.Context(), actor, req.Name, req.Address)
	if err != nil {
		status, msg := errorStatus(err, "could not create restaurant")
		c.JSON(status, dto.CreateRestaurantResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, dto.CreateRestaurantResponse{OK: true, RestaurantID: restaurant.ID})
}

// CreateDish handles POST /api/dishes.
func (h *RestaurantHandler) CreateDish(c *gin.Context) {
	actor := CurrentActor(c)
	if actor.Role != model.RoleOwner {
		c.JSON(http.StatusForbidden, dto.CreateDishResponse{Error: "you cannot do that"})
		return
	}

	var req dto.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Price < 0 {
		c.JSON(http.StatusBadRequest, dto.CreateDishResponse{Error: "could not create dish"})
		return
	}

	dish := &model.Dish{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Options:      toDishOptions(req.Options),
	}
	created, err := h.facade.CreateDish(c.Request.Context(), actor, dish)
	if err != nil {
		status, msg := errorStatus(err, "could not create dish")
		c.JSON(status, dto.CreateDishResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, dto.CreateDishResponse{OK: true, DishID: created.ID})
}

// Promote handles POST /api/restaurants/:id/promote.
func (h *RestaurantHandler) Promote(c *gin.Context) {
	actor := CurrentActor(c)
	if actor.Role != model.RoleOwner {
		c.JSON(http.StatusForbidden, dto.PromoteResponse{Error: "you cannot do that"})
		return
	}

	restaurantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || restaurantID <= 0 {
		c.JSON(http.StatusBadRequest, dto.PromoteResponse{Error: "restaurant not found"})
		return
	}

	payment, err := h.facade.PromoteRestaurant(c.Request.Context(), actor, restaurantID)
	if err != nil {
		status, msg := errorStatus(err, "could not promote restaurant")
		c.JSON(status, dto.PromoteResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, dto.PromoteResponse{OK: true, TransactionID: payment.TransactionID})
}

func toDishOptions(options []dto.DishOptionRequest) []model.DishOption {
	if len(options) == 0 {
		return nil
	}
	result := make([]model.DishOption, 0, len(options))
	for _, opt := range options {
		choices := make([]model.DishChoice, 0, len(opt.Choices))
		for _, choice := range opt.Choices {
			choices = append(choices, model.DishChoice{Name: choice.Name, Extra: choice.Extra})
		}
		result = append(result, model.DishOption{Name: opt.Name, Extra: opt.Extra, Choices: choices})
	}
	return result
}
