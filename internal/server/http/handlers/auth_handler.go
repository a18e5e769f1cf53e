package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/server/http/dto"
	"github.com/mberkut/dishpatch/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Error: "could not register"})
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, dto.AuthResponse{Error: "could not register"})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.AuthResponse{Error: "there is a user with that email already"})
		default:
			c.JSON(http.StatusInternalServerError, dto.AuthResponse{Error: "could not register"})
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{OK: true, Token: token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Error: "could not log in"})
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.AuthResponse{Error: "wrong credentials"})
		default:
			c.JSON(http.StatusInternalServerError, dto.AuthResponse{Error: "could not log in"})
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{OK: true, Token: token})
}
