// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"ai-tools-api/internal/services"
	"ai-tools-api/internal/transport/httpdto"
	apperrors "ai-tools-api/pkg/errors"
	"ai-tools-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: l}
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("User already exists"))
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.AuthResponse{
		Token: res.Token,
		User:  httpdto.NewUserDTO(res.User),
	})
}

// Login handles user authentication. Unknown email and wrong password produce
// the same body, so the endpoint cannot be used to probe for accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, httpdto.NewMessageResponse("Invalid credentials"))
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.AuthResponse{
		Token: res.Token,
		User:  httpdto.NewUserDTO(res.User),
	})
}

// Me returns the public fields of the user the auth middleware resolved.
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := services.CurrentUserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewMessageResponse("Not authorized"))
		return
	}

	c.JSON(http.StatusOK, httpdto.MeResponse{User: httpdto.NewUserDTO(u)})
}

func (h *AuthHandler) writeError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		if h.logger != nil {
			h.logger.WithContext(c.Request.Context()).Sugar().Errorf("auth handler error: %v", err)
		}
		c.JSON(status, httpdto.NewMessageResponse("Server error"))
		return
	}
	c.JSON(status, httpdto.NewMessageResponse(err.Error()))
}
