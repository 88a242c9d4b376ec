// Package handler exposes credential authentication over HTTP.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"invoicing-dashboard/internal/identity/service"
)

// User-facing authentication messages. Credential failures share one message
// so callers cannot probe which check failed.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgAuthUnavailable    = "Something went wrong. Please try again."
)

// AuthHandler serves login requests through the credential verifier.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler returns an auth HTTP handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest is the login payload. The binding tags mirror the verifier's
// shape rules; the verifier re-checks them regardless of transport.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse is returned on successful authentication. The password hash
// never leaves the server.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt string    `json:"expires_at"`
	User      LoginUser `json:"user"`
}

// LoginUser is the authenticated principal as exposed to the caller.
type LoginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login handles POST /login. Malformed payloads get the same generic denial
// as bad credentials; only non-credential failures surface differently.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": MsgInvalidCredentials})
		return
	}

	res, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": MsgInvalidCredentials})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": MsgAuthUnavailable})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt.UTC().Format(time.RFC3339),
		User: LoginUser{
			ID:    res.User.ID,
			Name:  res.User.Name,
			Email: res.User.Email,
		},
	})
}
