// Package handler exposes customer reads over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicing-dashboard/internal/customer/repository"
)

// Handler serves customer reads for the invoice form dropdown.
type Handler struct {
	repo repository.Repository
}

// NewHandler returns a customer HTTP handler.
func NewHandler(repo repository.Repository) *Handler {
	return &Handler{repo: repo}
}

type customerJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// List handles GET /customers.
func (h *Handler) List(c *gin.Context) {
	customers, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database Error: Failed to fetch customers."})
		return
	}
	out := make([]customerJSON, 0, len(customers))
	for _, cust := range customers {
		out = append(out, customerJSON{
			ID:       cust.ID,
			Name:     cust.Name,
			Email:    cust.Email,
			ImageURL: cust.ImageURL,
		})
	}
	c.JSON(http.StatusOK, gin.H{"customers": out})
}
