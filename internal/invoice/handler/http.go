// Package handler exposes invoice form actions and reads over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicing-dashboard/internal/invoice/domain"
	"invoicing-dashboard/internal/invoice/form"
	"invoicing-dashboard/internal/invoice/repository"
	"invoicing-dashboard/internal/invoice/service"
	"invoicing-dashboard/internal/viewcache"
)

// Handler serves invoice mutations through the mutation executor and reads
// through the repository.
type Handler struct {
	svc   *service.Service
	repo  repository.Repository
	cache *viewcache.Memory
}

// NewHandler returns an invoice HTTP handler.
func NewHandler(svc *service.Service, repo repository.Repository, cache *viewcache.Memory) *Handler {
	return &Handler{svc: svc, repo: repo, cache: cache}
}

// FormErrorResponse is the body returned when a mutation does not redirect.
type FormErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// MessageResponse is the body for message-only outcomes (delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// invoiceJSON is the wire shape of an invoice. Amount stays in cents, the
// canonical unit.
type invoiceJSON struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// Create handles POST /dashboard/invoices. A successful mutation answers with
// a 303 to the listing view; this is the only place the executor's Redirect
// result becomes actual navigation.
func (h *Handler) Create(c *gin.Context) {
	res := h.svc.Create(c.Request.Context(), formValues(c))
	h.renderResult(c, res)
}

// Update handles POST /dashboard/invoices/:id.
func (h *Handler) Update(c *gin.Context) {
	res := h.svc.Update(c.Request.Context(), c.Param("id"), formValues(c))
	h.renderResult(c, res)
}

// Delete handles DELETE /dashboard/invoices/:id. Delete never redirects; the
// caller keeps navigation.
func (h *Handler) Delete(c *gin.Context) {
	res := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if !res.OK {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: res.Message})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: res.Message})
}

// List handles GET /dashboard/invoices. Rendering the listing clears its
// stale mark.
func (h *Handler) List(c *gin.Context) {
	invoices, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database Error: Failed to fetch invoices."})
		return
	}
	out := make([]invoiceJSON, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toJSON(inv))
	}
	h.cache.Reset(service.ListingPath)
	c.JSON(http.StatusOK, gin.H{"invoices": out})
}

// Get handles GET /dashboard/invoices/:id.
func (h *Handler) Get(c *gin.Context) {
	inv, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database Error: Failed to fetch invoice."})
		return
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Invoice not found."})
		return
	}
	c.JSON(http.StatusOK, toJSON(inv))
}

func (h *Handler) renderResult(c *gin.Context, res *service.Result) {
	if res.Redirect != "" {
		c.Redirect(http.StatusSeeOther, res.Redirect)
		return
	}
	// Validation failures carry a (possibly empty) field error map; gateway
	// failures carry none.
	status := http.StatusInternalServerError
	if res.Form.Errors != nil {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, FormErrorResponse{
		Message: res.Form.Message,
		Errors:  res.Form.Errors,
	})
}

func formValues(c *gin.Context) form.Values {
	return form.Values{
		"customerId": c.PostForm("customerId"),
		"amount":     c.PostForm("amount"),
		"status":     c.PostForm("status"),
	}
}

func toJSON(inv *domain.Invoice) invoiceJSON {
	return invoiceJSON{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		Amount:        inv.AmountCents,
		Status:        string(inv.Status),
		Date:          inv.Date,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
	}
}
