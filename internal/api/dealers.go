package api

import (
	"errors"
	"net/http"

	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// getDealers returns one dealer by ?id= or the full listing. The full listing
// runs the overdue evaluation, so statuses in the response are current.
func (h *Handler) getDealers(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		dealer, err := h.dealerService.GetDealer(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dealer not found"})
			return
		}
		c.JSON(http.StatusOK, dealer)
		return
	}

	c.JSON(http.StatusOK, h.dealerService.ListDealers(c.Request.Context()))
}

// createDealer handles dealer creation
func (h *Handler) createDealer(c *gin.Context) {
	var req struct {
		Name          string         `json:"name" binding:"required"`
		Area          string         `json:"area" binding:"required"`
		StockLevels   map[string]int `json:"stockLevels"`
		PaymentStatus string         `json:"paymentStatus"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	dealer := h.dealerService.CreateDealer(c.Request.Context(), &models.Dealer{
		Name:          req.Name,
		Area:          req.Area,
		StockLevels:   req.StockLevels,
		PaymentStatus: req.PaymentStatus,
	})

	c.JSON(http.StatusCreated, dealer)
}

// updateDealer applies partial updates to a dealer identified by ?id=
func (h *Handler) updateDealer(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID required"})
		return
	}

	var updates models.Dealer
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	dealer, err := h.dealerService.UpdateDealer(c.Request.Context(), id, &updates)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dealer not found"})
		return
	}

	c.JSON(http.StatusOK, dealer)
}

// deleteDealer removes a dealer identified by ?id=
func (h *Handler) deleteDealer(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID required"})
		return
	}

	if err := h.dealerService.DeleteDealer(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrDealerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dealer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dealer deleted"})
}
