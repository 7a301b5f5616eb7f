package api

import (
	"errors"
	"net/http"

	"vastratrota-backend/internal/service"
	"vastratrota-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// getSales returns the full sale ledger for reporting
func (h *Handler) getSales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sales": h.saleService.ListSales(c.Request.Context()),
	})
}

// recordSale validates and commits a sale
func (h *Handler) recordSale(c *gin.Context) {
	var req service.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"details": err.Error(),
		})
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount must be between 0 and 100"})
		case errors.Is(err, store.ErrProductNotFound), errors.Is(err, store.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product or customer not found"})
		case errors.Is(err, store.ErrInsufficientStock), errors.Is(err, store.ErrInventoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sale recorded successfully",
		"sale":    sale,
	})
}
