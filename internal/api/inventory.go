package api

import (
	"errors"
	"net/http"

	"vastratrota-backend/internal/service"
	"vastratrota-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// getInventory returns entries filtered by ?productId= and/or ?dealerId=
func (h *Handler) getInventory(c *gin.Context) {
	entries := h.inventoryService.GetInventory(
		c.Request.Context(),
		c.Query("productId"),
		c.Query("dealerId"),
	)
	c.JSON(http.StatusOK, entries)
}

// mutateInventory applies an add/remove action to one entry
func (h *Handler) mutateInventory(c *gin.Context) {
	var req service.MutateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"details": err.Error(),
		})
		return
	}

	entry, err := h.inventoryService.MutateStock(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInventoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		case errors.Is(err, store.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
		case errors.Is(err, service.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory updated",
		"item":    entry,
	})
}
