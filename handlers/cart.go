package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"omitempty,min=1"`
}

// GetCart returns the current cart lines.
func (h *Handler) GetCart(c *gin.Context) {
	items, err := h.Store.GetCartItems()
	if err != nil {
		fail(c, err, "Failed to fetch cart items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToCart merges the requested menu item into the cart. Repeat adds of the
// same item bump the existing line's quantity.
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item data"})
		return
	}

	item, err := h.Store.AddToCart(req.MenuItemID, req.Quantity)
	if err != nil {
		fail(c, err, "Failed to add item to cart")
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveFromCart deletes one cart line by id. Deleting an absent line still
// answers 200: the desired end state holds either way.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	if err := h.Store.RemoveFromCart(c.Param("id")); err != nil {
		fail(c, err, "Failed to remove item from cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// ClearCart deletes every cart line.
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.Store.ClearCart(); err != nil {
		fail(c, err, "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
