package handlers

import (
	"net/http"

	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

// GetMenuItems returns the whole menu, or one category when ?category= is
// given. Unknown categories come back as an empty list, never an error —
// legacy clients still send retired category spellings.
func (h *Handler) GetMenuItems(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		items, err := h.Store.GetMenuItemsByCategory(category)
		if err != nil {
			fail(c, err, "Failed to fetch menu items")
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.Store.GetAllMenuItems()
	if err != nil {
		fail(c, err, "Failed to fetch menu items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItemsByCategory is the path-parameter form of the category listing.
func (h *Handler) GetMenuItemsByCategory(c *gin.Context) {
	items, err := h.Store.GetMenuItemsByCategory(c.Param("category"))
	if err != nil {
		fail(c, err, "Failed to fetch menu items by category")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItem returns a single item by id.
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, err := h.Store.GetMenuItemByID(c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetCategories returns the registered canonical category keys.
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Categories())
}

// GetMenuTaxonomy returns the browse structure: main categories with their
// subcategories, in display order.
func (h *Handler) GetMenuTaxonomy(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Registry().MainCategories())
}

type CreateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required,numeric"`
	Category    string `json:"category" binding:"required"`
	IsVeg       bool   `json:"isVeg"`
	Image       string `json:"image"`
	IsAvailable *bool  `json:"isAvailable"`
}

// AddMenuItem inserts a new item into its category's partition (admin only).
func (h *Handler) AddMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item, err := h.Store.AddMenuItem(models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsVeg:       req.IsVeg,
		Image:       req.Image,
		IsAvailable: available,
	})
	if err != nil {
		fail(c, err, "Failed to add menu item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}
