package handlers

import (
	"fmt"
	"net/http"

	"restaurant-menu-api/bulkimport"

	"github.com/gin-gonic/gin"
)

// ClearAllMenuItems empties every menu partition. Destructive and
// irreversible; only reachable by admins, normally right before a reimport.
func (h *Handler) ClearAllMenuItems(c *gin.Context) {
	if err := h.Store.ClearAllMenuItems(); err != nil {
		fail(c, err, "Failed to clear menu items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All menu items cleared"})
}

// ImportMenu ingests a CSV menu sheet uploaded as the "file" form field.
// ?replace=true clears all partitions before loading.
func (h *Handler) ImportMenu(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file required in 'file' field"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer f.Close()

	replace := c.Query("replace") == "true"
	report, err := bulkimport.Run(h.Store, f, replace)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Imported %d of %d items", report.Imported, report.Total),
		"report":  report,
	})
}

// FixVegClassification triggers the veg-flag reclassification pass. The pass
// itself is not implemented yet and reports zero updates.
func (h *Handler) FixVegClassification(c *gin.Context) {
	updated, details, err := h.Store.FixVegClassification()
	if err != nil {
		fail(c, err, "Failed to fix veg classification")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Fixed %d items", updated),
		"updated": updated,
		"details": details,
	})
}
