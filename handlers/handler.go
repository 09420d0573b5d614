package handlers

import (
	"errors"
	"net/http"

	"restaurant-menu-api/storage"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies every endpoint needs. One instance is
// built at startup and registered on the router; nothing here is global.
type Handler struct {
	Store     *storage.Store
	JWTSecret []byte
}

func New(store *storage.Store, jwtSecret []byte) *Handler {
	return &Handler{Store: store, JWTSecret: jwtSecret}
}

// fail translates a storage error into an HTTP response. Unknown categories
// are the caller's fault; everything else is a backing-store problem and
// surfaces as a generic 500 without internal detail.
func fail(c *gin.Context, err error, serverMsg string) {
	switch {
	case errors.Is(err, storage.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": serverMsg})
	}
}
