package routes

import (
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Menu browsing (no auth needed)
		public.GET("/menu-items", h.GetMenuItems)
		public.GET("/menu-items/category/:category", h.GetMenuItemsByCategory)
		public.GET("/menu-items/:id", h.GetMenuItem)
		public.GET("/categories", h.GetCategories)
		public.GET("/menu", h.GetMenuTaxonomy)

		// Cart
		public.GET("/cart", h.GetCart)
		public.POST("/cart", h.AddToCart)
		public.DELETE("/cart/:id", h.RemoveFromCart)
		public.DELETE("/cart", h.ClearCart)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.JWTSecret))
	{
		auth.GET("/profile", h.GetProfile)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/menu-items", h.AddMenuItem)
		admin.DELETE("/menu-items", h.ClearAllMenuItems)
		admin.POST("/menu-items/import", h.ImportMenu)
		admin.POST("/fix-veg-classification", h.FixVegClassification)
	}
}
