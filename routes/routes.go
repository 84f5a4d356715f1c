package routes

import (
	"bistro-api/handlers"
	"bistro-api/middleware"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (no auth needed)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/menu/:id", handlers.GetMenuItem)

		// Reservations and guest ordering
		public.POST("/reservations", handlers.CreateReservation)
		public.POST("/orders", middleware.OptionalAuth(), handlers.PlaceOrder)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Role-based order visibility; status updates are authorized by the
		// engine, not the router.
		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Owner routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner))
	{
		// Menu management
		admin.POST("/menu", handlers.AddMenuItem)
		admin.PUT("/menu/:id", handlers.UpdateMenuItem)
		admin.PUT("/menu/:id/image", handlers.ReplaceMenuItemImage)
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem)

		// Categories
		admin.POST("/categories", handlers.CreateCategory)
		admin.PUT("/categories/:id", handlers.UpdateCategory)

		// Staff and clients
		admin.GET("/users", handlers.ListUsers)
		admin.POST("/users", handlers.CreateUser)
		admin.PUT("/users/:id", handlers.UpdateUser)

		// Reservations and reporting
		admin.GET("/reservations", handlers.ListReservations)
		admin.GET("/orders/export", handlers.ExportOrders)
	}
}
