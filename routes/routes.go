package routes

import (
	"net/http"
	"time"

	"grandhaven/handlers"
	"grandhaven/middleware"
	"grandhaven/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/logout", hb.LogoutHandler)
		protected.GET("/profile", hb.ProfileHandler)
	}
}

// RegisterBookingRoutes sets up the guest-facing reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PUT("/:id/cancel", hb.CancelBookingHandler)
		api.PUT("/:id/special-requests", hb.UpdateSpecialRequestsHandler)
		api.POST("/:id/services", hb.AddServiceHandler)
		api.POST("/:id/food-orders", hb.AddFoodOrderHandler)
		api.POST("/:id/review", hb.AttachReviewHandler)
		api.POST("/:id/service-requests", hb.CreateServiceRequestHandler)
		api.POST("/:id/service-requests/:requestId/rating", hb.RateServiceRequestHandler)

		// Front-desk operations
		staff := api.Group("")
		staff.Use(middleware.RequireStaff())
		staff.PUT("/:id/check-in", hb.CheckInHandler)
		staff.PUT("/:id/check-out", hb.CheckOutHandler)
		staff.PUT("/:id/no-show", hb.NoShowHandler)
		staff.PUT("/:id/service-requests/:requestId", hb.UpdateServiceRequestHandler)
	}
}

// RegisterOrderRoutes sets up the restaurant order endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/payment-intent", hb.CreatePaymentIntentHandler)
		api.POST("/confirm-payment", hb.ConfirmPaymentHandler)
		api.GET("", hb.ListMyOrdersHandler)
		api.GET("/:id", hb.GetOrderHandler)
		api.PUT("/:id/cancel", hb.CancelOrderHandler)
	}
}

// RegisterCatalogRoutes sets up the public browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/rooms", hb.ListRoomsHandler)
	r.GET("/api/rooms/:id", hb.GetRoomHandler)
	r.GET("/api/menu", hb.ListMenuItemsHandler)
	r.GET("/api/packages", hb.ListPackagesHandler)
	r.GET("/api/packages/:id", hb.GetPackageHandler)
	r.GET("/api/gallery", hb.ListGalleryHandler)
}

// RegisterAdminRoutes sets up endpoints for staff and management operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	{
		staff := admin.Group("")
		staff.Use(middleware.RequireStaff())
		staff.GET("/bookings", hb.ListBookingsHandler)
		staff.GET("/bookings/number/:number", hb.GetBookingByNumberHandler)
		staff.PUT("/bookings/:id", hb.StaffOverrideHandler)
		staff.GET("/orders", hb.ListOrdersHandler)
		staff.PUT("/orders/:id/status", hb.UpdateOrderStatusHandler)
		staff.PUT("/rooms/:id/status", hb.SetRoomStatusHandler)

		manager := admin.Group("")
		manager.Use(middleware.RequireRoles(models.RoleManager, models.RoleAdmin))
		manager.POST("/rooms", hb.CreateRoomHandler)
		manager.PUT("/rooms/:id", hb.UpdateRoomHandler)
		manager.DELETE("/rooms/:id", hb.DeleteRoomHandler)
		manager.POST("/menu", hb.CreateMenuItemHandler)
		manager.PUT("/menu/:id", hb.UpdateMenuItemHandler)
		manager.DELETE("/menu/:id", hb.DeleteMenuItemHandler)
		manager.POST("/packages", hb.CreatePackageHandler)
		manager.PUT("/packages/:id", hb.UpdatePackageHandler)
		manager.DELETE("/packages/:id", hb.DeletePackageHandler)
		manager.POST("/gallery", hb.UploadGalleryImageHandler)
		manager.DELETE("/gallery/:id", hb.DeleteGalleryImageHandler)
		manager.GET("/employees", hb.ListEmployeesHandler)

		onlyAdmin := admin.Group("")
		onlyAdmin.Use(middleware.RequireRoles(models.RoleAdmin))
		onlyAdmin.POST("/employees", hb.RegisterEmployeeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Grand Haven backend"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
