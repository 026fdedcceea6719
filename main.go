package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grandhaven/config"
	"grandhaven/database"
	bookingRepoPkg "grandhaven/database/repository/booking"
	catalogRepoPkg "grandhaven/database/repository/catalog"
	orderRepoPkg "grandhaven/database/repository/order"
	roomRepoPkg "grandhaven/database/repository/room"
	userRepoPkg "grandhaven/database/repository/user"
	"grandhaven/handlers"
	"grandhaven/middleware"
	"grandhaven/routes"
	"grandhaven/services/booking"
	"grandhaven/services/catalog"
	"grandhaven/services/guest"
	"grandhaven/services/order"
	"grandhaven/services/payment"
	"grandhaven/services/storage"
	"grandhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	guestService := &guest.DefaultGuestService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		RoomRepo:    roomRepo,
		CatalogRepo: catalogRepo,
	}
	gateway := payment.NewStripeGateway(time.Duration(config.AppConfig.GatewayTimeout) * time.Second)
	orderService := &order.DefaultOrderService{
		Repo:        orderRepo,
		CatalogRepo: catalogRepo,
		UserRepo:    userRepo,
		Gateway:     gateway,
		Currency:    config.AppConfig.Currency,
	}
	catalogService := &catalog.DefaultCatalogService{
		RoomRepo:    roomRepo,
		CatalogRepo: catalogRepo,
		CacheClient: utils.GetCacheClient(),
	}

	guestHandler := handlers.NewGuestHandler(guestService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	orderHandler := handlers.NewOrderHandler(orderService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	storageHandler := handlers.NewStorageHandler(storageService, catalogRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Account endpoints.
		RegisterHandler:         guestHandler.RegisterHandler,
		RegisterEmployeeHandler: guestHandler.RegisterEmployeeHandler,
		LoginHandler:            guestHandler.LoginHandler,
		LogoutHandler:           guestHandler.LogoutHandler,
		ProfileHandler:          guestHandler.ProfileHandler,
		ListEmployeesHandler:    guestHandler.ListEmployeesHandler,

		// Booking endpoints.
		CreateBookingHandler:         bookingHandler.CreateBookingHandler,
		GetBookingHandler:            bookingHandler.GetBookingHandler,
		GetBookingByNumberHandler:    bookingHandler.GetBookingByNumberHandler,
		ListMyBookingsHandler:        bookingHandler.ListMyBookingsHandler,
		ListBookingsHandler:          bookingHandler.ListBookingsHandler,
		CheckInHandler:               bookingHandler.CheckInHandler,
		CheckOutHandler:              bookingHandler.CheckOutHandler,
		CancelBookingHandler:         bookingHandler.CancelBookingHandler,
		NoShowHandler:                bookingHandler.NoShowHandler,
		UpdateSpecialRequestsHandler: bookingHandler.UpdateSpecialRequestsHandler,
		StaffOverrideHandler:         bookingHandler.StaffOverrideHandler,
		AddServiceHandler:            bookingHandler.AddServiceHandler,
		AddFoodOrderHandler:          bookingHandler.AddFoodOrderHandler,
		AttachReviewHandler:          bookingHandler.AttachReviewHandler,
		CreateServiceRequestHandler:  bookingHandler.CreateServiceRequestHandler,
		UpdateServiceRequestHandler:  bookingHandler.UpdateServiceRequestHandler,
		RateServiceRequestHandler:    bookingHandler.RateServiceRequestHandler,

		// Order endpoints.
		CreatePaymentIntentHandler: orderHandler.CreatePaymentIntentHandler,
		ConfirmPaymentHandler:      orderHandler.ConfirmPaymentHandler,
		GetOrderHandler:            orderHandler.GetOrderHandler,
		ListMyOrdersHandler:        orderHandler.ListMyOrdersHandler,
		ListOrdersHandler:          orderHandler.ListOrdersHandler,
		UpdateOrderStatusHandler:   orderHandler.UpdateOrderStatusHandler,
		CancelOrderHandler:         orderHandler.CancelOrderHandler,

		// Catalog endpoints.
		ListRoomsHandler:      catalogHandler.ListRoomsHandler,
		GetRoomHandler:        catalogHandler.GetRoomHandler,
		CreateRoomHandler:     catalogHandler.CreateRoomHandler,
		UpdateRoomHandler:     catalogHandler.UpdateRoomHandler,
		DeleteRoomHandler:     catalogHandler.DeleteRoomHandler,
		SetRoomStatusHandler:  catalogHandler.SetRoomStatusHandler,
		ListMenuItemsHandler:  catalogHandler.ListMenuItemsHandler,
		CreateMenuItemHandler: catalogHandler.CreateMenuItemHandler,
		UpdateMenuItemHandler: catalogHandler.UpdateMenuItemHandler,
		DeleteMenuItemHandler: catalogHandler.DeleteMenuItemHandler,
		ListPackagesHandler:   catalogHandler.ListPackagesHandler,
		GetPackageHandler:     catalogHandler.GetPackageHandler,
		CreatePackageHandler:  catalogHandler.CreatePackageHandler,
		UpdatePackageHandler:  catalogHandler.UpdatePackageHandler,
		DeletePackageHandler:  catalogHandler.DeletePackageHandler,

		// Gallery endpoints.
		ListGalleryHandler:        storageHandler.ListGalleryHandler,
		UploadGalleryImageHandler: storageHandler.UploadGalleryImageHandler,
		DeleteGalleryImageHandler: storageHandler.DeleteGalleryImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
