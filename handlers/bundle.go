package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Account endpoints
	RegisterHandler         gin.HandlerFunc
	RegisterEmployeeHandler gin.HandlerFunc
	LoginHandler            gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc
	ProfileHandler          gin.HandlerFunc
	ListEmployeesHandler    gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler         gin.HandlerFunc
	GetBookingHandler            gin.HandlerFunc
	GetBookingByNumberHandler    gin.HandlerFunc
	ListMyBookingsHandler        gin.HandlerFunc
	ListBookingsHandler          gin.HandlerFunc
	CheckInHandler               gin.HandlerFunc
	CheckOutHandler              gin.HandlerFunc
	CancelBookingHandler         gin.HandlerFunc
	NoShowHandler                gin.HandlerFunc
	UpdateSpecialRequestsHandler gin.HandlerFunc
	StaffOverrideHandler         gin.HandlerFunc
	AddServiceHandler            gin.HandlerFunc
	AddFoodOrderHandler          gin.HandlerFunc
	AttachReviewHandler          gin.HandlerFunc
	CreateServiceRequestHandler  gin.HandlerFunc
	UpdateServiceRequestHandler  gin.HandlerFunc
	RateServiceRequestHandler    gin.HandlerFunc

	// Order endpoints
	CreatePaymentIntentHandler gin.HandlerFunc
	ConfirmPaymentHandler      gin.HandlerFunc
	GetOrderHandler            gin.HandlerFunc
	ListMyOrdersHandler        gin.HandlerFunc
	ListOrdersHandler          gin.HandlerFunc
	UpdateOrderStatusHandler   gin.HandlerFunc
	CancelOrderHandler         gin.HandlerFunc

	// Catalog endpoints
	ListRoomsHandler      gin.HandlerFunc
	GetRoomHandler        gin.HandlerFunc
	CreateRoomHandler     gin.HandlerFunc
	UpdateRoomHandler     gin.HandlerFunc
	DeleteRoomHandler     gin.HandlerFunc
	SetRoomStatusHandler  gin.HandlerFunc
	ListMenuItemsHandler  gin.HandlerFunc
	CreateMenuItemHandler gin.HandlerFunc
	UpdateMenuItemHandler gin.HandlerFunc
	DeleteMenuItemHandler gin.HandlerFunc
	ListPackagesHandler   gin.HandlerFunc
	GetPackageHandler     gin.HandlerFunc
	CreatePackageHandler  gin.HandlerFunc
	UpdatePackageHandler  gin.HandlerFunc
	DeletePackageHandler  gin.HandlerFunc

	// Gallery endpoints
	ListGalleryHandler        gin.HandlerFunc
	UploadGalleryImageHandler gin.HandlerFunc
	DeleteGalleryImageHandler gin.HandlerFunc
}
