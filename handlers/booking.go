package handlers

import (
	"net/http"
	"time"

	"grandhaven/middleware"
	"grandhaven/models"
	"grandhaven/services/booking"
	"grandhaven/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the reservation endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ownBooking loads the booking and enforces ownership for guest actors;
// staff roles pass through.
func (h *BookingHandler) ownBooking(c *gin.Context, id string) (*models.Booking, bool) {
	b, err := h.Service.GetBooking(id)
	if err != nil {
		utils.JSONError(c, err)
		return nil, false
	}
	if !middleware.CurrentRole(c).IsStaff() && b.GuestID != middleware.CurrentUserID(c) {
		utils.JSONError(c, utils.ForbiddenError("booking belongs to another guest"))
		return nil, false
	}
	return b, true
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req struct {
		RoomID             string                     `json:"roomId" binding:"required"`
		CheckInDate        time.Time                  `json:"checkInDate" binding:"required"`
		CheckOutDate       time.Time                  `json:"checkOutDate" binding:"required"`
		Adults             int                        `json:"adults" binding:"required"`
		Children           int                        `json:"children"`
		PackageID          string                     `json:"packageId"`
		AdditionalServices []models.AdditionalService `json:"additionalServices"`
		SpecialRequests    string                     `json:"specialRequests"`
		DiscountAmount     float64                    `json:"discountAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	// Discounts are a staff-side concession; guests cannot self-apply one.
	discount := req.DiscountAmount
	if !middleware.CurrentRole(c).IsStaff() {
		discount = 0
	}

	b, err := h.Service.CreateBooking(booking.CreateBookingRequest{
		GuestID:            middleware.CurrentUserID(c),
		RoomID:             req.RoomID,
		CheckInDate:        req.CheckInDate,
		CheckOutDate:       req.CheckOutDate,
		Adults:             req.Adults,
		Children:           req.Children,
		PackageID:          req.PackageID,
		AdditionalServices: req.AdditionalServices,
		SpecialRequests:    req.SpecialRequests,
		DiscountAmount:     discount,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	if b, ok := h.ownBooking(c, c.Param("id")); ok {
		c.JSON(http.StatusOK, b)
	}
}

// GetBookingByNumberHandler handles GET /api/admin/bookings/number/:number (staff).
func (h *BookingHandler) GetBookingByNumberHandler(c *gin.Context) {
	b, err := h.Service.GetBookingByNumber(c.Param("number"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListGuestBookings(middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBookingsHandler handles GET /api/admin/bookings?status=confirmed.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(models.BookingStatus(c.Query("status")))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CheckInHandler handles PUT /api/bookings/:id/check-in (staff).
func (h *BookingHandler) CheckInHandler(c *gin.Context) {
	b, err := h.Service.CheckIn(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckOutHandler handles PUT /api/bookings/:id/check-out (staff).
func (h *BookingHandler) CheckOutHandler(c *gin.Context) {
	b, err := h.Service.CheckOut(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	if _, ok := h.ownBooking(c, c.Param("id")); !ok {
		return
	}
	b, err := h.Service.Cancel(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// NoShowHandler handles PUT /api/bookings/:id/no-show (staff).
func (h *BookingHandler) NoShowHandler(c *gin.Context) {
	b, err := h.Service.MarkNoShow(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateSpecialRequestsHandler handles PUT /api/bookings/:id/special-requests.
func (h *BookingHandler) UpdateSpecialRequestsHandler(c *gin.Context) {
	var req struct {
		SpecialRequests string `json:"specialRequests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	b, err := h.Service.UpdateSpecialRequests(c.Param("id"), middleware.CurrentUserID(c), req.SpecialRequests)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// StaffOverrideHandler handles PUT /api/admin/bookings/:id (staff escape hatch).
func (h *BookingHandler) StaffOverrideHandler(c *gin.Context) {
	var req struct {
		Status          *models.BookingStatus  `json:"status"`
		ActualCheckIn   *time.Time             `json:"actualCheckIn"`
		ActualCheckOut  *time.Time             `json:"actualCheckOut"`
		SpecialRequests *string                `json:"specialRequests"`
		Pricing         *models.BookingPricing `json:"pricing"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	b, err := h.Service.StaffOverride(c.Param("id"), booking.StaffOverrideRequest{
		Status:          req.Status,
		ActualCheckIn:   req.ActualCheckIn,
		ActualCheckOut:  req.ActualCheckOut,
		SpecialRequests: req.SpecialRequests,
		Pricing:         req.Pricing,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AddServiceHandler handles POST /api/bookings/:id/services.
func (h *BookingHandler) AddServiceHandler(c *gin.Context) {
	var req models.AdditionalService
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	if _, ok := h.ownBooking(c, c.Param("id")); !ok {
		return
	}

	b, err := h.Service.AddService(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AddFoodOrderHandler handles POST /api/bookings/:id/food-orders.
func (h *BookingHandler) AddFoodOrderHandler(c *gin.Context) {
	var req struct {
		Items []models.FoodOrderItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}
	if _, ok := h.ownBooking(c, c.Param("id")); !ok {
		return
	}

	b, err := h.Service.AddFoodOrder(c.Param("id"), req.Items)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AttachReviewHandler handles POST /api/bookings/:id/review.
func (h *BookingHandler) AttachReviewHandler(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	b, err := h.Service.AttachReview(c.Param("id"), middleware.CurrentUserID(c), req.Rating, req.Comment)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateServiceRequestHandler handles POST /api/bookings/:id/service-requests.
func (h *BookingHandler) CreateServiceRequestHandler(c *gin.Context) {
	var req struct {
		Subject     string `json:"subject" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	b, err := h.Service.CreateServiceRequest(c.Param("id"), middleware.CurrentUserID(c), req.Subject, req.Description)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateServiceRequestHandler handles PUT /api/bookings/:id/service-requests/:requestId (staff).
func (h *BookingHandler) UpdateServiceRequestHandler(c *gin.Context) {
	var req struct {
		Status        *models.ServiceRequestStatus `json:"status"`
		AssignedStaff *string                      `json:"assignedStaff"`
		Resolution    *string                      `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	b, err := h.Service.UpdateServiceRequest(c.Param("id"), c.Param("requestId"), booking.ServiceRequestUpdate{
		Status:        req.Status,
		AssignedStaff: req.AssignedStaff,
		Resolution:    req.Resolution,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RateServiceRequestHandler handles POST /api/bookings/:id/service-requests/:requestId/rating.
func (h *BookingHandler) RateServiceRequestHandler(c *gin.Context) {
	var req struct {
		Rating int `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	b, err := h.Service.RateServiceRequest(c.Param("id"), c.Param("requestId"), middleware.CurrentUserID(c), req.Rating)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
