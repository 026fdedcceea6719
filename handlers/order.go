package handlers

import (
	"net/http"

	"grandhaven/middleware"
	"grandhaven/models"
	"grandhaven/services/order"
	"grandhaven/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes restaurant-order endpoints.
type OrderHandler struct {
	Service order.OrderService
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc order.OrderService) *OrderHandler {
	return &OrderHandler{Service: svc}
}

// CreatePaymentIntentHandler handles POST /api/orders/payment-intent.
func (h *OrderHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req struct {
		Items           []models.OrderItem  `json:"items" binding:"required"`
		Total           float64             `json:"total"`
		DeliveryType    models.DeliveryType `json:"deliveryType" binding:"required"`
		DeliveryAddress string              `json:"deliveryAddress"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	o, clientSecret, err := h.Service.CreatePaymentIntent(c.Request.Context(), order.CreateOrderRequest{
		CustomerID:      middleware.CurrentUserID(c),
		Items:           req.Items,
		ClientTotal:     req.Total,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order":        o,
		"clientSecret": clientSecret,
	})
}

// ConfirmPaymentHandler handles POST /api/orders/confirm-payment.
func (h *OrderHandler) ConfirmPaymentHandler(c *gin.Context) {
	var req struct {
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	o, err := h.Service.ConfirmPayment(c.Request.Context(), req.PaymentIntentID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// GetOrderHandler handles GET /api/orders/:id.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	o, err := h.Service.GetOrder(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if !middleware.CurrentRole(c).IsStaff() && o.CustomerID != middleware.CurrentUserID(c) {
		utils.JSONError(c, utils.ForbiddenError("order belongs to another customer"))
		return
	}
	c.JSON(http.StatusOK, o)
}

// ListMyOrdersHandler handles GET /api/orders.
func (h *OrderHandler) ListMyOrdersHandler(c *gin.Context) {
	orders, err := h.Service.ListCustomerOrders(middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListOrdersHandler handles GET /api/admin/orders?status=preparing (staff).
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	orders, err := h.Service.ListOrders(models.OrderStatus(c.Query("status")))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatusHandler handles PUT /api/admin/orders/:id/status (staff).
func (h *OrderHandler) UpdateOrderStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	o, err := h.Service.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// CancelOrderHandler handles PUT /api/orders/:id/cancel. Customers may only
// abandon their own pending or confirmed orders; staff cancel through the
// status endpoint instead.
func (h *OrderHandler) CancelOrderHandler(c *gin.Context) {
	o, err := h.Service.CancelOrder(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
