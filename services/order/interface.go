package order

import (
	"context"

	catalogRepo "grandhaven/database/repository/catalog"
	orderRepo "grandhaven/database/repository/order"
	userRepo "grandhaven/database/repository/user"
	"grandhaven/models"
	"grandhaven/services/payment"
)

// CreateOrderRequest is the validated input for a new restaurant order.
// ClientTotal, when non-zero, is the amount the client expects to pay and is
// checked against the server-side computation.
type CreateOrderRequest struct {
	CustomerID      string
	Items           []models.OrderItem
	ClientTotal     float64
	DeliveryType    models.DeliveryType
	DeliveryAddress string
}

// OrderService drives restaurant orders and their payment reconciliation.
type OrderService interface {
	CreatePaymentIntent(ctx context.Context, req CreateOrderRequest) (*models.Order, string, error)
	ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Order, error)
	UpdateStatus(id string, status string) (*models.Order, error)
	CancelOrder(id, customerID string) (*models.Order, error)

	GetOrder(id string) (*models.Order, error)
	ListCustomerOrders(customerID string) ([]models.Order, error)
	ListOrders(status models.OrderStatus) ([]models.Order, error)
}

// DefaultOrderService implements OrderService.
type DefaultOrderService struct {
	Repo        orderRepo.OrderRepository
	CatalogRepo catalogRepo.CatalogRepository
	UserRepo    userRepo.UserRepository
	Gateway     payment.Gateway
	Currency    string
}
