package orderRepo

import "grandhaven/models"

// OrderRepository defines persistence for restaurant orders.
type OrderRepository interface {
	Create(order *models.Order) error
	Update(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByPaymentIntent(paymentIntentID string) (*models.Order, error)
	ListByCustomer(customerID string) ([]models.Order, error)
	List(status models.OrderStatus) ([]models.Order, error)
}
