package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"grandhaven/models"
	"grandhaven/utils"

	"github.com/google/uuid"
)

// newOrderNumber builds ORD-<timestamp>-<random suffix>.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

// CreatePaymentIntent validates the items against the menu catalog, computes
// the totals server-side, registers a payment intent with the gateway and
// persists the order in its pending state. It returns the order and the
// client secret the frontend completes the payment with.
func (s *DefaultOrderService) CreatePaymentIntent(ctx context.Context, req CreateOrderRequest) (*models.Order, string, error) {
	if req.CustomerID == "" {
		return nil, "", utils.ValidationError("customerId is required")
	}
	if len(req.Items) == 0 {
		return nil, "", utils.ValidationError("order needs at least one item")
	}
	switch req.DeliveryType {
	case models.DeliveryRoomService, models.DeliveryDineIn, models.DeliveryPickup:
	default:
		return nil, "", utils.ValidationError(fmt.Sprintf("unknown delivery type %q", req.DeliveryType))
	}
	if req.DeliveryType == models.DeliveryRoomService && req.DeliveryAddress == "" {
		return nil, "", utils.ValidationError("room service orders need a delivery address")
	}

	customer, err := s.UserRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, "", err
	}

	// Snapshot name and price from the catalog; caller input only chooses
	// the item and quantity.
	items := make([]models.OrderItem, len(req.Items))
	for i, in := range req.Items {
		if in.Quantity < 1 {
			return nil, "", utils.ValidationError("item quantity must be at least 1")
		}
		menuItem, err := s.CatalogRepo.GetMenuItem(in.MenuItemID)
		if err != nil {
			return nil, "", err
		}
		if !menuItem.Available {
			return nil, "", utils.ValidationError(fmt.Sprintf("menu item %s is currently unavailable", menuItem.Name))
		}
		items[i] = models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   in.Quantity,
		}
	}

	totals := ComputeOrderTotal(items, req.DeliveryType)
	if req.ClientTotal != 0 && math.Abs(totals.TotalAmount-req.ClientTotal) > TotalTolerance {
		return nil, "", utils.ValidationError(fmt.Sprintf(
			"order total mismatch: client sent %.2f, server computed %.2f", req.ClientTotal, totals.TotalAmount))
	}

	o := &models.Order{
		ID:          uuid.New().String(),
		OrderNumber: newOrderNumber(),
		CustomerID:  customer.ID,
		Customer: models.CustomerInfo{
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items:           items,
		TotalAmount:     totals.TotalAmount,
		Tax:             totals.Tax,
		DeliveryFee:     totals.DeliveryFee,
		FinalAmount:     totals.FinalAmount,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
	}
	if req.DeliveryType == models.DeliveryRoomService {
		o.Customer.RoomNumber = req.DeliveryAddress
	}

	intent, err := s.Gateway.CreateIntent(ctx, o.FinalAmount, s.Currency, map[string]string{
		"orderNumber": o.OrderNumber,
		"customerId":  o.CustomerID,
	})
	if err != nil {
		retryable := errors.Is(err, context.DeadlineExceeded)
		return nil, "", utils.UpstreamError("payment gateway did not accept the intent", err, retryable)
	}
	o.PaymentIntentID = intent.ID

	if err := s.Repo.Create(o); err != nil {
		return nil, "", err
	}
	return o, intent.ClientSecret, nil
}

// ConfirmPayment verifies the intent with the gateway and reconciles the
// order. A definitive gateway rejection marks the payment failed without
// touching the fulfillment status; a completed payment forces the order into
// confirmed regardless of its prior status.
func (s *DefaultOrderService) ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	if paymentIntentID == "" {
		return nil, utils.ValidationError("paymentIntentId is required")
	}

	o, err := s.Repo.GetByPaymentIntent(paymentIntentID)
	if err != nil {
		return nil, err
	}

	succeeded, err := s.Gateway.ConfirmIntent(ctx, paymentIntentID)
	if err != nil {
		retryable := errors.Is(err, context.DeadlineExceeded)
		return nil, utils.UpstreamError("payment gateway confirmation failed", err, retryable)
	}

	if !succeeded {
		o.PaymentStatus = models.PaymentStatusFailed
		if err := s.Repo.Update(o); err != nil {
			return nil, err
		}
		return o, nil
	}

	o.PaymentStatus = models.PaymentStatusCompleted
	o.TransactionID = paymentIntentID
	o.Status = models.OrderStatusConfirmed
	if err := s.Repo.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetOrder retrieves an order by ID.
func (s *DefaultOrderService) GetOrder(id string) (*models.Order, error) {
	return s.Repo.GetByID(id)
}

// ListCustomerOrders lists the orders owned by a customer.
func (s *DefaultOrderService) ListCustomerOrders(customerID string) ([]models.Order, error) {
	return s.Repo.ListByCustomer(customerID)
}

// ListOrders lists orders, optionally filtered by status.
func (s *DefaultOrderService) ListOrders(status models.OrderStatus) ([]models.Order, error) {
	return s.Repo.List(status)
}
