package order

import (
	"fmt"
	"time"

	"grandhaven/models"
	"grandhaven/utils"
)

// statusRank orders the fulfillment chain. Status updates may only move
// forward along it; cancellation is handled separately.
var statusRank = map[models.OrderStatus]int{
	models.OrderStatusPending:        0,
	models.OrderStatusConfirmed:      1,
	models.OrderStatusPreparing:      2,
	models.OrderStatusReady:          3,
	models.OrderStatusOutForDelivery: 4,
	models.OrderStatusDelivered:      5,
}

// ParseStatus validates a status string against the fixed accepted set.
func ParseStatus(raw string) (models.OrderStatus, error) {
	status := models.OrderStatus(raw)
	if status == models.OrderStatusCancelled {
		return status, nil
	}
	if _, ok := statusRank[status]; !ok {
		return "", utils.ValidationError(fmt.Sprintf("unknown order status %q", raw))
	}
	return status, nil
}

// UpdateStatus advances the fulfillment state. Staff may move an order
// forward along the chain or cancel a non-terminal order; backward moves are
// rejected. Reaching delivered stamps the actual delivery time.
func (s *DefaultOrderService) UpdateStatus(id string, raw string) (*models.Order, error) {
	status, err := ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	o, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o.Status.IsTerminal() {
		return nil, utils.InvalidTransitionError(
			fmt.Sprintf("order %s is %s and can no longer change", o.OrderNumber, o.Status))
	}

	if status == models.OrderStatusCancelled {
		o.Status = models.OrderStatusCancelled
	} else {
		if statusRank[status] <= statusRank[o.Status] {
			return nil, utils.InvalidTransitionError(
				fmt.Sprintf("cannot move order %s from %s to %s", o.OrderNumber, o.Status, status))
		}
		o.Status = status
		if status == models.OrderStatusDelivered {
			now := time.Now()
			o.ActualDeliveryTime = &now
		}
	}

	if err := s.Repo.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}

// CancelOrder lets the owning customer abandon an order that has not started
// preparation yet. A completed payment is flagged for refund.
func (s *DefaultOrderService) CancelOrder(id, customerID string) (*models.Order, error) {
	o, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, utils.ForbiddenError("order belongs to another customer")
	}
	if o.Status != models.OrderStatusPending && o.Status != models.OrderStatusConfirmed {
		return nil, utils.InvalidTransitionError(
			fmt.Sprintf("order %s can no longer be cancelled in state %s", o.OrderNumber, o.Status))
	}

	o.Status = models.OrderStatusCancelled
	if o.PaymentStatus == models.PaymentStatusCompleted {
		// Signal for an external refund, not a refund execution.
		o.PaymentStatus = models.PaymentStatusRefunded
	}

	if err := s.Repo.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}
