package order

import (
	"context"
	"testing"

	"grandhaven/models"
	"grandhaven/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, svc *DefaultOrderService) *models.Order {
	t.Helper()
	o, _, err := svc.CreatePaymentIntent(context.Background(), roomServiceRequest())
	require.NoError(t, err)
	return o
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "preparing", "ready", "out_for_delivery", "delivered", "cancelled"} {
		status, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatus(raw), status)
	}

	_, err := ParseStatus("teleported")
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyValidation, apiErr.Key)
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	svc, _, _ := newTestOrderService()
	o := pendingOrder(t, svc)

	updated, err := svc.UpdateStatus(o.ID, "preparing")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)

	_, err = svc.UpdateStatus(o.ID, "confirmed")
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyInvalidTransition, apiErr.Key, "backward moves are rejected")

	_, err = svc.UpdateStatus(o.ID, "preparing")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyInvalidTransition, apiErr.Key, "same-state moves are rejected")
}

func TestUpdateStatusDeliveredStampsTime(t *testing.T) {
	svc, _, _ := newTestOrderService()
	o := pendingOrder(t, svc)

	updated, err := svc.UpdateStatus(o.ID, "delivered")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
	require.NotNil(t, updated.ActualDeliveryTime)

	_, err = svc.UpdateStatus(o.ID, "cancelled")
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyInvalidTransition, apiErr.Key, "delivered is terminal")
}

func TestUpdateStatusStaffCancel(t *testing.T) {
	svc, _, _ := newTestOrderService()
	o := pendingOrder(t, svc)

	_, err := svc.UpdateStatus(o.ID, "preparing")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(o.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, updated.Status)
}

func TestCancelOrder(t *testing.T) {
	t.Run("owner cancels a pending order", func(t *testing.T) {
		svc, _, _ := newTestOrderService()
		o := pendingOrder(t, svc)

		updated, err := svc.CancelOrder(o.ID, "cust-1")
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, updated.Status)
	})

	t.Run("another customer is rejected", func(t *testing.T) {
		svc, _, _ := newTestOrderService()
		o := pendingOrder(t, svc)

		_, err := svc.CancelOrder(o.ID, "cust-2")
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyForbidden, apiErr.Key)
	})

	t.Run("too late once preparing", func(t *testing.T) {
		svc, _, _ := newTestOrderService()
		o := pendingOrder(t, svc)
		_, err := svc.UpdateStatus(o.ID, "preparing")
		require.NoError(t, err)

		_, err = svc.CancelOrder(o.ID, "cust-1")
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyInvalidTransition, apiErr.Key)
	})

	t.Run("completed payment flips to refunded", func(t *testing.T) {
		svc, _, _ := newTestOrderService()
		o := pendingOrder(t, svc)
		confirmed, err := svc.ConfirmPayment(context.Background(), o.PaymentIntentID)
		require.NoError(t, err)
		require.Equal(t, models.PaymentStatusCompleted, confirmed.PaymentStatus)

		updated, err := svc.CancelOrder(o.ID, "cust-1")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusRefunded, updated.PaymentStatus)
	})
}
