package order

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"grandhaven/models"
	"grandhaven/services/payment"
	"grandhaven/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo is a mutex-guarded in-memory OrderRepository.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]models.Order)}
}

func (r *fakeOrderRepo) Create(o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) Update(o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return utils.NotFoundError("order not found")
	}
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, utils.NotFoundError("order not found")
	}
	cp := o
	return &cp, nil
}

func (r *fakeOrderRepo) GetByPaymentIntent(intentID string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.PaymentIntentID == intentID {
			cp := o
			return &cp, nil
		}
	}
	return nil, utils.NotFoundError("order not found")
}

func (r *fakeOrderRepo) ListByCustomer(customerID string) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(status models.OrderStatus) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

// fakeUserRepo serves customer snapshots from memory.
type fakeUserRepo struct {
	users map[string]models.User
}

func (r *fakeUserRepo) Create(u *models.User) error { r.users[u.ID] = *u; return nil }

func (r *fakeUserRepo) Update(u *models.User) error { r.users[u.ID] = *u; return nil }

func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, utils.NotFoundError("user not found")
	}
	cp := u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, utils.NotFoundError("user not found")
}

func (r *fakeUserRepo) ListByRole(role models.Role) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeMenuRepo implements the catalog surface the order service touches.
type fakeMenuRepo struct {
	menu map[string]models.MenuItem
}

func (r *fakeMenuRepo) CreateMenuItem(item *models.MenuItem) error { r.menu[item.ID] = *item; return nil }

func (r *fakeMenuRepo) UpdateMenuItem(item *models.MenuItem) error { r.menu[item.ID] = *item; return nil }

func (r *fakeMenuRepo) DeleteMenuItem(id string) error { delete(r.menu, id); return nil }

func (r *fakeMenuRepo) GetMenuItem(id string) (*models.MenuItem, error) {
	item, ok := r.menu[id]
	if !ok {
		return nil, utils.NotFoundError("menu item not found")
	}
	cp := item
	return &cp, nil
}

func (r *fakeMenuRepo) ListMenuItems() ([]models.MenuItem, error) { return nil, nil }

func (r *fakeMenuRepo) CreatePackage(pkg *models.Package) error { return nil }

func (r *fakeMenuRepo) UpdatePackage(pkg *models.Package) error { return nil }

func (r *fakeMenuRepo) DeletePackage(id string) error { return nil }

func (r *fakeMenuRepo) GetPackage(id string) (*models.Package, error) {
	return nil, utils.NotFoundError("package not found")
}

func (r *fakeMenuRepo) ListPackages() ([]models.Package, error) { return nil, nil }

func (r *fakeMenuRepo) CreateGalleryImage(img *models.GalleryImage) error { return nil }

func (r *fakeMenuRepo) DeleteGalleryImage(id string) (*models.GalleryImage, error) {
	return nil, utils.NotFoundError("gallery image not found")
}

func (r *fakeMenuRepo) ListGalleryImages() ([]models.GalleryImage, error) { return nil, nil }

// fakeGateway records the amount passed in and returns scripted results.
type fakeGateway struct {
	createErr  error
	confirmErr error
	succeeded  bool
	lastAmount float64
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*payment.Intent, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.lastAmount = amount
	return &payment.Intent{ID: "pi_test_1", ClientSecret: "pi_test_1_secret"}, nil
}

func (g *fakeGateway) ConfirmIntent(ctx context.Context, intentID string) (bool, error) {
	if g.confirmErr != nil {
		return false, g.confirmErr
	}
	return g.succeeded, nil
}

func newTestOrderService() (*DefaultOrderService, *fakeOrderRepo, *fakeGateway) {
	repo := newFakeOrderRepo()
	gateway := &fakeGateway{succeeded: true}
	users := &fakeUserRepo{users: map[string]models.User{
		"cust-1": {ID: "cust-1", Name: "Asha Rao", Email: "asha@example.com", Phone: "9811", Role: models.RoleGuest},
	}}
	menu := &fakeMenuRepo{menu: map[string]models.MenuItem{
		"item-1": {ID: "item-1", Name: "Masala Dosa", Price: 100, Available: true},
		"item-2": {ID: "item-2", Name: "Filter Coffee", Price: 40, Available: false},
	}}
	svc := &DefaultOrderService{
		Repo:        repo,
		CatalogRepo: menu,
		UserRepo:    users,
		Gateway:     gateway,
		Currency:    "inr",
	}
	return svc, repo, gateway
}

func roomServiceRequest() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerID:      "cust-1",
		Items:           []models.OrderItem{{MenuItemID: "item-1", Quantity: 2}},
		DeliveryType:    models.DeliveryRoomService,
		DeliveryAddress: "204",
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	svc, repo, gateway := newTestOrderService()

	o, secret, err := svc.CreatePaymentIntent(context.Background(), roomServiceRequest())
	require.NoError(t, err)

	assert.Equal(t, "pi_test_1_secret", secret)
	assert.Equal(t, "pi_test_1", o.PaymentIntentID)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, models.PaymentStatusPending, o.PaymentStatus)
	assert.Equal(t, "Asha Rao", o.Customer.Name)
	assert.Equal(t, "204", o.Customer.RoomNumber)

	// 2 × 100 plus 10% tax plus the flat room-service fee.
	assert.InDelta(t, 200.0, o.TotalAmount, 1e-9)
	assert.InDelta(t, 20.0, o.Tax, 1e-9)
	assert.InDelta(t, 50.0, o.DeliveryFee, 1e-9)
	assert.InDelta(t, 270.0, o.FinalAmount, 1e-9)
	assert.InDelta(t, 270.0, gateway.lastAmount, 1e-9, "gateway must be charged the final amount")

	stored, err := repo.GetByPaymentIntent("pi_test_1")
	require.NoError(t, err)
	assert.Equal(t, o.ID, stored.ID)
}

func TestCreatePaymentIntentSnapshotsCatalogPrice(t *testing.T) {
	svc, _, _ := newTestOrderService()

	req := roomServiceRequest()
	// Caller-supplied name and price must be ignored.
	req.Items = []models.OrderItem{{MenuItemID: "item-1", Name: "bogus", Price: 1, Quantity: 2}}

	o, _, err := svc.CreatePaymentIntent(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Masala Dosa", o.Items[0].Name)
	assert.InDelta(t, 100.0, o.Items[0].Price, 1e-9)
	assert.InDelta(t, 200.0, o.Items[0].Subtotal, 1e-9)
}

func TestCreatePaymentIntentValidation(t *testing.T) {
	svc, _, _ := newTestOrderService()

	cases := map[string]func(*CreateOrderRequest){
		"no items":            func(r *CreateOrderRequest) { r.Items = nil },
		"zero quantity":       func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 },
		"bad delivery type":   func(r *CreateOrderRequest) { r.DeliveryType = "drone" },
		"no room number":      func(r *CreateOrderRequest) { r.DeliveryAddress = "" },
		"unavailable item":    func(r *CreateOrderRequest) { r.Items[0].MenuItemID = "item-2" },
		"client total drifts": func(r *CreateOrderRequest) { r.ClientTotal = 250 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := roomServiceRequest()
			mutate(&req)
			_, _, err := svc.CreatePaymentIntent(context.Background(), req)
			var apiErr *utils.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, utils.KeyValidation, apiErr.Key)
		})
	}
}

func TestCreatePaymentIntentAcceptsMatchingClientTotal(t *testing.T) {
	svc, _, _ := newTestOrderService()

	req := roomServiceRequest()
	req.ClientTotal = 270.005

	_, _, err := svc.CreatePaymentIntent(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreatePaymentIntentGatewayTimeout(t *testing.T) {
	svc, repo, gateway := newTestOrderService()
	gateway.createErr = fmt.Errorf("create intent: %w", context.DeadlineExceeded)

	_, _, err := svc.CreatePaymentIntent(context.Background(), roomServiceRequest())
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyUpstreamFailure, apiErr.Key)
	assert.True(t, apiErr.Retryable, "timeouts are retryable")
	assert.Equal(t, 0, repo.count(), "no order may persist without an intent")
}

func TestCreatePaymentIntentGatewayRejection(t *testing.T) {
	svc, _, gateway := newTestOrderService()
	gateway.createErr = fmt.Errorf("card declined")

	_, _, err := svc.CreatePaymentIntent(context.Background(), roomServiceRequest())
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyUpstreamFailure, apiErr.Key)
	assert.False(t, apiErr.Retryable)
}

func TestConfirmPaymentSuccess(t *testing.T) {
	svc, _, _ := newTestOrderService()

	created, _, err := svc.CreatePaymentIntent(context.Background(), roomServiceRequest())
	require.NoError(t, err)

	o, err := svc.ConfirmPayment(context.Background(), created.PaymentIntentID)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusCompleted, o.PaymentStatus)
	assert.Equal(t, models.OrderStatusConfirmed, o.Status, "completed payment forces confirmed")
	assert.Equal(t, created.PaymentIntentID, o.TransactionID)
}

func TestConfirmPaymentDefinitiveFailure(t *testing.T) {
	svc, repo, gateway := newTestOrderService()

	created, _, err := svc.CreatePaymentIntent(context.Background(), roomServiceRequest())
	require.NoError(t, err)
	gateway.succeeded = false

	o, err := svc.ConfirmPayment(context.Background(), created.PaymentIntentID)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusFailed, o.PaymentStatus)
	assert.Equal(t, models.OrderStatusPending, o.Status, "fulfillment status is untouched")

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, stored.PaymentStatus)
}

func TestConfirmPaymentGatewayTimeout(t *testing.T) {
	svc, repo, gateway := newTestOrderService()

	created, _, err := svc.CreatePaymentIntent(context.Background(), roomServiceRequest())
	require.NoError(t, err)
	gateway.confirmErr = fmt.Errorf("confirm intent: %w", context.DeadlineExceeded)

	_, err = svc.ConfirmPayment(context.Background(), created.PaymentIntentID)
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyUpstreamFailure, apiErr.Key)
	assert.True(t, apiErr.Retryable)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, stored.PaymentStatus, "undecided payments stay pending")
}

func TestConfirmPaymentUnknownIntent(t *testing.T) {
	svc, _, _ := newTestOrderService()

	_, err := svc.ConfirmPayment(context.Background(), "pi_missing")
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyNotFound, apiErr.Key)
}
