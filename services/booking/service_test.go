package booking

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"grandhaven/models"
	"grandhaven/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is a mutex-guarded in-memory BookingRepository.
type fakeBookingRepo struct {
	mu         sync.Mutex
	bookings   map[string]models.Booking
	seqs       map[string]int
	failCreate bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[string]models.Booking),
		seqs:     make(map[string]int),
	}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return utils.NotFoundError("booking not found")
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NotFoundError("booking not found")
	}
	cp := b
	return &cp, nil
}

func (r *fakeBookingRepo) GetByNumber(number string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookingNumber == number {
			cp := b
			return &cp, nil
		}
	}
	return nil, utils.NotFoundError("booking not found")
}

func (r *fakeBookingRepo) ListByGuest(guestID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) List(status models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) NextSequence(day time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := day.Format("20060102")
	r.seqs[key]++
	return r.seqs[key], nil
}

// fakeRoomRepo mirrors the conditional-update semantics of the availability
// ledger.
type fakeRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]models.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]models.Room)}
}

func (r *fakeRoomRepo) Create(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) Update(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; !ok {
		return utils.NotFoundError("room not found")
	}
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, id)
	return nil
}

func (r *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, utils.NotFoundError("room not found")
	}
	cp := room
	return &cp, nil
}

func (r *fakeRoomRepo) GetByNumber(number string) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, room := range r.rooms {
		if room.RoomNumber == number {
			cp := room
			return &cp, nil
		}
	}
	return nil, utils.NotFoundError("room not found")
}

func (r *fakeRoomRepo) List() ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *fakeRoomRepo) Reserve(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return utils.NotFoundError("room not found")
	}
	if room.Available < 1 {
		return utils.UnavailableError(fmt.Sprintf("room %s has no units left", room.RoomNumber))
	}
	room.Available--
	r.rooms[id] = room
	return nil
}

func (r *fakeRoomRepo) Release(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return utils.NotFoundError("room not found")
	}
	if room.Available < room.Total {
		room.Available++
		r.rooms[id] = room
	}
	return nil
}

func (r *fakeRoomRepo) SetStatus(id string, status models.RoomStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return utils.NotFoundError("room not found")
	}
	room.Status = status
	r.rooms[id] = room
	return nil
}

func (r *fakeRoomRepo) available(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rooms[id].Available
}

// fakeCatalogRepo serves menu items and packages from memory.
type fakeCatalogRepo struct {
	mu       sync.Mutex
	menu     map[string]models.MenuItem
	packages map[string]models.Package
	gallery  map[string]models.GalleryImage
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		menu:     make(map[string]models.MenuItem),
		packages: make(map[string]models.Package),
		gallery:  make(map[string]models.GalleryImage),
	}
}

func (r *fakeCatalogRepo) CreateMenuItem(item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menu[item.ID] = *item
	return nil
}

func (r *fakeCatalogRepo) UpdateMenuItem(item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menu[item.ID] = *item
	return nil
}

func (r *fakeCatalogRepo) DeleteMenuItem(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.menu, id)
	return nil
}

func (r *fakeCatalogRepo) GetMenuItem(id string) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.menu[id]
	if !ok {
		return nil, utils.NotFoundError("menu item not found")
	}
	cp := item
	return &cp, nil
}

func (r *fakeCatalogRepo) ListMenuItems() ([]models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.MenuItem, 0, len(r.menu))
	for _, item := range r.menu {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeCatalogRepo) CreatePackage(pkg *models.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packages[pkg.ID] = *pkg
	return nil
}

func (r *fakeCatalogRepo) UpdatePackage(pkg *models.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packages[pkg.ID] = *pkg
	return nil
}

func (r *fakeCatalogRepo) DeletePackage(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.packages, id)
	return nil
}

func (r *fakeCatalogRepo) GetPackage(id string) (*models.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pkg, ok := r.packages[id]
	if !ok {
		return nil, utils.NotFoundError("package not found")
	}
	cp := pkg
	return &cp, nil
}

func (r *fakeCatalogRepo) ListPackages() ([]models.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Package, 0, len(r.packages))
	for _, pkg := range r.packages {
		out = append(out, pkg)
	}
	return out, nil
}

func (r *fakeCatalogRepo) CreateGalleryImage(img *models.GalleryImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gallery[img.ID] = *img
	return nil
}

func (r *fakeCatalogRepo) DeleteGalleryImage(id string) (*models.GalleryImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.gallery[id]
	if !ok {
		return nil, utils.NotFoundError("gallery image not found")
	}
	delete(r.gallery, id)
	return &img, nil
}

func (r *fakeCatalogRepo) ListGalleryImages() ([]models.GalleryImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.GalleryImage, 0, len(r.gallery))
	for _, img := range r.gallery {
		out = append(out, img)
	}
	return out, nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeRoomRepo, *fakeCatalogRepo) {
	repo := newFakeBookingRepo()
	rooms := newFakeRoomRepo()
	catalog := newFakeCatalogRepo()
	svc := &DefaultBookingService{Repo: repo, RoomRepo: rooms, CatalogRepo: catalog}
	return svc, repo, rooms, catalog
}

func seedRoom(rooms *fakeRoomRepo, available, total int, price float64) models.Room {
	room := models.Room{
		ID:         "room-1",
		RoomNumber: "101",
		Price:      price,
		Total:      total,
		Available:  available,
		Status:     models.RoomStatusGood,
	}
	_ = rooms.Create(&room)
	return room
}

func stayRequest(roomID string) CreateBookingRequest {
	checkIn := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	return CreateBookingRequest{
		GuestID:      "guest-1",
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 2),
		Adults:       2,
	}
}

func TestCreateBooking(t *testing.T) {
	svc, repo, rooms, _ := newTestService()
	seedRoom(rooms, 3, 5, 2400)

	b, err := svc.CreateBooking(stayRequest("room-1"))
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, models.PaymentStatusPending, b.Payment.Status)
	assert.Equal(t, 2, b.NumberOfNights)
	assert.Equal(t, "101", b.RoomNumber)

	wantNumber := fmt.Sprintf("GH%s001", time.Now().Format("060102"))
	assert.Equal(t, wantNumber, b.BookingNumber)

	assert.InDelta(t, 4800.0, b.Pricing.RoomTotal, 1e-9)
	assert.InDelta(t, 864.0, b.Pricing.TaxAmount, 1e-9)
	assert.InDelta(t, 5664.0, b.Pricing.TotalAmount, 1e-9)

	assert.Equal(t, 2, rooms.available("room-1"))

	stored, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.BookingNumber, stored.BookingNumber)
}

func TestCreateBookingSequencePerDay(t *testing.T) {
	svc, _, rooms, _ := newTestService()
	seedRoom(rooms, 5, 5, 1000)

	first, err := svc.CreateBooking(stayRequest("room-1"))
	require.NoError(t, err)
	second, err := svc.CreateBooking(stayRequest("room-1"))
	require.NoError(t, err)

	day := time.Now().Format("060102")
	assert.Equal(t, "GH"+day+"001", first.BookingNumber)
	assert.Equal(t, "GH"+day+"002", second.BookingNumber)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, rooms, _ := newTestService()
	seedRoom(rooms, 3, 5, 2400)

	t.Run("check-out before check-in", func(t *testing.T) {
		req := stayRequest("room-1")
		req.CheckOutDate = req.CheckInDate.AddDate(0, 0, -1)
		_, err := svc.CreateBooking(req)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyValidation, apiErr.Key)
	})

	t.Run("no adults", func(t *testing.T) {
		req := stayRequest("room-1")
		req.Adults = 0
		_, err := svc.CreateBooking(req)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyValidation, apiErr.Key)
	})

	t.Run("negative discount", func(t *testing.T) {
		req := stayRequest("room-1")
		req.DiscountAmount = -10
		_, err := svc.CreateBooking(req)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyValidation, apiErr.Key)
	})

	t.Run("unknown room", func(t *testing.T) {
		req := stayRequest("missing")
		_, err := svc.CreateBooking(req)
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyNotFound, apiErr.Key)
	})
}

func TestCreateBookingNoAvailability(t *testing.T) {
	svc, _, rooms, _ := newTestService()
	seedRoom(rooms, 0, 5, 2400)

	_, err := svc.CreateBooking(stayRequest("room-1"))
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyUnavailable, apiErr.Key)
}

func TestCreateBookingConcurrentLastUnit(t *testing.T) {
	svc, _, rooms, _ := newTestService()
	seedRoom(rooms, 1, 5, 2400)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(stayRequest("room-1"))
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			var apiErr *utils.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, utils.KeyUnavailable, apiErr.Key)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one booking may win the last unit")
	assert.Equal(t, 0, rooms.available("room-1"))
}

func TestCreateBookingInsertFailureReleasesUnit(t *testing.T) {
	svc, repo, rooms, _ := newTestService()
	seedRoom(rooms, 2, 5, 2400)
	repo.failCreate = true

	_, err := svc.CreateBooking(stayRequest("room-1"))
	require.Error(t, err)
	assert.Equal(t, 2, rooms.available("room-1"), "failed insert must give the unit back")
}

func TestCreateBookingPackageSnapshot(t *testing.T) {
	svc, _, rooms, catalog := newTestService()
	seedRoom(rooms, 3, 5, 2000)

	checkIn := time.Date(2026, 12, 20, 14, 0, 0, 0, time.UTC)
	require.NoError(t, catalog.CreatePackage(&models.Package{
		ID:              "pkg-1",
		Name:            "Festive Escape",
		Price:           1000,
		DiscountPercent: 20,
		IsActive:        true,
		Seasons: []models.Season{{
			Name:       "peak",
			StartDate:  time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC),
			Multiplier: 1.5,
		}},
	}))

	req := stayRequest("room-1")
	req.CheckInDate = checkIn
	req.CheckOutDate = checkIn.AddDate(0, 0, 2)
	req.PackageID = "pkg-1"

	b, err := svc.CreateBooking(req)
	require.NoError(t, err)
	require.NotNil(t, b.Package)
	// 1000 after 20% discount is 800, scaled by the 1.5 peak multiplier.
	assert.InDelta(t, 1200.0, b.Package.Price, 1e-9)
	assert.InDelta(t, 1200.0, b.Pricing.PackageAmount, 1e-9)
}

func TestCreateBookingPackageBlackout(t *testing.T) {
	svc, _, rooms, catalog := newTestService()
	seedRoom(rooms, 3, 5, 2000)

	checkIn := time.Date(2026, 12, 24, 14, 0, 0, 0, time.UTC)
	require.NoError(t, catalog.CreatePackage(&models.Package{
		ID:            "pkg-1",
		Name:          "Festive Escape",
		Price:         1000,
		IsActive:      true,
		BlackoutDates: []time.Time{time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)},
	}))

	req := stayRequest("room-1")
	req.CheckInDate = checkIn
	req.CheckOutDate = checkIn.AddDate(0, 0, 2)
	req.PackageID = "pkg-1"

	_, err := svc.CreateBooking(req)
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.KeyValidation, apiErr.Key)
}

func TestUpdateSpecialRequests(t *testing.T) {
	svc, _, rooms, _ := newTestService()
	seedRoom(rooms, 3, 5, 2400)

	b, err := svc.CreateBooking(stayRequest("room-1"))
	require.NoError(t, err)

	t.Run("owner can edit while confirmed", func(t *testing.T) {
		updated, err := svc.UpdateSpecialRequests(b.ID, "guest-1", "late arrival")
		require.NoError(t, err)
		assert.Equal(t, "late arrival", updated.SpecialRequests)
	})

	t.Run("other guest is rejected", func(t *testing.T) {
		_, err := svc.UpdateSpecialRequests(b.ID, "guest-2", "nope")
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyForbidden, apiErr.Key)
	})

	t.Run("locked after check-in", func(t *testing.T) {
		_, err := svc.CheckIn(b.ID)
		require.NoError(t, err)
		_, err = svc.UpdateSpecialRequests(b.ID, "guest-1", "too late")
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyInvalidTransition, apiErr.Key)
	})
}

func TestStaffOverride(t *testing.T) {
	svc, _, rooms, _ := newTestService()
	seedRoom(rooms, 3, 5, 2400)

	b, err := svc.CreateBooking(stayRequest("room-1"))
	require.NoError(t, err)

	t.Run("direct status set bypasses lifecycle gating", func(t *testing.T) {
		status := models.BookingStatusCheckedOut
		updated, err := svc.StaffOverride(b.ID, StaffOverrideRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCheckedOut, updated.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		status := models.BookingStatus("vanished")
		_, err := svc.StaffOverride(b.ID, StaffOverrideRequest{Status: &status})
		var apiErr *utils.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, utils.KeyValidation, apiErr.Key)
	})
}
