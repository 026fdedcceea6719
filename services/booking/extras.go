package booking

import (
	"fmt"
	"time"

	"grandhaven/models"
	"grandhaven/utils"

	"github.com/google/uuid"
)

// serviceRequestTransitions is the sub-entity ticket flow.
var serviceRequestTransitions = map[models.ServiceRequestStatus][]models.ServiceRequestStatus{
	models.ServiceRequestOpen:       {models.ServiceRequestAssigned, models.ServiceRequestClosed},
	models.ServiceRequestAssigned:   {models.ServiceRequestInProgress, models.ServiceRequestClosed},
	models.ServiceRequestInProgress: {models.ServiceRequestResolved, models.ServiceRequestClosed},
	models.ServiceRequestResolved:   {models.ServiceRequestClosed},
}

func canTransitionRequest(from, to models.ServiceRequestStatus) bool {
	for _, next := range serviceRequestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// activeBooking fetches the booking and rejects line-item mutations once the
// lifecycle has reached a terminal state.
func (s *DefaultBookingService) activeBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, utils.InvalidTransitionError(
			fmt.Sprintf("booking %s is %s and can no longer change", b.BookingNumber, b.Status))
	}
	return b, nil
}

// AddService appends an ancillary service line item and recomputes totals.
func (s *DefaultBookingService) AddService(id string, svc models.AdditionalService) (*models.Booking, error) {
	if svc.Name == "" {
		return nil, utils.ValidationError("service name is required")
	}
	if svc.Quantity < 1 {
		return nil, utils.ValidationError("service quantity must be at least 1")
	}
	if svc.Price < 0 {
		return nil, utils.ValidationError("service price must not be negative")
	}

	b, err := s.activeBooking(id)
	if err != nil {
		return nil, err
	}

	svc.ID = uuid.New().String()
	svc.Status = models.AdditionalServicePending
	b.AdditionalServices = append(b.AdditionalServices, svc)

	ComputeBookingTotal(b)
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// AddFoodOrder charges a food order to the booking. Item prices are looked up
// from the menu catalog, never trusted from the caller.
func (s *DefaultBookingService) AddFoodOrder(id string, items []models.FoodOrderItem) (*models.Booking, error) {
	if len(items) == 0 {
		return nil, utils.ValidationError("food order needs at least one item")
	}

	b, err := s.activeBooking(id)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Quantity < 1 {
			return nil, utils.ValidationError("food order item quantity must be at least 1")
		}
		item, err := s.CatalogRepo.GetMenuItem(items[i].MenuItemID)
		if err != nil {
			return nil, err
		}
		if !item.Available {
			return nil, utils.ValidationError(fmt.Sprintf("menu item %s is currently unavailable", item.Name))
		}
		items[i].Name = item.Name
		items[i].Price = item.Price
	}

	order := models.FoodOrder{
		ID:        uuid.New().String(),
		Items:     items,
		OrderedAt: time.Now(),
	}
	order.TotalAmount = order.Total()
	b.FoodOrders = append(b.FoodOrders, order)

	ComputeBookingTotal(b)
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// AttachReview records the post-stay review. Allowed only once the guest has
// checked out, and only once.
func (s *DefaultBookingService) AttachReview(id, guestID string, rating int, comment string) (*models.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.ValidationError("rating must be between 1 and 5")
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, utils.ForbiddenError("booking belongs to another guest")
	}
	if b.Status != models.BookingStatusCheckedOut {
		return nil, utils.InvalidTransitionError("reviews can only be attached after check-out")
	}
	if b.Review != nil {
		return nil, utils.ConflictError("booking already has a review")
	}

	b.Review = &models.Review{Rating: rating, Comment: comment, CreatedAt: time.Now()}
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// CreateServiceRequest opens an in-stay ticket on the booking.
func (s *DefaultBookingService) CreateServiceRequest(id, guestID, subject, description string) (*models.Booking, error) {
	if subject == "" {
		return nil, utils.ValidationError("service request subject is required")
	}

	b, err := s.activeBooking(id)
	if err != nil {
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, utils.ForbiddenError("booking belongs to another guest")
	}

	b.ServiceRequests = append(b.ServiceRequests, models.ServiceRequest{
		ID:          uuid.New().String(),
		Subject:     subject,
		Description: description,
		Status:      models.ServiceRequestOpen,
		CreatedAt:   time.Now(),
	})
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateServiceRequest applies staff changes to a ticket: assignment, status
// moves along the ticket flow, and resolution text. Resolving stamps the
// resolution time.
func (s *DefaultBookingService) UpdateServiceRequest(id, requestID string, update ServiceRequestUpdate) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	req := b.FindServiceRequest(requestID)
	if req == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("service request %s not found", requestID))
	}

	if update.AssignedStaff != nil {
		req.AssignedStaff = *update.AssignedStaff
		if req.Status == models.ServiceRequestOpen {
			req.Status = models.ServiceRequestAssigned
		}
	}
	if update.Status != nil && *update.Status != req.Status {
		if !canTransitionRequest(req.Status, *update.Status) {
			return nil, utils.InvalidTransitionError(
				fmt.Sprintf("cannot move service request from %s to %s", req.Status, *update.Status))
		}
		req.Status = *update.Status
		if req.Status == models.ServiceRequestResolved {
			now := time.Now()
			req.ResolvedAt = &now
		}
	}
	if update.Resolution != nil {
		req.Resolution = *update.Resolution
	}

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// RateServiceRequest lets the owning guest rate a ticket once it is resolved.
func (s *DefaultBookingService) RateServiceRequest(id, requestID, guestID string, rating int) (*models.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.ValidationError("rating must be between 1 and 5")
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, utils.ForbiddenError("booking belongs to another guest")
	}
	req := b.FindServiceRequest(requestID)
	if req == nil {
		return nil, utils.NotFoundError(fmt.Sprintf("service request %s not found", requestID))
	}
	if req.Status != models.ServiceRequestResolved && req.Status != models.ServiceRequestClosed {
		return nil, utils.InvalidTransitionError("service requests can only be rated once resolved")
	}
	if req.Rating != 0 {
		return nil, utils.ConflictError("service request already rated")
	}

	req.Rating = rating
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}
