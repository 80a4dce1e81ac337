package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/washlane/laundry-api/internal/domain/entity"
	"github.com/washlane/laundry-api/internal/domain/enum"
	"github.com/washlane/laundry-api/pkg/apperror"
)

// CheckoutService drives the delivery checkout flow: a bill number is
// entered, a placeholder candidate is prepared, and confirming it
// appends a delivered entry to the ledger. One checkout runs at a time.
type CheckoutService struct {
	mu           sync.Mutex
	state        enum.CheckoutState
	candidate    *entity.Order
	orderService *OrderService
	now          func() time.Time
}

// CheckoutStatus is a read snapshot of the flow.
type CheckoutStatus struct {
	State     enum.CheckoutState `json:"state"`
	Candidate *entity.Order      `json:"candidate,omitempty"`
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(orderService *OrderService) *CheckoutService {
	return &CheckoutService{
		state:        enum.CheckoutIdle,
		orderService: orderService,
		now:          time.Now,
	}
}

// Prepare starts a checkout for the given bill number. The candidate is
// always a fresh placeholder; it is not looked up in the ledger. A
// checkout already in progress is replaced.
func (s *CheckoutService) Prepare(billNo string) (*entity.Order, error) {
	trimmed := strings.TrimSpace(billNo)
	if trimmed == "" {
		return nil, apperror.NewValidationError("Please enter a Bill Number.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	candidate := &entity.Order{
		ID:           "temp-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + randomSuffix(),
		BillNo:       trimmed,
		CustomerName: "Unknown Customer",
		TeleNo:       "N/A",
		Address:      "N/A",
		OrderDate:    now.Format("1/2/2006"),
		Service:      "Not Specified",
		Delivery:     "Standard",
		Type:         "Mixed",
		Items: []entity.LineItem{
			{Name: "Generic Item", Quantity: 1, Price: 0},
		},
	}

	s.candidate = candidate
	s.state = enum.CheckoutPrepared

	out := candidate.Clone()
	return &out, nil
}

// Confirm finalizes the prepared checkout: the candidate becomes a
// delivered ledger entry with the given delivery date and payment. On
// validation failure the flow stays in Prepared.
func (s *CheckoutService) Confirm(ctx context.Context, actualDeliveryDate, customerPayment string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != enum.CheckoutPrepared || s.candidate == nil {
		return nil, apperror.NewValidationError("No bill number entered to process.")
	}
	if actualDeliveryDate == "" {
		return nil, apperror.NewValidationError("Please select an actual delivery date.")
	}
	payment, err := strconv.ParseFloat(strings.TrimSpace(customerPayment), 64)
	if err != nil {
		return nil, apperror.NewValidationError("Please enter a valid customer payment.")
	}

	delivered := s.candidate.Clone()
	delivered.ID = strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + randomSuffix()
	delivered.IsDelivered = true
	delivered.ActualDeliveryDate = &actualDeliveryDate
	delivered.CustomerPayment = &payment

	if err := s.orderService.Append(ctx, &delivered); err != nil {
		return nil, err
	}

	s.candidate = &delivered
	s.state = enum.CheckoutDelivered

	out := delivered.Clone()
	return &out, nil
}

// Cancel abandons the current checkout and returns the flow to Idle.
func (s *CheckoutService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidate = nil
	s.state = enum.CheckoutIdle
}

// Status returns the current flow state and candidate.
func (s *CheckoutService) Status() CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := CheckoutStatus{State: s.state}
	if s.candidate != nil {
		candidate := s.candidate.Clone()
		status.Candidate = &candidate
	}
	return status
}

// ClearIfCandidate resets the flow when its candidate is the given
// order. Called when that order is removed from the ledger.
func (s *CheckoutService) ClearIfCandidate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.candidate != nil && s.candidate.ID == id {
		s.candidate = nil
		s.state = enum.CheckoutIdle
	}
}

// randomSuffix returns a short random id fragment.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}
