package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/washlane/laundry-api/internal/domain/entity"
	"github.com/washlane/laundry-api/internal/domain/pricing"
	"github.com/washlane/laundry-api/pkg/apperror"
)

// DraftService manages the single in-flight order draft being assembled
// at the counter. Totals are recomputed from the live price table on
// every read; captured line prices are attached only at submission.
type DraftService struct {
	mu             sync.Mutex
	draft          entity.OrderDraft
	editingID      string
	prices         *pricing.PriceList
	orderService   *OrderService
	requiredFields []string
	now            func() time.Time
}

// DraftView is a read snapshot of the draft with computed totals.
type DraftView struct {
	Draft     entity.OrderDraft `json:"draft"`
	EditingID string            `json:"editingId,omitempty"`
	Total     float64           `json:"total"`
	Balance   float64           `json:"balance"`
}

// NewDraftService creates a new draft service. requiredFields lists the
// draft fields that must be non-empty at submission; an empty list means
// submission is never blocked on field content.
func NewDraftService(prices *pricing.PriceList, orderService *OrderService, requiredFields []string) *DraftService {
	return &DraftService{
		prices:         prices,
		orderService:   orderService,
		requiredFields: requiredFields,
		now:            time.Now,
	}
}

// SetField updates one scalar draft field. No validation happens at this
// stage; an unparseable advance amount is stored as 0.
func (s *DraftService) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "billNo":
		s.draft.BillNo = value
	case "customerName":
		s.draft.CustomerName = value
	case "teleNo":
		s.draft.TeleNo = value
	case "address":
		s.draft.Address = value
	case "orderDate":
		s.draft.OrderDate = value
	case "service":
		s.draft.Service = value
	case "delivery":
		s.draft.Delivery = value
	case "type":
		s.draft.Type = value
	case "advance":
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			parsed = 0
		}
		s.draft.Advance = parsed
	default:
		return apperror.NewValidationError("Unknown draft field: " + name)
	}
	return nil
}

// ToggleItem adds the item with quantity 1 when absent and removes it
// entirely when present. Quantity edits made between toggles are lost
// on removal.
func (s *DraftService) ToggleItem(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.draft.Items {
		if s.draft.Items[i].Name == name {
			s.draft.Items = append(s.draft.Items[:i], s.draft.Items[i+1:]...)
			return
		}
	}
	s.draft.Items = append(s.draft.Items, entity.LineItem{Name: name, Quantity: 1})
}

// SetQuantity sets the quantity of a selected item. Non-numeric or
// non-positive input silently coerces to 1.
func (s *DraftService) SetQuantity(name, rawValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity, err := strconv.Atoi(strings.TrimSpace(rawValue))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	for i := range s.draft.Items {
		if s.draft.Items[i].Name == name {
			s.draft.Items[i].Quantity = quantity
			return nil
		}
	}
	return apperror.NewValidationError("Item is not selected: " + name)
}

// Snapshot returns the current draft with totals computed from the live
// price table.
func (s *DraftService) Snapshot() DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *DraftService) viewLocked() DraftView {
	total := 0.0
	for _, item := range s.draft.Items {
		total += s.prices.PriceOf(item.Name) * float64(item.Quantity)
	}
	return DraftView{
		Draft:     s.draft.Clone(),
		EditingID: s.editingID,
		Total:     total,
		Balance:   total - s.draft.Advance,
	}
}

// Submit turns the draft into a ledger entry, capturing current unit
// prices on every line. When the draft was loaded from an existing order
// the entry is updated in place; otherwise a new order is appended. The
// draft is cleared on success.
func (s *DraftService) Submit(ctx context.Context) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var missing []apperror.FieldError
	for _, field := range s.requiredFields {
		if s.fieldValueLocked(field) == "" {
			missing = append(missing, apperror.FieldError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}
	if len(missing) > 0 {
		return nil, apperror.NewFieldValidationError(missing)
	}

	view := s.viewLocked()

	orderDate := s.draft.OrderDate
	if orderDate == "" {
		orderDate = s.now().Format("1/2/2006")
	}

	items := make([]entity.LineItem, len(s.draft.Items))
	for i, item := range s.draft.Items {
		items[i] = entity.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    s.prices.PriceOf(item.Name),
		}
	}

	order := &entity.Order{
		BillNo:       s.draft.BillNo,
		CustomerName: s.draft.CustomerName,
		TeleNo:       s.draft.TeleNo,
		Address:      s.draft.Address,
		OrderDate:    orderDate,
		Service:      s.draft.Service,
		Delivery:     s.draft.Delivery,
		Type:         s.draft.Type,
		Items:        items,
		Advance:      s.draft.Advance,
		Total:        view.Total,
		Balance:      view.Balance,
	}

	var (
		saved *entity.Order
		err   error
	)
	if s.editingID != "" {
		saved, err = s.orderService.Update(ctx, s.editingID, order)
	} else {
		saved, err = s.orderService.Add(ctx, order)
	}
	if err != nil {
		return nil, err
	}

	s.resetLocked()
	return saved, nil
}

func (s *DraftService) fieldValueLocked(name string) string {
	switch name {
	case "billNo":
		return s.draft.BillNo
	case "customerName":
		return s.draft.CustomerName
	case "teleNo":
		return s.draft.TeleNo
	case "address":
		return s.draft.Address
	case "orderDate":
		return s.draft.OrderDate
	case "service":
		return s.draft.Service
	case "delivery":
		return s.draft.Delivery
	case "type":
		return s.draft.Type
	}
	return "-"
}

// LoadOrder populates the draft from an existing ledger entry for
// editing. Captured prices are not carried over; totals are recomputed
// from the live table.
func (s *DraftService) LoadOrder(ctx context.Context, id string) (DraftView, error) {
	order, err := s.orderService.Get(ctx, id)
	if err != nil {
		return DraftView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.LineItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = entity.LineItem{Name: item.Name, Quantity: item.Quantity}
	}

	s.draft = entity.OrderDraft{
		BillNo:       order.BillNo,
		CustomerName: order.CustomerName,
		TeleNo:       order.TeleNo,
		Address:      order.Address,
		OrderDate:    order.OrderDate,
		Service:      order.Service,
		Delivery:     order.Delivery,
		Type:         order.Type,
		Items:        items,
		Advance:      order.Advance,
	}
	s.editingID = id

	return s.viewLocked(), nil
}

// Reset clears all draft fields and drops any edit linkage.
func (s *DraftService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *DraftService) resetLocked() {
	s.draft = entity.OrderDraft{}
	s.editingID = ""
}

// ClearIfEditing resets the draft when it is editing the given order.
// Called when that order is removed from the ledger.
func (s *DraftService) ClearIfEditing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID == id {
		s.resetLocked()
	}
}
