package service

import (
	"context"
	"strconv"
	"time"

	"github.com/washlane/laundry-api/internal/domain/entity"
	"github.com/washlane/laundry-api/internal/domain/repository"
	"github.com/washlane/laundry-api/pkg/apperror"
)

// OrderService handles order ledger operations
type OrderService struct {
	orderRepo             repository.OrderRepository
	clearPaymentOnPending bool
	now                   func() time.Time
}

// NewOrderService creates a new order service. clearPaymentOnPending
// controls whether reverting a delivered order to pending also clears
// the recorded customer payment.
func NewOrderService(orderRepo repository.OrderRepository, clearPaymentOnPending bool) *OrderService {
	return &OrderService{
		orderRepo:             orderRepo,
		clearPaymentOnPending: clearPaymentOnPending,
		now:                   time.Now,
	}
}

// Add assigns the next sequential numeric id and inserts the order.
// Ids of checkout-originated entries are not numeric and do not take
// part in the sequence.
func (s *OrderService) Add(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	existing, err := s.orderRepo.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, err
	}

	maxID := 0
	for i := range existing {
		if n, err := strconv.Atoi(existing[i].ID); err == nil && n > maxID {
			maxID = n
		}
	}
	order.ID = strconv.Itoa(maxID + 1)

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Append inserts an order that already carries its id, used by the
// delivery checkout flow.
func (s *OrderService) Append(ctx context.Context, order *entity.Order) error {
	return s.orderRepo.Insert(ctx, order)
}

// Get fetches one order by id
func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// Update overwrites an order's content fields. The id and the
// delivery-owned fields (isDelivered, actualDeliveryDate,
// customerPayment) are preserved; those belong to the checkout flow.
func (s *OrderService) Update(ctx context.Context, id string, data *entity.Order) (*entity.Order, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := data.Clone()
	updated.ID = existing.ID
	updated.IsDelivered = existing.IsDelivered
	updated.ActualDeliveryDate = existing.ActualDeliveryDate
	updated.CustomerPayment = existing.CustomerPayment

	if err := s.orderRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeliveryEditInput is a full-row edit from the delivered orders table.
type DeliveryEditInput struct {
	BillNo             string
	CustomerName       string
	TeleNo             string
	Address            string
	ActualDeliveryDate string
	CustomerPayment    string
}

// UpdateDelivery applies a validated edit to a delivered order's
// identifying and payment fields. Bill number, customer name, delivery
// date and a numeric payment are all required.
func (s *OrderService) UpdateDelivery(ctx context.Context, id string, input *DeliveryEditInput) (*entity.Order, error) {
	payment, parseErr := strconv.ParseFloat(input.CustomerPayment, 64)
	if input.BillNo == "" || input.CustomerName == "" || input.ActualDeliveryDate == "" || parseErr != nil {
		return nil, apperror.NewValidationError("Bill No, Customer Name, Delivery Date, and Customer Payment are required and must be valid.")
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.BillNo = input.BillNo
	existing.CustomerName = input.CustomerName
	existing.TeleNo = input.TeleNo
	existing.Address = input.Address
	existing.ActualDeliveryDate = &input.ActualDeliveryDate
	existing.CustomerPayment = &payment

	if err := s.orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Remove deletes an order permanently
func (s *OrderService) Remove(ctx context.Context, id string) error {
	existing, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// SetDeliveredStatus sets the delivered flag. Marking delivered stamps
// today's date when no delivery date is recorded yet; reverting to
// pending clears the date, and clears the payment only when configured
// to do so.
func (s *OrderService) SetDeliveredStatus(ctx context.Context, id string, delivered bool) (*entity.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	order.IsDelivered = delivered
	if delivered {
		if order.ActualDeliveryDate == nil || *order.ActualDeliveryDate == "" {
			date := s.now().Format("2006-01-02")
			order.ActualDeliveryDate = &date
		}
	} else {
		order.ActualDeliveryDate = nil
		if s.clearPaymentOnPending {
			order.CustomerPayment = nil
		}
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns the ledger's current contents, optionally filtered by
// delivered status. Each call reflects the ledger at call time.
func (s *OrderService) List(ctx context.Context, delivered *bool) ([]entity.Order, error) {
	return s.orderRepo.List(ctx, repository.OrderFilter{Delivered: delivered})
}
