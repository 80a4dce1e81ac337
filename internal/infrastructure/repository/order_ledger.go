package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/washlane/laundry-api/internal/domain/entity"
	domainRepo "github.com/washlane/laundry-api/internal/domain/repository"
)

// fileOrderLedger stores the whole order ledger as a single JSON document
// on disk. Every mutation rewrites the full document; reads are served
// from the in-memory copy loaded at startup.
type fileOrderLedger struct {
	mu     sync.Mutex
	path   string
	orders []entity.Order
}

// NewOrderLedger opens the ledger document at path, creating it with the
// demo fixture when it does not exist and seed is true.
func NewOrderLedger(path string, seed bool) (domainRepo.OrderRepository, error) {
	ledger := &fileOrderLedger{path: path}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &ledger.orders); err != nil {
			return nil, fmt.Errorf("failed to parse ledger file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if seed {
			ledger.orders = seedOrders()
		}
		if err := ledger.persist(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to read ledger file %s: %w", path, err)
	}

	return ledger, nil
}

func (l *fileOrderLedger) Insert(ctx context.Context, order *entity.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == order.ID {
			return fmt.Errorf("order %s already exists", order.ID)
		}
	}
	l.orders = append(l.orders, order.Clone())
	return l.persist()
}

func (l *fileOrderLedger) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			order := l.orders[i].Clone()
			return &order, nil
		}
	}
	return nil, nil
}

func (l *fileOrderLedger) Update(ctx context.Context, order *entity.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == order.ID {
			l.orders[i] = order.Clone()
			return l.persist()
		}
	}
	return fmt.Errorf("order %s not found", order.ID)
}

func (l *fileOrderLedger) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return l.persist()
		}
	}
	return fmt.Errorf("order %s not found", id)
}

func (l *fileOrderLedger) List(ctx context.Context, filter domainRepo.OrderFilter) ([]entity.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.Order, 0, len(l.orders))
	for i := range l.orders {
		if filter.Delivered != nil && l.orders[i].IsDelivered != *filter.Delivered {
			continue
		}
		out = append(out, l.orders[i].Clone())
	}
	return out, nil
}

// persist rewrites the whole document atomically. Callers hold l.mu.
func (l *fileOrderLedger) persist() error {
	data, err := json.MarshalIndent(l.orders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "orders-*.json")
	if err != nil {
		return fmt.Errorf("failed to create ledger temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close ledger temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// seedOrders returns the demo ledger written on first run.
func seedOrders() []entity.Order {
	return []entity.Order{
		{
			ID:           "1",
			BillNo:       "B001",
			CustomerName: "Alice Smith",
			TeleNo:       "0712345678",
			Address:      "123 Main St, City",
			OrderDate:    "03/10/2024",
			Service:      "Wash & Dry",
			Delivery:     "After 03 Days",
			Type:         "Gent",
			Items: []entity.LineItem{
				{Name: "T shirt", Quantity: 2, Price: 500},
				{Name: "Trouser", Quantity: 1, Price: 750},
			},
			Advance:     500,
			Total:       1750,
			Balance:     1250,
			IsDelivered: false,
		},
		{
			ID:           "2",
			BillNo:       "B002",
			CustomerName: "Bob Johnson",
			TeleNo:       "0778765432",
			Address:      "45 Oak Ave, Town",
			OrderDate:    "03/09/2024",
			Service:      "Dry Cleaning",
			Delivery:     "One Day",
			Type:         "Ladies",
			Items: []entity.LineItem{
				{Name: "Saree", Quantity: 1, Price: 1200},
				{Name: "Blouse", Quantity: 1, Price: 300},
			},
			Advance:            800,
			Total:              1500,
			Balance:            700,
			IsDelivered:        true,
			ActualDeliveryDate: strPtr("2024-03-14"),
			CustomerPayment:    floatPtr(1500),
		},
		{
			ID:           "3",
			BillNo:       "B003",
			CustomerName: "Charlie Brown",
			TeleNo:       "0761122334",
			Address:      "789 Pine Ln, Village",
			OrderDate:    "03/08/2024",
			Service:      "Pressing",
			Delivery:     "Normal",
			Type:         "Gent",
			Items: []entity.LineItem{
				{Name: "Coat", Quantity: 1, Price: 1500},
			},
			Advance:            1000,
			Total:              1500,
			Balance:            500,
			IsDelivered:        true,
			ActualDeliveryDate: strPtr("2024-03-12"),
			CustomerPayment:    floatPtr(1500),
		},
		{
			ID:           "4",
			BillNo:       "B004",
			CustomerName: "Diana Prince",
			TeleNo:       "0755443322",
			Address:      "10 Lasso Rd, Amazonia",
			OrderDate:    "03/11/2024",
			Service:      "Ironing",
			Delivery:     "Express",
			Type:         "Ladies",
			Items: []entity.LineItem{
				{Name: "Frock", Quantity: 3, Price: 600},
			},
			Advance:     0,
			Total:       1800,
			Balance:     1800,
			IsDelivered: false,
		},
	}
}
