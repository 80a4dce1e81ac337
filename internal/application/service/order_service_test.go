package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/washlane/laundry-api/internal/domain/entity"
	"github.com/washlane/laundry-api/internal/infrastructure/repository"
	"github.com/washlane/laundry-api/pkg/apperror"
)

func newTestOrderService(t *testing.T, clearPaymentOnPending bool) *OrderService {
	t.Helper()

	ledger, err := repository.NewOrderLedger(filepath.Join(t.TempDir(), "orders.json"), false)
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}
	return NewOrderService(ledger, clearPaymentOnPending)
}

func TestAddAssignsUniqueSequentialIDs(t *testing.T) {
	svc := newTestOrderService(t, false)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		order, err := svc.Add(ctx, &entity.Order{BillNo: "B001"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if seen[order.ID] {
			t.Fatalf("duplicate id %q", order.ID)
		}
		seen[order.ID] = true
	}
	if !seen["1"] || !seen["5"] {
		t.Errorf("expected sequential ids 1..5, got %v", seen)
	}

	// Non-numeric checkout ids do not disturb the sequence
	if err := svc.Append(ctx, &entity.Order{ID: "1717000000000-abc1234", BillNo: "B002"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	order, err := svc.Add(ctx, &entity.Order{BillNo: "B003"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if order.ID != "6" {
		t.Errorf("next id after append = %q, want %q", order.ID, "6")
	}
}

func TestRemoveTwiceFailsWithNotFound(t *testing.T) {
	svc := newTestOrderService(t, false)
	ctx := context.Background()

	order, err := svc.Add(ctx, &entity.Order{BillNo: "B005"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Remove(ctx, order.ID); err != nil {
		t.Fatalf("first Remove failed: %v", err)
	}

	err = svc.Remove(ctx, order.ID)
	if !apperror.IsNotFound(err) {
		t.Errorf("second Remove error = %v, want NotFound", err)
	}
}

func TestUpdatePreservesDeliveryOwnedFields(t *testing.T) {
	svc := newTestOrderService(t, false)
	ctx := context.Background()

	order, err := svc.Add(ctx, &entity.Order{BillNo: "B006", CustomerName: "Alice Smith"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, err := svc.SetDeliveredStatus(ctx, order.ID, true); err != nil {
		t.Fatalf("SetDeliveredStatus failed: %v", err)
	}

	updated, err := svc.Update(ctx, order.ID, &entity.Order{BillNo: "B006", CustomerName: "Alice S."})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.CustomerName != "Alice S." {
		t.Errorf("customerName = %q, want %q", updated.CustomerName, "Alice S.")
	}
	if !updated.IsDelivered {
		t.Error("content edit cleared the delivered flag")
	}
	if updated.ActualDeliveryDate == nil {
		t.Error("content edit cleared the delivery date")
	}
	if updated.ID != order.ID {
		t.Errorf("id changed on update: %q -> %q", order.ID, updated.ID)
	}
}

func TestUpdateMissingOrder(t *testing.T) {
	svc := newTestOrderService(t, false)

	_, err := svc.Update(context.Background(), "999", &entity.Order{})
	if !apperror.IsNotFound(err) {
		t.Errorf("Update error = %v, want NotFound", err)
	}
}

func TestSetDeliveredStatus(t *testing.T) {
	svc := newTestOrderService(t, false)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	payment := 1500.0
	order, err := svc.Add(ctx, &entity.Order{BillNo: "B007", CustomerPayment: &payment})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	delivered, err := svc.SetDeliveredStatus(ctx, order.ID, true)
	if err != nil {
		t.Fatalf("SetDeliveredStatus failed: %v", err)
	}
	if !delivered.IsDelivered {
		t.Error("order not marked delivered")
	}
	if delivered.ActualDeliveryDate == nil || *delivered.ActualDeliveryDate != "2024-05-01" {
		t.Errorf("actualDeliveryDate = %v, want 2024-05-01", delivered.ActualDeliveryDate)
	}

	pending, err := svc.SetDeliveredStatus(ctx, order.ID, false)
	if err != nil {
		t.Fatalf("SetDeliveredStatus failed: %v", err)
	}
	if pending.ActualDeliveryDate != nil {
		t.Error("reverting to pending did not clear the delivery date")
	}
	if pending.CustomerPayment == nil {
		t.Error("payment cleared despite preserve policy")
	}
}

func TestSetDeliveredStatusClearPaymentPolicy(t *testing.T) {
	svc := newTestOrderService(t, true)
	ctx := context.Background()

	payment := 900.0
	order, err := svc.Add(ctx, &entity.Order{BillNo: "B008", CustomerPayment: &payment})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	svc.SetDeliveredStatus(ctx, order.ID, true)
	pending, err := svc.SetDeliveredStatus(ctx, order.ID, false)
	if err != nil {
		t.Fatalf("SetDeliveredStatus failed: %v", err)
	}
	if pending.CustomerPayment != nil {
		t.Error("payment not cleared under clear-on-pending policy")
	}
}

func TestListFiltersByDeliveredStatus(t *testing.T) {
	svc := newTestOrderService(t, false)
	ctx := context.Background()

	a, _ := svc.Add(ctx, &entity.Order{BillNo: "B009"})
	svc.Add(ctx, &entity.Order{BillNo: "B010"})
	svc.SetDeliveredStatus(ctx, a.ID, true)

	all, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered list = %d orders, want 2", len(all))
	}

	deliveredOnly := true
	delivered, _ := svc.List(ctx, &deliveredOnly)
	if len(delivered) != 1 || delivered[0].ID != a.ID {
		t.Errorf("delivered filter returned %d orders, want just %s", len(delivered), a.ID)
	}

	pendingOnly := false
	pending, _ := svc.List(ctx, &pendingOnly)
	if len(pending) != 1 || pending[0].ID == a.ID {
		t.Errorf("pending filter wrong: %v", pending)
	}
}

func TestUpdateDeliveryValidation(t *testing.T) {
	svc := newTestOrderService(t, false)
	ctx := context.Background()

	order, _ := svc.Add(ctx, &entity.Order{BillNo: "B011", CustomerName: "Charlie Brown"})

	tests := []struct {
		name  string
		input DeliveryEditInput
	}{
		{"missing bill no", DeliveryEditInput{CustomerName: "X", ActualDeliveryDate: "2024-05-01", CustomerPayment: "100"}},
		{"missing customer", DeliveryEditInput{BillNo: "B011", ActualDeliveryDate: "2024-05-01", CustomerPayment: "100"}},
		{"missing date", DeliveryEditInput{BillNo: "B011", CustomerName: "X", CustomerPayment: "100"}},
		{"bad payment", DeliveryEditInput{BillNo: "B011", CustomerName: "X", ActualDeliveryDate: "2024-05-01", CustomerPayment: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.UpdateDelivery(ctx, order.ID, &tt.input); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	updated, err := svc.UpdateDelivery(ctx, order.ID, &DeliveryEditInput{
		BillNo:             "B011",
		CustomerName:       "Charlie B.",
		ActualDeliveryDate: "2024-05-02",
		CustomerPayment:    "1500",
	})
	if err != nil {
		t.Fatalf("UpdateDelivery failed: %v", err)
	}
	if updated.CustomerPayment == nil || *updated.CustomerPayment != 1500 {
		t.Errorf("payment = %v, want 1500", updated.CustomerPayment)
	}
	if updated.ActualDeliveryDate == nil || *updated.ActualDeliveryDate != "2024-05-02" {
		t.Errorf("date = %v, want 2024-05-02", updated.ActualDeliveryDate)
	}
}
