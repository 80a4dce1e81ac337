package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/washlane/laundry-api/internal/domain/pricing"
	"github.com/washlane/laundry-api/internal/infrastructure/repository"
)

func newTestPrices() *pricing.PriceList {
	return pricing.New(map[string]float64{
		"Shirt":   500,
		"Trouser": 750,
		"Saree":   1200,
	})
}

func newTestServices(t *testing.T, requiredFields []string) (*DraftService, *OrderService) {
	t.Helper()

	ledger, err := repository.NewOrderLedger(filepath.Join(t.TempDir(), "orders.json"), false)
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}
	orderService := NewOrderService(ledger, false)
	draftService := NewDraftService(newTestPrices(), orderService, requiredFields)
	return draftService, orderService
}

func TestToggleItemPairing(t *testing.T) {
	draft, _ := newTestServices(t, nil)

	draft.ToggleItem("Shirt")
	if !draft.Snapshot().Draft.HasItem("Shirt") {
		t.Fatal("expected Shirt to be selected after first toggle")
	}

	draft.ToggleItem("Shirt")
	if draft.Snapshot().Draft.HasItem("Shirt") {
		t.Fatal("expected Shirt to be removed after second toggle")
	}

	// Quantity edits between toggles are lost on removal
	draft.ToggleItem("Shirt")
	if err := draft.SetQuantity("Shirt", "5"); err != nil {
		t.Fatalf("SetQuantity failed: %v", err)
	}
	draft.ToggleItem("Shirt")
	draft.ToggleItem("Shirt")

	view := draft.Snapshot()
	if got := view.Draft.Items[0].Quantity; got != 1 {
		t.Errorf("quantity after re-toggle = %d, want 1", got)
	}
}

func TestSetQuantityCoercion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"valid", "4", 4},
		{"negative", "-3", 1},
		{"zero", "0", 1},
		{"non numeric", "abc", 1},
		{"empty", "", 1},
		{"padded", " 7 ", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, _ := newTestServices(t, nil)
			draft.ToggleItem("Shirt")

			if err := draft.SetQuantity("Shirt", tt.input); err != nil {
				t.Fatalf("SetQuantity(%q) failed: %v", tt.input, err)
			}
			if got := draft.Snapshot().Draft.Items[0].Quantity; got != tt.want {
				t.Errorf("SetQuantity(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetQuantityUnselectedItem(t *testing.T) {
	draft, _ := newTestServices(t, nil)

	if err := draft.SetQuantity("Shirt", "2"); err == nil {
		t.Fatal("expected error setting quantity of unselected item")
	}
}

func TestComputeTotals(t *testing.T) {
	draft, _ := newTestServices(t, nil)

	draft.ToggleItem("Shirt")
	draft.SetQuantity("Shirt", "2")
	draft.ToggleItem("Trouser")
	draft.SetField("advance", "500")

	view := draft.Snapshot()
	if view.Total != 1750 {
		t.Errorf("total = %v, want 1750", view.Total)
	}
	if view.Balance != 1250 {
		t.Errorf("balance = %v, want 1250", view.Balance)
	}

	// Advance affects balance only
	draft.SetField("advance", "2000")
	view = draft.Snapshot()
	if view.Total != 1750 {
		t.Errorf("total after advance change = %v, want 1750", view.Total)
	}
	if view.Balance != -250 {
		t.Errorf("balance = %v, want -250", view.Balance)
	}

	// Unknown items price at zero
	draft.ToggleItem("Mystery Garment")
	if got := draft.Snapshot().Total; got != 1750 {
		t.Errorf("total with unpriced item = %v, want 1750", got)
	}
}

func TestSetFieldAdvanceParseFailure(t *testing.T) {
	draft, _ := newTestServices(t, nil)

	draft.SetField("advance", "750")
	draft.SetField("advance", "not-a-number")

	if got := draft.Snapshot().Draft.Advance; got != 0 {
		t.Errorf("advance after bad input = %v, want 0", got)
	}
}

func TestSetFieldUnknownField(t *testing.T) {
	draft, _ := newTestServices(t, nil)

	if err := draft.SetField("isDelivered", "true"); err == nil {
		t.Fatal("expected error for unknown draft field")
	}
}

func TestSubmitCapturesPricesAndClearsDraft(t *testing.T) {
	draft, orders := newTestServices(t, nil)
	draft.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	draft.SetField("billNo", "B010")
	draft.SetField("customerName", "Alice Smith")
	draft.ToggleItem("Shirt")
	draft.SetQuantity("Shirt", "2")
	draft.ToggleItem("Trouser")
	draft.SetField("advance", "500")

	order, err := draft.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if order.ID != "1" {
		t.Errorf("first order id = %q, want %q", order.ID, "1")
	}
	if order.Total != 1750 || order.Balance != 1250 {
		t.Errorf("totals = %v/%v, want 1750/1250", order.Total, order.Balance)
	}
	if order.OrderDate != "3/10/2024" {
		t.Errorf("orderDate = %q, want %q", order.OrderDate, "3/10/2024")
	}
	for _, item := range order.Items {
		if item.Price == 0 {
			t.Errorf("item %s submitted without a captured price", item.Name)
		}
	}

	view := draft.Snapshot()
	if len(view.Draft.Items) != 0 || view.Draft.BillNo != "" {
		t.Error("draft not cleared after submit")
	}

	listed, err := orders.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("ledger has %d orders, want 1", len(listed))
	}
}

func TestSubmitRequiredFields(t *testing.T) {
	draft, _ := newTestServices(t, []string{"billNo", "customerName"})

	draft.SetField("customerName", "Bob Johnson")

	if _, err := draft.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error for missing billNo")
	}

	draft.SetField("billNo", "B011")
	if _, err := draft.Submit(context.Background()); err != nil {
		t.Fatalf("Submit with all required fields failed: %v", err)
	}
}

func TestLoadOrderAndResubmit(t *testing.T) {
	draft, orders := newTestServices(t, nil)
	ctx := context.Background()

	draft.SetField("billNo", "B012")
	draft.ToggleItem("Saree")
	saved, err := draft.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	view, err := draft.LoadOrder(ctx, saved.ID)
	if err != nil {
		t.Fatalf("LoadOrder failed: %v", err)
	}
	if view.EditingID != saved.ID {
		t.Errorf("editing id = %q, want %q", view.EditingID, saved.ID)
	}

	draft.SetField("customerName", "Changed Name")
	updated, err := draft.Submit(ctx)
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("resubmit created id %q, want in-place update of %q", updated.ID, saved.ID)
	}

	listed, _ := orders.List(ctx, nil)
	if len(listed) != 1 {
		t.Fatalf("ledger has %d orders after edit, want 1", len(listed))
	}
	if listed[0].CustomerName != "Changed Name" {
		t.Errorf("customerName = %q, want %q", listed[0].CustomerName, "Changed Name")
	}
}

func TestResetClearsEditLinkage(t *testing.T) {
	draft, _ := newTestServices(t, nil)
	ctx := context.Background()

	draft.SetField("billNo", "B013")
	saved, err := draft.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := draft.LoadOrder(ctx, saved.ID); err != nil {
		t.Fatalf("LoadOrder failed: %v", err)
	}

	draft.Reset()

	view := draft.Snapshot()
	if view.EditingID != "" {
		t.Error("editing id not cleared by reset")
	}
	if view.Draft.BillNo != "" {
		t.Error("fields not cleared by reset")
	}
}

func TestClearIfEditing(t *testing.T) {
	draft, _ := newTestServices(t, nil)
	ctx := context.Background()

	draft.SetField("billNo", "B014")
	saved, _ := draft.Submit(ctx)
	draft.LoadOrder(ctx, saved.ID)

	draft.ClearIfEditing("other-id")
	if draft.Snapshot().EditingID != saved.ID {
		t.Error("unrelated id cleared the edit linkage")
	}

	draft.ClearIfEditing(saved.ID)
	if draft.Snapshot().EditingID != "" {
		t.Error("edit linkage not cleared for matching id")
	}
}
