package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/washlane/laundry-api/internal/domain/entity"
	domainRepo "github.com/washlane/laundry-api/internal/domain/repository"
)

func TestLedgerSeedsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	ledger, err := NewOrderLedger(path, true)
	if err != nil {
		t.Fatalf("NewOrderLedger failed: %v", err)
	}

	orders, err := ledger.List(context.Background(), domainRepo.OrderFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orders) != 4 {
		t.Fatalf("seeded ledger has %d orders, want 4", len(orders))
	}

	byBill := make(map[string]entity.Order)
	for _, order := range orders {
		byBill[order.BillNo] = order
	}
	alice, ok := byBill["B001"]
	if !ok {
		t.Fatal("seed missing bill B001")
	}
	if alice.CustomerName != "Alice Smith" || alice.Total != 1750 || alice.Balance != 1250 {
		t.Errorf("B001 seed data wrong: %+v", alice)
	}
	bob := byBill["B002"]
	if !bob.IsDelivered || bob.ActualDeliveryDate == nil || *bob.ActualDeliveryDate != "2024-03-14" {
		t.Errorf("B002 seed delivery data wrong: %+v", bob)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("seeded ledger file not written: %v", err)
	}
}

func TestLedgerSkipsSeedWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	ledger, err := NewOrderLedger(path, false)
	if err != nil {
		t.Fatalf("NewOrderLedger failed: %v", err)
	}

	orders, _ := ledger.List(context.Background(), domainRepo.OrderFilter{})
	if len(orders) != 0 {
		t.Errorf("unseeded ledger has %d orders, want 0", len(orders))
	}
}

func TestLedgerPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	ctx := context.Background()

	ledger, err := NewOrderLedger(path, false)
	if err != nil {
		t.Fatalf("NewOrderLedger failed: %v", err)
	}

	payment := 1200.0
	date := "2024-06-01"
	order := &entity.Order{
		ID:                 "10",
		BillNo:             "B050",
		CustomerName:       "Eve Adams",
		Items:              []entity.LineItem{{Name: "Coat", Quantity: 1, Price: 1500}},
		Total:              1500,
		Balance:            1500,
		IsDelivered:        true,
		ActualDeliveryDate: &date,
		CustomerPayment:    &payment,
	}
	if err := ledger.Insert(ctx, order); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	reopened, err := NewOrderLedger(path, false)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	loaded, err := reopened.GetByID(ctx, "10")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("order lost across reopen")
	}
	if loaded.CustomerName != "Eve Adams" {
		t.Errorf("customerName = %q, want %q", loaded.CustomerName, "Eve Adams")
	}
	if loaded.CustomerPayment == nil || *loaded.CustomerPayment != 1200 {
		t.Errorf("customerPayment = %v, want 1200", loaded.CustomerPayment)
	}
	if loaded.ActualDeliveryDate == nil || *loaded.ActualDeliveryDate != "2024-06-01" {
		t.Errorf("actualDeliveryDate = %v, want 2024-06-01", loaded.ActualDeliveryDate)
	}
}

func TestLedgerUpdateAndDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	ctx := context.Background()

	ledger, err := NewOrderLedger(path, false)
	if err != nil {
		t.Fatalf("NewOrderLedger failed: %v", err)
	}

	if err := ledger.Insert(ctx, &entity.Order{ID: "1", BillNo: "B060"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Duplicate ids are rejected
	if err := ledger.Insert(ctx, &entity.Order{ID: "1"}); err == nil {
		t.Error("duplicate insert succeeded")
	}

	if err := ledger.Update(ctx, &entity.Order{ID: "1", BillNo: "B061"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	loaded, _ := ledger.GetByID(ctx, "1")
	if loaded.BillNo != "B061" {
		t.Errorf("billNo = %q, want B061", loaded.BillNo)
	}

	if err := ledger.Update(ctx, &entity.Order{ID: "99"}); err == nil {
		t.Error("update of missing order succeeded")
	}

	if err := ledger.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := ledger.Delete(ctx, "1"); err == nil {
		t.Error("second delete succeeded")
	}

	missing, err := ledger.GetByID(ctx, "1")
	if err != nil || missing != nil {
		t.Errorf("GetByID after delete = (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestLedgerListReturnsCopies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	ctx := context.Background()

	ledger, _ := NewOrderLedger(path, false)
	ledger.Insert(ctx, &entity.Order{
		ID:    "1",
		Items: []entity.LineItem{{Name: "T shirt", Quantity: 1, Price: 500}},
	})

	first, _ := ledger.List(ctx, domainRepo.OrderFilter{})
	first[0].Items[0].Quantity = 99
	first[0].BillNo = "tampered"

	second, _ := ledger.List(ctx, domainRepo.OrderFilter{})
	if second[0].Items[0].Quantity != 1 || second[0].BillNo != "" {
		t.Error("List exposed internal state to mutation")
	}
}
