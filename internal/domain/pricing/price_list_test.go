package pricing

import "testing"

func TestPriceOf(t *testing.T) {
	prices := New(map[string]float64{
		"T shirt": 500,
		"Trouser": 750,
	})

	tests := []struct {
		name string
		item string
		want float64
	}{
		{"known item", "T shirt", 500},
		{"unknown item", "Waistcoat", 0},
		{"case sensitive", "t shirt", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prices.PriceOf(tt.item); got != tt.want {
				t.Errorf("PriceOf(%q) = %v, want %v", tt.item, got, tt.want)
			}
		})
	}
}

func TestItemsSorted(t *testing.T) {
	prices := New(map[string]float64{
		"Trouser": 750,
		"Coat":    1500,
		"Saree":   1200,
	})

	items := prices.Items()
	want := []string{"Coat", "Saree", "Trouser"}
	if len(items) != len(want) {
		t.Fatalf("Items() = %v, want %v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("Items()[%d] = %q, want %q", i, items[i], want[i])
		}
	}
}

func TestTableIsACopy(t *testing.T) {
	source := map[string]float64{"Coat": 1500}
	prices := New(source)

	source["Coat"] = 1
	if prices.PriceOf("Coat") != 1500 {
		t.Error("constructor did not copy the source map")
	}

	prices.Table()["Coat"] = 2
	if prices.PriceOf("Coat") != 1500 {
		t.Error("Table() exposed internal state to mutation")
	}
}
