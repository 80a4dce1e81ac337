package config

import "testing"

func TestParsePriceTable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]float64
	}{
		{
			name: "standard table",
			raw:  "T shirt=500,Trouser=750",
			want: map[string]float64{"T shirt": 500, "Trouser": 750},
		},
		{
			name: "whitespace around entries",
			raw:  " Coat = 1500 , Saree = 1200 ",
			want: map[string]float64{"Coat": 1500, "Saree": 1200},
		},
		{
			name: "malformed entries skipped",
			raw:  "Coat=1500,noprice,Jeans=abc,Trouser=750",
			want: map[string]float64{"Coat": 1500, "Trouser": 750},
		},
		{
			name: "empty input",
			raw:  "",
			want: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePriceTable(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parsePriceTable(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for name, price := range tt.want {
				if got[name] != price {
					t.Errorf("price for %q = %v, want %v", name, got[name], price)
				}
			}
		})
	}
}

func TestDefaultPriceTableParses(t *testing.T) {
	prices := parsePriceTable(defaultPriceTable)
	if len(prices) == 0 {
		t.Fatal("default price table parsed to nothing")
	}
	if prices["T shirt"] != 500 {
		t.Errorf("T shirt price = %v, want 500", prices["T shirt"])
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		Name:     "laundry",
		User:     "postgres",
		Password: "secret",
		SSLMode:  "disable",
		Timezone: "Asia/Colombo",
	}

	want := "host=localhost user=postgres password=secret dbname=laundry port=5432 sslmode=disable TimeZone=Asia/Colombo"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
