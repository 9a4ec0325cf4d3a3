package common

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/reachronakofficial756/excelSort/internal/dataset"
)

// Fixture mobiles, chosen so the routing order is obvious: the two matched
// numbers sort ahead of the lead-only one.
const (
	FixtureMatchedFirst  = "9812345678" // page 1, Vikram Shah
	FixtureMatchedSecond = "9876543210" // page 2, Asha Rao
	FixtureLeadOnly      = "9898989898" // page 3, Meena Iyer
	FixtureOrderOnly     = "9000000001" // never routed
)

func LeadHeader() []string {
	return []string{
		dataset.LeadMobileColumn,
		dataset.LeadNameColumn,
		dataset.LeadPresentAddressColumn,
		dataset.LeadPermanentAddressColumn,
		dataset.LeadAltNumberColumn,
	}
}

func OrderHeader() []string {
	return []string{
		dataset.OrderPhoneColumn,
		dataset.OrderNameColumn,
		dataset.OrderValueColumn,
		dataset.OrderTimeColumn,
		dataset.OrderRestaurantColumn,
		dataset.OrderDeliveryAddressColumn,
		dataset.OrderCityColumn,
		dataset.OrderLatitudeColumn,
		dataset.OrderLongitudeColumn,
	}
}

// DefaultLeadRows cover the cell shapes real CRM exports contain: a
// 91-prefixed number, one with separators, a lead-only number, and a row
// with no phone at all.
func DefaultLeadRows() [][]string {
	return [][]string{
		LeadHeader(),
		{"919876543210", "Asha Rao", "12 MG Road, Bengaluru", "12 MG Road, Bengaluru", ""},
		{"98123 45678", "Vikram Shah", "7 Marine Drive, Mumbai", "", "02212345678"},
		{"9898989898", "Meena Iyer", "4 Anna Salai, Chennai", "4 Anna Salai, Chennai", ""},
		{"", "No Phone", "", "", ""},
	}
}

// DefaultOrderRows pair with DefaultLeadRows: two orders for Asha including
// a float-rendered phone cell, one order for Vikram, and one number that
// never appears in the lead table.
func DefaultOrderRows() [][]string {
	return [][]string{
		OrderHeader(),
		{"9876543210.0", "Asha R", "450.5", "2024-01-10 12:30:00", "Dosa Darshini", "12 MG Road, Bengaluru", "Bengaluru", "12.9716", "77.5946"},
		{"9876543210", "Asha R", "249.5", "2024-02-14 20:05:00", "Pizza Palace", "12 MG Road, Bengaluru", "Bengaluru", "12.9716", "77.5946"},
		{"98123 45678", "Vikram S", "120", "2024-03-01 13:00:00", "Bageecha", "7 Marine Drive, Mumbai", "Mumbai", "18.9440", "72.8238"},
		{"9000000001", "Order Only", "100", "2024-04-04 19:45:00", "Biryani House", "1 FC Road, Pune", "Pune", "18.5204", "73.8567"},
	}
}

func WriteCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create fixture %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
}

func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
}
