package model

import "time"

// DatasetStats summarizes the loaded snapshot for the stats endpoint and the
// datacheck command.
type DatasetStats struct {
	LeadRows    int       `json:"lead_rows"`
	OrderRows   int       `json:"order_rows"`
	LeadPhones  int       `json:"lead_phones"`
	OrderPhones int       `json:"order_phones"`
	Matched     int       `json:"matched"`
	LeadOnly    int       `json:"lead_only"`
	TotalPages  int       `json:"total_pages"`
	LoadedAt    time.Time `json:"loaded_at"`
	LeadSource  string    `json:"lead_source"`
	OrderSource string    `json:"order_source"`
}
