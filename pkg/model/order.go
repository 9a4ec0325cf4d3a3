package model

// OrderRecord is one row of the order-history export. OrderValue, Latitude,
// and Longitude are parsed at load time and default to zero for blank or
// unparseable cells.
type OrderRecord struct {
	RowIndex        int     `json:"row_index"`
	Phone           string  `json:"phone"`
	CustomerName    string  `json:"customer_name"`
	OrderValue      float64 `json:"order_value"`
	OrderTime       string  `json:"order_time"`
	Restaurant      string  `json:"restaurant"`
	DeliveryAddress string  `json:"delivery_address"`
	City            string  `json:"city"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`

	// CanonicalPhone is computed with the order-context rule, which keeps
	// country prefixes and full length.
	CanonicalPhone string `json:"canonical_phone"`
}
