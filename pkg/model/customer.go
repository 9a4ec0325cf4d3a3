package model

// CustomerView is everything the profile page shows for one canonical phone.
// It is derived per request from the immutable snapshot, never stored.
type CustomerView struct {
	Phone         string        `json:"phone"`
	DisplayPhone  string        `json:"display_phone"`
	Name          string        `json:"name,omitempty"`
	Leads         []LeadRecord  `json:"leads"`
	Orders        []OrderRecord `json:"orders"`
	TotalOrders   int           `json:"total_orders"`
	AvgOrderValue float64       `json:"avg_order_value"`
	PrimaryCity   string        `json:"primary_city,omitempty"`
	Active        bool          `json:"active"`
	MobileValid   bool          `json:"mobile_valid"`
	Country       string        `json:"country,omitempty"`
	TimeZone      string        `json:"time_zone,omitempty"`
}

// CustomerSummary is the list-endpoint projection of a CustomerView.
type CustomerSummary struct {
	Phone        string `json:"phone"`
	DisplayPhone string `json:"display_phone"`
	Name         string `json:"name,omitempty"`
	TotalOrders  int    `json:"total_orders"`
	Active       bool   `json:"active"`
	Page         int    `json:"page"`
}

type SearchRequest struct {
	Mobile string `json:"mobile" validate:"required,max=64"`
}

type SearchResult struct {
	Phone string `json:"phone"`
	Page  int    `json:"page"`
}

// DisplayMobile renders the customer-facing number. Exactly ten digit keys
// get the country prefix; anything else is shown as keyed.
func DisplayMobile(phone string) string {
	if len(phone) == 10 {
		return "+91" + phone
	}
	return phone
}
