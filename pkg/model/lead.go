package model

// LeadRecord is one row of the CRM export. RowIndex is the zero-based data
// row position and stays stable for the process lifetime. Text fields default
// to "" when the source cell is missing.
type LeadRecord struct {
	RowIndex         int    `json:"row_index"`
	Mobile           string `json:"mobile"`
	Name             string `json:"name"`
	PresentAddress   string `json:"present_address"`
	PermanentAddress string `json:"permanent_address"`
	AltNumber        string `json:"alt_number"`

	// CanonicalPhone is the digit-only join key computed at load time with
	// the lead-context rule. "" means the row has no usable number.
	CanonicalPhone string `json:"canonical_phone"`
}
