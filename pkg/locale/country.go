package locale

const (
	DefaultTimezone = "UTC"
)

type Country struct {
	Code            string   // ISO 3166-1 alpha-2 country code (e.g., "IN", "US")
	Name            string   // Human-readable country name
	PhonePrefixes   []string // Valid phone number prefixes (e.g., ["+91", "91"])
	DefaultTimezone string   // IANA timezone identifier (e.g., "Asia/Kolkata")
}

// Countries covers the markets customer numbers come from. The exports are
// Indian, the US entry catches the occasional 1-prefixed stray.
var Countries = map[string]Country{
	"IN": {
		Code:            "IN",
		Name:            "India",
		PhonePrefixes:   []string{"+91", "91"},
		DefaultTimezone: "Asia/Kolkata",
	},
	"US": {
		Code:            "US",
		Name:            "United States",
		PhonePrefixes:   []string{"+1", "1"},
		DefaultTimezone: "America/New_York",
	},
}
