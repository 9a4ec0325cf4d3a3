package sanitizer

import (
	"github.com/nyaruka/phonenumbers"
)

const mobileRegion = "IN"

// MobileValid reports whether a canonical ten digit key is a real subscriber
// number rather than just ten digits. Keys of any other length never pass.
func MobileValid(mobile string) bool {
	if len(mobile) != 10 {
		return false
	}

	parsed, err := phonenumbers.Parse(mobile, mobileRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
