package service

import (
	"regexp"
	"strings"
)

// vinPattern covers the full VIN alphabet. I, O and Q are excluded because
// they are never issued, to avoid confusion with 1 and 0.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// ValidateVIN reports whether vin is a structurally valid 17-character VIN.
// The check digit is not verified; vPIC accepts VINs with bad check digits
// and real-world plates are frequently transcribed without one.
func ValidateVIN(vin string) bool {
	if len(vin) != 17 {
		return false
	}
	if strings.ContainsAny(vin, "IOQ") {
		return false
	}
	return vinPattern.MatchString(vin)
}
