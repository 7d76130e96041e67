package entity

import (
	"regexp"
	"strings"
)

// mobilePattern accepts local (07XXXXXXXX), international (+947XXXXXXXX, 947XXXXXXXX)
// and bare (7XXXXXXXX) forms of a Sri Lankan mobile number.
var mobilePattern = regexp.MustCompile(`^(?:\+?94|0)?(7[0-9]{8})$`)

const mobileCountryCode = "94"

// NormalizeMobile converts any accepted mobile format into the canonical
// 94XXXXXXXXX form used as the customer identity key.
func NormalizeMobile(raw string) (string, bool) {
	compact := strings.Join(strings.Fields(raw), "")
	match := mobilePattern.FindStringSubmatch(compact)
	if match == nil {
		return "", false
	}

	return mobileCountryCode + match[1], true
}
