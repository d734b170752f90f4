package validators

import (
	"regexp"
	"strings"
)

// Digits with optional leading +, allowing the separators customers
// actually type. Intentionally loose; real number verification is an
// out-of-band concern.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{1,19}$`)

func IsPhoneValid(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
