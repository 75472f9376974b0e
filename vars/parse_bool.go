package vars

import "strings"

// ParseBool recognizes true/false words, ignoring case.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y":
		return true, true
	case "false", "f", "no", "n":
		return false, true
	}
	return false, false
}
