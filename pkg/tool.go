package pkg

import "strings"

// HasAnyPrefix check s starts with one of prefixes
func HasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
