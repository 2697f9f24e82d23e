package listing

import (
	"fmt"
	"strings"
)

// FormatPhoneNumber renders exactly ten digits as (XXX) XXX-XXXX, ignoring
// any other characters. Anything else is returned unchanged.
func FormatPhoneNumber(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if len(digits) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// ResultSummary is the count line shown above the table.
func ResultSummary(n int) string {
	if n == 1 {
		return "1 advocate found"
	}
	return fmt.Sprintf("%d advocates found", n)
}

const (
	EmptyTitle = "No advocates found"
	EmptyHint  = "Try adjusting your search criteria to find the right advocate for you."
)
