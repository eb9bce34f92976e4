package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	multiDashRegex = regexp.MustCompile(`-+`)
	nonDigitRegex  = regexp.MustCompile(`[^0-9]`)
)

func Slugify(input string) string {
	slug := strings.ToLower(strings.TrimSpace(input))
	slug = nonAlnumRegex.ReplaceAllString(slug, "-")
	slug = multiDashRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NormalizePhone keeps digits only and rewrites local numbers (leading 0) to
// the 880 country prefix used by the courier and messaging providers.
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "880"):
		return digits
	case strings.HasPrefix(digits, "0"):
		return "88" + digits
	default:
		return digits
	}
}

// LocalPhone returns the 11 digit local form (01XXXXXXXXX) of a phone number.
func LocalPhone(phone string) string {
	n := NormalizePhone(phone)
	if strings.HasPrefix(n, "880") {
		return "0" + n[3:]
	}
	return n
}

// Paging normalises page/limit to page>=1 and 1<=limit<=100 (default 20).
func Paging(page, limit int) (int, int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}
	return page, limit, (page - 1) * limit
}
