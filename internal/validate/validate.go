package validate

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9 -]{7,15}$`)
	reCode  = regexp.MustCompile(`^[A-Z0-9_-]{1,50}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// CouponCode validates an uppercase coupon code.
func CouponCode(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, reCode.MatchString(s)
}

func Qty(n int) bool { return n >= 1 }

func Rating(n int) bool { return n >= 1 && n <= 5 }

// Percent validates a discount percentage: 0–100 with at most two decimal
// places (5 total digits).
func Percent(d decimal.Decimal) bool {
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return false
	}
	return d.Exponent() >= -2
}

// Price validates a monetary amount: non-negative, at most two decimal
// places and 10 total digits.
func Price(d decimal.Decimal) bool {
	if d.IsNegative() || d.Exponent() < -2 {
		return false
	}
	return d.NumDigits() <= 10
}
