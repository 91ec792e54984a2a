package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon is a percentage discount applied to an order subtotal.
// ExpiresAt is a plain date ("2006-01-02"); empty means no expiration.
type Coupon struct {
	ID        string          `db:"id" json:"id"`
	Code      string          `db:"codigo" json:"codigo"`
	Percent   decimal.Decimal `db:"descuento_porcentaje" json:"descuento_porcentaje"`
	ExpiresAt string          `db:"fecha_expiracion" json:"fecha_expiracion,omitempty"`
	Active    bool            `db:"activo" json:"activo"`
}

// Expired reports whether the coupon's expiration date has passed.
// Note that order totals are gated on the Active flag alone; expired
// coupons keep discounting until a sweep deactivates them.
func (c Coupon) Expired(now time.Time) bool {
	if c.ExpiresAt == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", c.ExpiresAt)
	if err != nil {
		return false
	}
	return d.Before(now.Truncate(24 * time.Hour))
}
