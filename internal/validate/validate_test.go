package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"boutique/internal/validate"
)

func TestEmail(t *testing.T) {
	got, ok := validate.Email("  maria@boutique.test ")
	assert.True(t, ok)
	assert.Equal(t, "maria@boutique.test", got)

	for _, bad := range []string{"", "sin-arroba", "a@b", "a@b."} {
		_, ok := validate.Email(bad)
		assert.Falsef(t, ok, "email %q", bad)
	}
}

func TestPhone(t *testing.T) {
	for _, good := range []string{"5551230001", "+52 555 123 0001"} {
		_, ok := validate.Phone(good)
		assert.Truef(t, ok, "phone %q", good)
	}
	for _, bad := range []string{"", "abc", "12345"} {
		_, ok := validate.Phone(bad)
		assert.Falsef(t, ok, "phone %q", bad)
	}
}

func TestCouponCode(t *testing.T) {
	got, ok := validate.CouponCode(" verano25 ")
	assert.True(t, ok)
	assert.Equal(t, "VERANO25", got)

	_, ok = validate.CouponCode("¡hola!")
	assert.False(t, ok)
}

func TestQtyAndRating(t *testing.T) {
	assert.True(t, validate.Qty(1))
	assert.False(t, validate.Qty(0))
	assert.False(t, validate.Qty(-3))

	assert.True(t, validate.Rating(1))
	assert.True(t, validate.Rating(5))
	assert.False(t, validate.Rating(0))
	assert.False(t, validate.Rating(6))
}

func TestPercent(t *testing.T) {
	assert.True(t, validate.Percent(decimal.RequireFromString("0")))
	assert.True(t, validate.Percent(decimal.RequireFromString("10.25")))
	assert.True(t, validate.Percent(decimal.RequireFromString("100")))
	assert.False(t, validate.Percent(decimal.RequireFromString("-1")))
	assert.False(t, validate.Percent(decimal.RequireFromString("100.01")))
	assert.False(t, validate.Percent(decimal.RequireFromString("10.255")), "más de dos decimales")
}

func TestPrice(t *testing.T) {
	assert.True(t, validate.Price(decimal.RequireFromString("499.90")))
	assert.True(t, validate.Price(decimal.RequireFromString("0")))
	assert.True(t, validate.Price(decimal.RequireFromString("99999999.99")), "10 dígitos exactos")
	assert.False(t, validate.Price(decimal.RequireFromString("-0.01")))
	assert.False(t, validate.Price(decimal.RequireFromString("1.999")), "más de dos decimales")
	assert.False(t, validate.Price(decimal.RequireFromString("123456789.99")), "11 dígitos")
}
