package domain

type PaymentType string

const (
	PaymentCard   PaymentType = "tarjeta"
	PaymentPayPal PaymentType = "paypal"
	PaymentCash   PaymentType = "efectivo"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentCard, PaymentPayPal, PaymentCash:
		return true
	}
	return false
}

type PaymentMethod struct {
	ID     string      `db:"id" json:"id"`
	Name   string      `db:"nombre" json:"nombre"`
	Type   PaymentType `db:"tipo" json:"tipo"`
	Active bool        `db:"activo" json:"activo"`
}
