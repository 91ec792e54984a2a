package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "pendiente"
	StatusConfirmed OrderStatus = "confirmado"
	StatusShipped   OrderStatus = "enviado"
	StatusDelivered OrderStatus = "entregado"
	StatusCancelled OrderStatus = "cancelado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// transitions is the order lifecycle: pendiente → confirmado → enviado →
// entregado, with cancelado reachable from any pre-terminal state.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered, StatusCancelled},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID              int64       `db:"id" json:"id_pedido"`
	Status          OrderStatus `db:"estado_pedido" json:"estado_pedido"`
	Address         string      `db:"direccion" json:"direccion"`
	CreatedAt       string      `db:"fecha" json:"fecha"`
	ConfirmedAt     string      `db:"fecha_confirmacion" json:"fecha_confirmacion,omitempty"` // empty until confirmed
	UserID          string      `db:"id_usuario" json:"id_usuario"`
	PaymentMethodID string      `db:"metodo_pago_id" json:"metodo_pago_id,omitempty"`
	CouponID        string      `db:"cupon_id" json:"cupon_id,omitempty"`
}

type OrderItem struct {
	OrderID   int64  `db:"pedido_id" json:"pedido_id"`
	ProductID string `db:"producto_id" json:"producto_id"`
	Qty       int    `db:"cantidad" json:"cantidad"`
}
