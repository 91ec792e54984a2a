package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"boutique/internal/domain"
	"boutique/internal/validate"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `
  id, estado_pedido, direccion, fecha,
  COALESCE(fecha_confirmacion,'') AS fecha_confirmacion,
  id_usuario,
  COALESCE(metodo_pago_id,'') AS metodo_pago_id,
  COALESCE(cupon_id,'') AS cupon_id`

// ItemRow is a line item joined with its product, priced at evaluation time.
type ItemRow struct {
	ProductID string          `db:"producto_id"`
	Name      string          `db:"nombre"`
	Qty       int             `db:"cantidad"`
	Price     decimal.Decimal `db:"precio"`
}

func (i ItemRow) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Create inserts the order header plus its line items in one transaction.
// The order id is assigned by the database and written back into o.
func (r *OrderRepo) Create(o *domain.Order, items []domain.OrderItem) error {
	if len(items) == 0 {
		return domain.ErrEmptyOrder
	}
	for _, it := range items {
		if !validate.Qty(it.Qty) {
			return fmt.Errorf("%w: producto %s", domain.ErrBadQuantity, it.ProductID)
		}
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO pedidos(estado_pedido,direccion,id_usuario,metodo_pago_id,cupon_id)
	  VALUES('pendiente',?,?,?,?)
	`, o.Address, o.UserID, nullable(o.PaymentMethodID), nullable(o.CouponID))
	if err != nil {
		return err
	}
	o.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	o.Status = domain.StatusPending

	for _, it := range items {
		if _, err := tx.Exec(`
		  INSERT INTO items_pedido(pedido_id,producto_id,cantidad) VALUES(?,?,?)
		`, o.ID, it.ProductID, it.Qty); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *OrderRepo) Get(orderID int64) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `SELECT`+orderCols+` FROM pedidos WHERE id=?`, orderID)
	return o, err
}

// Items returns the order's line items with the current product name and
// price (not a snapshot taken at order time).
func (r *OrderRepo) Items(orderID int64) ([]ItemRow, error) {
	var out []ItemRow
	err := r.db.Select(&out, `
	  SELECT ip.producto_id, p.nombre, ip.cantidad, p.precio
	  FROM items_pedido ip
	  JOIN productos p ON p.id = ip.producto_id
	  WHERE ip.pedido_id = ?
	  ORDER BY p.nombre
	`, orderID)
	return out, err
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT`+orderCols+`
	  FROM pedidos
	  WHERE id_usuario = ?
	  ORDER BY datetime(fecha) DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT`+orderCols+`
	  FROM pedidos
	  ORDER BY datetime(fecha) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

// UpdateStatus moves the order along the lifecycle (enviado, entregado,
// cancelado). Confirmation is not accepted here: it has stock side effects
// and goes through Confirm.
func (r *OrderRepo) UpdateStatus(orderID int64, to domain.OrderStatus) error {
	if to == domain.StatusConfirmed {
		return fmt.Errorf("%w: use Confirm", domain.ErrInvalidTransition)
	}
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var cur domain.OrderStatus
	if err := tx.Get(&cur, `SELECT estado_pedido FROM pedidos WHERE id=?`, orderID); err != nil {
		return err
	}
	if !cur.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, cur, to)
	}
	if _, err := tx.Exec(`UPDATE pedidos SET estado_pedido=? WHERE id=?`, to, orderID); err != nil {
		return err
	}
	return tx.Commit()
}

// Confirm transitions a pending order to confirmado, stamps the
// confirmation time and decrements stock for every line item, all in one
// transaction. Any failed decrement rolls the whole confirmation back.
func (r *OrderRepo) Confirm(orderID int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var cur domain.OrderStatus
	if err := tx.Get(&cur, `SELECT estado_pedido FROM pedidos WHERE id=?`, orderID); err != nil {
		return err
	}
	if cur != domain.StatusPending {
		return fmt.Errorf("%w: pedido %d is %s", domain.ErrOrderNotPending, orderID, cur)
	}

	var items []domain.OrderItem
	if err := tx.Select(&items, `
	  SELECT pedido_id, producto_id, cantidad FROM items_pedido WHERE pedido_id=?
	`, orderID); err != nil {
		return err
	}
	if len(items) == 0 {
		return domain.ErrEmptyOrder
	}

	for _, it := range items {
		res, err := tx.Exec(`
		  UPDATE productos SET stock = stock - ?
		  WHERE id = ? AND stock >= ?
		`, it.Qty, it.ProductID, it.Qty)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, it.ProductID)
		}
	}

	if _, err := tx.Exec(`
	  UPDATE pedidos
	  SET estado_pedido='confirmado', fecha_confirmacion=CURRENT_TIMESTAMP
	  WHERE id=?
	`, orderID); err != nil {
		return err
	}
	return tx.Commit()
}
