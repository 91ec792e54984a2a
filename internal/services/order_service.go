package services

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"boutique/internal/domain"
	"boutique/internal/repos"
)

var hundred = decimal.NewFromInt(100)

type Line struct {
	ProductID string
	Qty       int
}

type OrderService struct {
	Orders  *repos.OrderRepo
	Prods   *repos.ProductRepo
	Coupons *repos.CouponRepo
}

func NewOrderService(orders *repos.OrderRepo, prods *repos.ProductRepo, coupons *repos.CouponRepo) *OrderService {
	return &OrderService{Orders: orders, Prods: prods, Coupons: coupons}
}

// Place creates a pending order for the user with the given line items.
// paymentMethodID and couponID may be empty. Products must exist and be
// available for sale; stock is not reserved until confirmation.
func (s *OrderService) Place(userID, address, paymentMethodID, couponID string, lines []Line) (int64, error) {
	if len(lines) == 0 {
		return 0, domain.ErrEmptyOrder
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		if l.Qty < 1 {
			return 0, domain.ErrBadQuantity
		}
		p, err := s.Prods.Get(l.ProductID)
		if err != nil {
			return 0, err
		}
		if !p.Available {
			return 0, errors.New("producto no disponible: " + p.ID)
		}
		items = append(items, domain.OrderItem{ProductID: l.ProductID, Qty: l.Qty})
	}

	o := domain.Order{
		Address:         address,
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
		CouponID:        couponID,
	}
	if err := s.Orders.Create(&o, items); err != nil {
		return 0, err
	}
	return o.ID, nil
}

// Total computes the order total: the sum of cantidad × precio over the
// line items, priced from the product rows at evaluation time. If the order
// carries an active coupon the subtotal is reduced by its percentage. Only
// the coupon's activo flag gates the discount; the expiration date is
// retired separately by the coupon sweep. Pure read, no side effects.
func (s *OrderService) Total(orderID int64) (decimal.Decimal, error) {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		return decimal.Zero, err
	}

	items, err := s.Orders.Items(orderID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}

	if o.CouponID != "" {
		c, err := s.Coupons.Get(o.CouponID)
		if err != nil && err != sql.ErrNoRows {
			return decimal.Zero, err
		}
		if err == nil && c.Active {
			total = total.Sub(total.Mul(c.Percent).Div(hundred))
		}
	}
	return total, nil
}

// Confirm transitions a pending order to confirmado, stamping the
// confirmation time and decrementing stock for every line item. The whole
// confirmation is one transaction: a single failed decrement leaves the
// order status, timestamp and all stocks untouched.
func (s *OrderService) Confirm(orderID int64) error {
	return s.Orders.Confirm(orderID)
}
