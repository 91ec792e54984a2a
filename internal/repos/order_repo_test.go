package repos_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"boutique/internal/domain"
	"boutique/internal/repos"
)

func TestOrderRepo_CreateAssignsIDAndDefaults(t *testing.T) {
	db := memdb(t)
	orders := repos.NewOrderRepo(db)
	u := mustUser(t, db, "u-o", "o@boutique.test")
	p := mustProduct(t, db, "p-o", "10.00", 5)

	o := domain.Order{UserID: u.ID, Address: "Av. Central 5"}
	if err := orders.Create(&o, []domain.OrderItem{{ProductID: p.ID, Qty: 2}}); err != nil {
		t.Fatal(err)
	}
	if o.ID == 0 {
		t.Fatal("order id should be assigned")
	}

	got, err := orders.Get(o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("want pendiente, got %s", got.Status)
	}
	if got.CreatedAt == "" {
		t.Fatal("fecha should be set at creation")
	}
	if got.ConfirmedAt != "" {
		t.Fatalf("fecha_confirmacion must be empty until confirmation, got %q", got.ConfirmedAt)
	}
}

func TestOrderRepo_CreateRejectsBadInput(t *testing.T) {
	db := memdb(t)
	orders := repos.NewOrderRepo(db)
	u := mustUser(t, db, "u-bad", "bad@boutique.test")
	p := mustProduct(t, db, "p-bad", "10.00", 5)

	o := domain.Order{UserID: u.ID}
	if err := orders.Create(&o, nil); !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("want ErrEmptyOrder, got %v", err)
	}
	if err := orders.Create(&o, []domain.OrderItem{{ProductID: p.ID, Qty: 0}}); !errors.Is(err, domain.ErrBadQuantity) {
		t.Fatalf("want ErrBadQuantity, got %v", err)
	}

	// referential integrity: unknown user rejected at write time
	ghost := domain.Order{UserID: "no-such-user"}
	if err := orders.Create(&ghost, []domain.OrderItem{{ProductID: p.ID, Qty: 1}}); err == nil {
		t.Fatal("order for nonexistent user should be rejected")
	}
	// unknown product rejected too
	bad := domain.Order{UserID: u.ID}
	if err := orders.Create(&bad, []domain.OrderItem{{ProductID: "no-such-product", Qty: 1}}); err == nil {
		t.Fatal("order item for nonexistent product should be rejected")
	}
}

func TestOrderRepo_PaymentAndCouponDeleteSetNull(t *testing.T) {
	db := memdb(t)
	orders := repos.NewOrderRepo(db)
	payments := repos.NewPaymentMethodRepo(db)
	coupons := repos.NewCouponRepo(db)

	u := mustUser(t, db, "u-null", "null@boutique.test")
	p := mustProduct(t, db, "p-null", "10.00", 5)
	pm := domain.PaymentMethod{Name: "Tarjeta", Type: domain.PaymentCard, Active: true}
	if err := payments.Create(&pm); err != nil {
		t.Fatal(err)
	}
	c := domain.Coupon{Code: "NULO10", Percent: decimal.NewFromInt(10), Active: true}
	if err := coupons.Create(&c); err != nil {
		t.Fatal(err)
	}

	o := domain.Order{UserID: u.ID, PaymentMethodID: pm.ID, CouponID: c.ID}
	if err := orders.Create(&o, []domain.OrderItem{{ProductID: p.ID, Qty: 1}}); err != nil {
		t.Fatal(err)
	}

	if err := payments.Delete(pm.ID); err != nil {
		t.Fatal(err)
	}
	if err := coupons.Delete(c.ID); err != nil {
		t.Fatal(err)
	}

	got, err := orders.Get(o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.PaymentMethodID != "" {
		t.Fatalf("metodo_pago_id should be nulled, got %q", got.PaymentMethodID)
	}
	if got.CouponID != "" {
		t.Fatalf("cupon_id should be nulled, got %q", got.CouponID)
	}
}

func TestOrderRepo_StatusTransitions(t *testing.T) {
	db := memdb(t)
	orders := repos.NewOrderRepo(db)
	u := mustUser(t, db, "u-st", "st@boutique.test")
	p := mustProduct(t, db, "p-st", "10.00", 5)

	o := domain.Order{UserID: u.ID}
	if err := orders.Create(&o, []domain.OrderItem{{ProductID: p.ID, Qty: 1}}); err != nil {
		t.Fatal(err)
	}

	// pendiente cannot jump straight to enviado
	if err := orders.UpdateStatus(o.ID, domain.StatusShipped); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	// confirmation must go through Confirm, not UpdateStatus
	if err := orders.UpdateStatus(o.ID, domain.StatusConfirmed); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition for direct confirm, got %v", err)
	}

	if err := orders.Confirm(o.ID); err != nil {
		t.Fatal(err)
	}
	if err := orders.UpdateStatus(o.ID, domain.StatusShipped); err != nil {
		t.Fatal(err)
	}
	if err := orders.UpdateStatus(o.ID, domain.StatusDelivered); err != nil {
		t.Fatal(err)
	}
	// entregado is terminal
	if err := orders.UpdateStatus(o.ID, domain.StatusCancelled); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition from entregado, got %v", err)
	}
}

func TestOrderRepo_ListByUser(t *testing.T) {
	db := memdb(t)
	orders := repos.NewOrderRepo(db)
	u := mustUser(t, db, "u-list", "list@boutique.test")
	other := mustUser(t, db, "u-other", "other@boutique.test")
	p := mustProduct(t, db, "p-list", "10.00", 50)

	for _, uid := range []string{u.ID, u.ID, other.ID} {
		o := domain.Order{UserID: uid}
		if err := orders.Create(&o, []domain.OrderItem{{ProductID: p.ID, Qty: 1}}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := orders.ListByUser(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 orders for user, got %d", len(got))
	}
}
