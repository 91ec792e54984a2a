package repos_test

import (
	"database/sql"
	"errors"
	"testing"

	"boutique/internal/domain"
	"boutique/internal/repos"
)

func TestUserRepo_DuplicateEmailRejected(t *testing.T) {
	db := memdb(t)
	users := repos.NewUserRepo(db)

	first := domain.User{Name: "Ana", Email: "ana@boutique.test", Active: true}
	if err := users.Create(&first); err != nil {
		t.Fatal(err)
	}

	dup := domain.User{Name: "Otra Ana", Email: "ana@boutique.test", Active: true}
	err := users.Create(&dup)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}

	// first write remains intact
	got, err := users.ByEmail("ana@boutique.test")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != first.ID || got.Name != "Ana" {
		t.Fatalf("first user clobbered: %+v", got)
	}
}

func TestUserRepo_DefaultsRole(t *testing.T) {
	db := memdb(t)
	users := repos.NewUserRepo(db)

	u := domain.User{Name: "Luis", Email: "luis@boutique.test", Active: true}
	if err := users.Create(&u); err != nil {
		t.Fatal(err)
	}
	got, err := users.ByID(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Role != domain.RoleCustomer {
		t.Fatalf("want cliente, got %s", got.Role)
	}
	if got.RegisteredAt == "" {
		t.Fatal("fecha_registro should be set at creation")
	}
}

func TestUserRepo_DeleteCascades(t *testing.T) {
	db := memdb(t)
	users := repos.NewUserRepo(db)
	orders := repos.NewOrderRepo(db)
	reviews := repos.NewReviewRepo(db)

	u := mustUser(t, db, "u-del", "del@boutique.test")
	p := mustProduct(t, db, "p-del", "100.00", 10)

	o := domain.Order{UserID: u.ID, Address: "Calle 1"}
	if err := orders.Create(&o, []domain.OrderItem{{ProductID: p.ID, Qty: 2}}); err != nil {
		t.Fatal(err)
	}
	if err := reviews.Create(&domain.Review{ProductID: p.ID, UserID: u.ID, Rating: 4}); err != nil {
		t.Fatal(err)
	}

	if err := users.Delete(u.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := orders.Get(o.ID); err != sql.ErrNoRows {
		t.Fatalf("order should be gone, got %v", err)
	}
	var items int
	if err := db.Get(&items, `SELECT COUNT(*) FROM items_pedido WHERE pedido_id=?`, o.ID); err != nil {
		t.Fatal(err)
	}
	if items != 0 {
		t.Fatalf("order items should be gone, got %d", items)
	}
	var nReviews int
	if err := db.Get(&nReviews, `SELECT COUNT(*) FROM resenas WHERE usuario_id=?`, u.ID); err != nil {
		t.Fatal(err)
	}
	if nReviews != 0 {
		t.Fatalf("reviews should be gone, got %d", nReviews)
	}

	// products have independent lifecycles
	if _, err := repos.NewProductRepo(db).Get(p.ID); err != nil {
		t.Fatalf("product should survive user deletion: %v", err)
	}
}
