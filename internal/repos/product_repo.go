package repos

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"boutique/internal/domain"
	"boutique/internal/validate"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, nombre, descripcion, precio, categoria,
  COALESCE(talla,'') AS talla, color, stock,
  COALESCE(imagen,'') AS imagen, fecha_agregado, disponible`

func (r *ProductRepo) Create(p *domain.Product) error {
	if !p.Category.Valid() {
		return fmt.Errorf("invalid categoria %q", p.Category)
	}
	if !p.Size.Valid() {
		return fmt.Errorf("invalid talla %q", p.Size)
	}
	if !validate.Price(p.Price) {
		return fmt.Errorf("invalid precio %s", p.Price)
	}
	if p.Stock < 0 {
		return fmt.Errorf("stock must be non-negative, got %d", p.Stock)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`
	  INSERT INTO productos(id,nombre,descripcion,precio,categoria,talla,color,stock,imagen,disponible)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, p.ID, p.Name, p.Description, p.Price, p.Category,
		nullable(string(p.Size)), p.Color, p.Stock, nullable(p.Image), p.Available)
	return err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productCols+` FROM productos WHERE id=?`, id)
	return p, err
}

func (r *ProductRepo) ListByCategory(cat domain.Category, limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT`+productCols+`
	  FROM productos
	  WHERE categoria=? AND disponible=1
	  ORDER BY fecha_agregado DESC
	  LIMIT ? OFFSET ?
	`, cat, limit, offset)
	return out, err
}

func (r *ProductRepo) Search(q string, cat domain.Category, size domain.Size, limit, offset int) ([]domain.Product, error) {
	where := `disponible = 1`
	args := []any{}
	if q != "" {
		where += ` AND (LOWER(nombre) LIKE ? OR LOWER(descripcion) LIKE ?)`
		args = append(args, "%"+q+"%", "%"+q+"%")
	}
	if cat != "" {
		where += ` AND categoria = ?`
		args = append(args, cat)
	}
	if size != "" {
		where += ` AND talla = ?`
		args = append(args, size)
	}

	sql := `SELECT` + productCols + `
	  FROM productos
	  WHERE ` + where + `
	  ORDER BY fecha_agregado DESC
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, sql, args...)
	return out, err
}

// Update rewrites the mutable fields; stock moves only through
// DecrementStock/Restock so concurrent sales never overwrite each other.
func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE productos
	  SET nombre=?, descripcion=?, precio=?, categoria=?, talla=?, color=?, imagen=?, disponible=?
	  WHERE id=?
	`, p.Name, p.Description, p.Price, p.Category,
		nullable(string(p.Size)), p.Color, nullable(p.Image), p.Available, p.ID)
	return err
}

// DecrementStock subtracts qty units if enough stock exists, in a single
// guarded write. Zero rows affected means the floor would be crossed.
func (r *ProductRepo) DecrementStock(productID string, qty int) error {
	if !validate.Qty(qty) {
		return domain.ErrBadQuantity
	}
	res, err := r.db.Exec(`
	  UPDATE productos SET stock = stock - ?
	  WHERE id = ? AND stock >= ?
	`, qty, productID, qty)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, productID)
	}
	return nil
}

func (r *ProductRepo) Restock(productID string, qty int) error {
	if !validate.Qty(qty) {
		return domain.ErrBadQuantity
	}
	_, err := r.db.Exec(`UPDATE productos SET stock = stock + ? WHERE id = ?`, qty, productID)
	return err
}

func (r *ProductRepo) SetAvailable(productID string, available bool) error {
	_, err := r.db.Exec(`UPDATE productos SET disponible=? WHERE id=?`, available, productID)
	return err
}

// Delete removes the product; line items and reviews referencing it go with
// it via ON DELETE CASCADE.
func (r *ProductRepo) Delete(productID string) error {
	_, err := r.db.Exec(`DELETE FROM productos WHERE id=?`, productID)
	return err
}

// nullable maps "" to NULL for optional text columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
