package repos

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"boutique/internal/domain"
	"boutique/internal/validate"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user. The ID is assigned when empty and the role
// defaults to cliente. A duplicate email surfaces as ErrDuplicateEmail.
func (r *UserRepo) Create(u *domain.User) error {
	if _, ok := validate.Name(u.Name); !ok {
		return fmt.Errorf("invalid nombre %q", u.Name)
	}
	email, ok := validate.Email(u.Email)
	if !ok {
		return fmt.Errorf("invalid email %q", u.Email)
	}
	u.Email = email
	if u.Phone != "" {
		if _, ok := validate.Phone(u.Phone); !ok {
			return fmt.Errorf("invalid telefono %q", u.Phone)
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = domain.RoleCustomer
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid tipo_usuario %q", u.Role)
	}
	_, err := r.db.Exec(`
	  INSERT INTO usuarios(id,nombre,email,telefono,direccion,tipo_usuario,activo)
	  VALUES(?,?,?,?,?,?,?)
	`, u.ID, u.Name, u.Email, u.Phone, u.Address, u.Role, u.Active)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, u.Email)
	}
	return err
}

func (r *UserRepo) ByID(id string) (domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `
	  SELECT id,nombre,email,telefono,direccion,tipo_usuario,fecha_registro,activo
	  FROM usuarios WHERE id=?
	`, id)
	return u, err
}

func (r *UserRepo) ByEmail(email string) (domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `
	  SELECT id,nombre,email,telefono,direccion,tipo_usuario,fecha_registro,activo
	  FROM usuarios WHERE LOWER(email)=LOWER(?)
	`, email)
	return u, err
}

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.db.Select(&out, `
	  SELECT id,nombre,email,telefono,direccion,tipo_usuario,fecha_registro,activo
	  FROM usuarios ORDER BY fecha_registro DESC
	`)
	return out, err
}

// Update rewrites the mutable fields; fecha_registro is set once at creation
// and never touched again.
func (r *UserRepo) Update(u domain.User) error {
	_, err := r.db.Exec(`
	  UPDATE usuarios SET nombre=?, email=?, telefono=?, direccion=?, tipo_usuario=?, activo=?
	  WHERE id=?
	`, u.Name, u.Email, u.Phone, u.Address, u.Role, u.Active, u.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, u.Email)
	}
	return err
}

func (r *UserRepo) Deactivate(id string) error {
	_, err := r.db.Exec(`UPDATE usuarios SET activo=0 WHERE id=?`, id)
	return err
}

// Delete removes the user and everything hanging off them: reviews, orders
// and the orders' line items. The schema's ON DELETE CASCADE covers this
// too; the explicit statements keep the cascade visible and in one
// transaction regardless of the engine's foreign-key enforcement.
func (r *UserRepo) Delete(userID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM resenas WHERE usuario_id=?`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`
	  DELETE FROM items_pedido
	  WHERE pedido_id IN (SELECT id FROM pedidos WHERE id_usuario=?)
	`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM pedidos WHERE id_usuario=?`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM usuarios WHERE id=?`, userID); err != nil {
		return err
	}
	return tx.Commit()
}
