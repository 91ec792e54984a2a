package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"boutique/internal/domain"
)

type PaymentMethodRepo struct{ db *sqlx.DB }

func NewPaymentMethodRepo(db *sqlx.DB) *PaymentMethodRepo { return &PaymentMethodRepo{db: db} }

func (r *PaymentMethodRepo) Create(m *domain.PaymentMethod) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`
	  INSERT INTO metodos_pago(id,nombre,tipo,activo) VALUES(?,?,?,?)
	`, m.ID, m.Name, m.Type, m.Active)
	return err
}

func (r *PaymentMethodRepo) Get(id string) (domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	err := r.db.Get(&m, `SELECT id,nombre,tipo,activo FROM metodos_pago WHERE id=?`, id)
	return m, err
}

func (r *PaymentMethodRepo) ListActive() ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	err := r.db.Select(&out, `SELECT id,nombre,tipo,activo FROM metodos_pago WHERE activo=1 ORDER BY nombre`)
	return out, err
}

func (r *PaymentMethodRepo) Deactivate(id string) error {
	_, err := r.db.Exec(`UPDATE metodos_pago SET activo=0 WHERE id=?`, id)
	return err
}

// Delete removes the method; orders that referenced it keep their rows with
// metodo_pago_id nulled out (ON DELETE SET NULL).
func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM metodos_pago WHERE id=?`, id)
	return err
}
