package repos

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"boutique/internal/domain"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Create inserts a review. A second review for the same (product, user)
// pair surfaces as ErrDuplicateReview.
func (r *ReviewRepo) Create(rv *domain.Review) error {
	if rv.Rating < 1 || rv.Rating > 5 {
		return domain.ErrBadRating
	}
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`
	  INSERT INTO resenas(id,producto_id,usuario_id,calificacion,comentario)
	  VALUES(?,?,?,?,?)
	`, rv.ID, rv.ProductID, rv.UserID, rv.Rating, nullable(rv.Comment))
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: producto %s, usuario %s", domain.ErrDuplicateReview, rv.ProductID, rv.UserID)
	}
	return err
}

func (r *ReviewRepo) ListByProduct(productID string) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.Select(&out, `
	  SELECT id, producto_id, usuario_id, calificacion,
	         COALESCE(comentario,'') AS comentario, fecha_resena
	  FROM resenas
	  WHERE producto_id = ?
	  ORDER BY datetime(fecha_resena) DESC
	`, productID)
	return out, err
}

// AverageRating returns the mean rating and the number of reviews; a
// product without reviews averages zero.
func (r *ReviewRepo) AverageRating(productID string) (float64, int, error) {
	var row struct {
		Avg float64 `db:"avg"`
		N   int     `db:"n"`
	}
	err := r.db.Get(&row, `
	  SELECT COALESCE(AVG(calificacion),0) AS avg, COUNT(*) AS n
	  FROM resenas WHERE producto_id = ?
	`, productID)
	return row.Avg, row.N, err
}

func (r *ReviewRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM resenas WHERE id=?`, id)
	return err
}
