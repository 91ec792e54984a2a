package repos

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"boutique/internal/domain"
	"boutique/internal/validate"
)

type CouponRepo struct{ db *sqlx.DB }

func NewCouponRepo(db *sqlx.DB) *CouponRepo { return &CouponRepo{db: db} }

const couponCols = `id, codigo, descuento_porcentaje, COALESCE(fecha_expiracion,'') AS fecha_expiracion, activo`

// Create inserts a coupon. Codes are normalized to uppercase; a duplicate
// code surfaces as ErrDuplicateCoupon.
func (r *CouponRepo) Create(c *domain.Coupon) error {
	code, ok := validate.CouponCode(c.Code)
	if !ok {
		return fmt.Errorf("invalid codigo %q", c.Code)
	}
	c.Code = code
	if !validate.Percent(c.Percent) {
		return fmt.Errorf("invalid descuento_porcentaje %s", c.Percent)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`
	  INSERT INTO cupones_descuento(id,codigo,descuento_porcentaje,fecha_expiracion,activo)
	  VALUES(?,?,?,?,?)
	`, c.ID, c.Code, c.Percent, nullable(c.ExpiresAt), c.Active)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCoupon, c.Code)
	}
	return err
}

func (r *CouponRepo) Get(id string) (domain.Coupon, error) {
	var c domain.Coupon
	err := r.db.Get(&c, `SELECT `+couponCols+` FROM cupones_descuento WHERE id=?`, id)
	return c, err
}

func (r *CouponRepo) ByCode(code string) (domain.Coupon, error) {
	var c domain.Coupon
	err := r.db.Get(&c, `SELECT `+couponCols+` FROM cupones_descuento WHERE codigo=?`, code)
	return c, err
}

func (r *CouponRepo) Deactivate(id string) error {
	_, err := r.db.Exec(`UPDATE cupones_descuento SET activo=0 WHERE id=?`, id)
	return err
}

// DeactivateExpired flips off every active coupon whose expiration date is
// before now's date. Returns how many coupons were retired.
func (r *CouponRepo) DeactivateExpired(now time.Time) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE cupones_descuento SET activo=0
	  WHERE activo=1 AND fecha_expiracion IS NOT NULL AND fecha_expiracion < ?
	`, now.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the coupon; orders that referenced it keep their rows with
// cupon_id nulled out (ON DELETE SET NULL).
func (r *CouponRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM cupones_descuento WHERE id=?`, id)
	return err
}
