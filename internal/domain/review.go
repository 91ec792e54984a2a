package domain

type Review struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"producto_id" json:"producto_id"`
	UserID    string `db:"usuario_id" json:"usuario_id"`
	Rating    int    `db:"calificacion" json:"calificacion"` // 1..5
	Comment   string `db:"comentario" json:"comentario,omitempty"`
	CreatedAt string `db:"fecha_resena" json:"fecha_resena"`
}
