package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryClothing    Category = "ropa"
	CategoryAccessories Category = "accesorios"
	CategoryShoes       Category = "zapatos"
	CategoryBeauty      Category = "belleza"
	CategoryHome        Category = "hogar"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryClothing, CategoryAccessories, CategoryShoes, CategoryBeauty, CategoryHome:
		return true
	}
	return false
}

type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeOne Size = "Única"
)

// Valid reports whether s is one of the allowed sizes. The empty size is
// valid: size is optional on products outside the clothing categories.
func (s Size) Valid() bool {
	switch s {
	case "", SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeOne:
		return true
	}
	return false
}

type Product struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"nombre" json:"nombre"`
	Description string          `db:"descripcion" json:"descripcion"`
	Price       decimal.Decimal `db:"precio" json:"precio"`
	Category    Category        `db:"categoria" json:"categoria"`
	Size        Size            `db:"talla" json:"talla,omitempty"`
	Color       string          `db:"color" json:"color"`
	Stock       int             `db:"stock" json:"stock"`
	Image       string          `db:"imagen" json:"imagen,omitempty"` // opaque storage path/URL
	AddedAt     string          `db:"fecha_agregado" json:"fecha_agregado"`
	Available   bool            `db:"disponible" json:"disponible"`
}

// Availability is the stock classification shown next to a product.
type Availability struct {
	Status string `json:"estado"` // disponible | pocas_unidades | agotado
	Qty    int    `json:"stock,omitempty"`
}
