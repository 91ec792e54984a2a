package domain

type Role string

const (
	RoleCustomer Role = "cliente"
	RoleSeller   Role = "vendedor"
	RoleAdmin    Role = "administrador"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"nombre" json:"nombre"`
	Email        string `db:"email" json:"email"`
	Phone        string `db:"telefono" json:"telefono"`
	Address      string `db:"direccion" json:"direccion"`
	Role         Role   `db:"tipo_usuario" json:"tipo_usuario"`
	RegisteredAt string `db:"fecha_registro" json:"fecha_registro"`
	Active       bool   `db:"activo" json:"activo"`
}
