package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	applog "boutique/internal/log"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Single connection: sqlite has one writer anyway, and this keeps
	// :memory: databases from splitting across pooled connections.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Usuarios
CREATE TABLE IF NOT EXISTS usuarios(
  id TEXT PRIMARY KEY,
  nombre TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  telefono TEXT NOT NULL DEFAULT '',
  direccion TEXT NOT NULL DEFAULT '',
  tipo_usuario TEXT NOT NULL DEFAULT 'cliente'
    CHECK (tipo_usuario IN ('cliente','vendedor','administrador')),
  fecha_registro TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  activo INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_usuarios_email ON usuarios(LOWER(email));

-- Productos
CREATE TABLE IF NOT EXISTS productos(
  id TEXT PRIMARY KEY,
  nombre TEXT NOT NULL,
  descripcion TEXT NOT NULL DEFAULT '',
  precio TEXT NOT NULL,
  categoria TEXT NOT NULL
    CHECK (categoria IN ('ropa','accesorios','zapatos','belleza','hogar')),
  talla TEXT NULL CHECK (talla IN ('XS','S','M','L','XL','Única')),
  color TEXT NOT NULL DEFAULT '',
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  imagen TEXT NULL,
  fecha_agregado TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  disponible INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_productos_categoria ON productos(categoria);
CREATE INDEX IF NOT EXISTS idx_productos_nombre    ON productos(LOWER(nombre));

-- Métodos de pago
CREATE TABLE IF NOT EXISTS metodos_pago(
  id TEXT PRIMARY KEY,
  nombre TEXT NOT NULL,
  tipo TEXT NOT NULL CHECK (tipo IN ('tarjeta','paypal','efectivo')),
  activo INTEGER NOT NULL DEFAULT 1
);

-- Cupones de descuento
CREATE TABLE IF NOT EXISTS cupones_descuento(
  id TEXT PRIMARY KEY,
  codigo TEXT NOT NULL UNIQUE,
  descuento_porcentaje TEXT NOT NULL,
  fecha_expiracion TEXT NULL,
  activo INTEGER NOT NULL DEFAULT 1
);

-- Pedidos
CREATE TABLE IF NOT EXISTS pedidos(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  estado_pedido TEXT NOT NULL DEFAULT 'pendiente'
    CHECK (estado_pedido IN ('pendiente','confirmado','enviado','entregado','cancelado')),
  direccion TEXT NOT NULL DEFAULT '',
  fecha TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  fecha_confirmacion TEXT NULL,
  id_usuario TEXT NOT NULL REFERENCES usuarios(id) ON DELETE CASCADE,
  metodo_pago_id TEXT NULL REFERENCES metodos_pago(id) ON DELETE SET NULL,
  cupon_id TEXT NULL REFERENCES cupones_descuento(id) ON DELETE SET NULL
);
CREATE INDEX IF NOT EXISTS idx_pedidos_usuario ON pedidos(id_usuario);
CREATE INDEX IF NOT EXISTS idx_pedidos_fecha   ON pedidos(fecha);

CREATE TABLE IF NOT EXISTS items_pedido(
  pedido_id   INTEGER NOT NULL REFERENCES pedidos(id) ON DELETE CASCADE,
  producto_id TEXT NOT NULL REFERENCES productos(id) ON DELETE CASCADE,
  cantidad INTEGER NOT NULL DEFAULT 1 CHECK (cantidad >= 1),
  PRIMARY KEY (pedido_id, producto_id)
);

-- Reseñas
CREATE TABLE IF NOT EXISTS resenas(
  id TEXT PRIMARY KEY,
  producto_id TEXT NOT NULL REFERENCES productos(id) ON DELETE CASCADE,
  usuario_id  TEXT NOT NULL REFERENCES usuarios(id) ON DELETE CASCADE,
  calificacion INTEGER NOT NULL CHECK (calificacion BETWEEN 1 AND 5),
  comentario TEXT NULL,
  fecha_resena TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE (producto_id, usuario_id)
);
CREATE INDEX IF NOT EXISTS idx_resenas_producto ON resenas(producto_id);
`
	_, err := db.Exec(schema)
	return err
}

// Seed inserts demo catalog data if the database is empty (idempotent;
// safe to run every start). Tests use OpenDB alone and stay clean.
func Seed(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM productos`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	applog.Info("seed.demo", map[string]any{"db": "empty, inserting demo data"})

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO usuarios(id,nombre,email,telefono,direccion,tipo_usuario) VALUES
	  ('u-maria','María López','maria@boutique.test','5551230001','Av. Reforma 10','cliente'),
	  ('u-carla','Carla Ruiz','carla@boutique.test','5551230002','Calle Luna 22','vendedor'),
	  ('u-admin','Administración','admin@boutique.test','5551230000','Oficina central','administrador')`)

	tx.MustExec(`INSERT INTO productos(id,nombre,descripcion,precio,categoria,talla,color,stock,imagen) VALUES
	  ('p-vestido','Vestido floral','Vestido de verano con estampado floral','499.90','ropa','M','rojo',12,'productos/p-vestido/main.jpg'),
	  ('p-bolso','Bolso de mano','Bolso de piel sintética','899.00','accesorios',NULL,'negro',5,'productos/p-bolso/main.jpg'),
	  ('p-tenis','Tenis urbanos','Tenis casuales unisex','1250.00','zapatos','XL','blanco',8,NULL),
	  ('p-crema','Crema hidratante','Crema facial 50ml','310.50','belleza','Única','',20,NULL),
	  ('p-cojin','Cojín decorativo','Cojín bordado 40x40','189.99','hogar',NULL,'beige',15,NULL)`)

	tx.MustExec(`INSERT INTO metodos_pago(id,nombre,tipo) VALUES
	  ('mp-visa','Tarjeta Visa/Mastercard','tarjeta'),
	  ('mp-paypal','PayPal','paypal'),
	  ('mp-contra','Pago contra entrega','efectivo')`)

	tx.MustExec(`INSERT INTO cupones_descuento(id,codigo,descuento_porcentaje,fecha_expiracion) VALUES
	  ('c-bienv','BIENVENIDA10','10.00',NULL),
	  ('c-verano','VERANO25','25.00','2026-08-31')`)

	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
