package models

type Producto struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Stock       int64   `json:"stock"`
	CategoriaID int64   `json:"categoria_id"`
	ProveedorID int64   `json:"proveedor_id"`
	Foto        *string `json:"foto"`
}

type Categoria struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type Proveedor struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

// ExecResult mirrors the raw driver result that write endpoints return to
// clients: how many rows the statement touched and, for inserts, the
// generated id.
type ExecResult struct {
	AffectedRows int64 `json:"affectedRows"`
	InsertID     int64 `json:"insertId"`
}

// CategoriaConteo is one row of the products-per-category statistic.
type CategoriaConteo struct {
	Categoria string `json:"categoria"`
	Total     int64  `json:"total"`
}

type CrearProductoRequest struct {
	Nombre      string  `form:"nombre" validate:"required"`
	Precio      float64 `form:"precio"`
	Stock       int64   `form:"stock"`
	Descripcion string  `form:"descripcion"`
	CategoriaID int64   `form:"categoria_id"`
	ProveedorID int64   `form:"proveedor_id"`
	Foto        *string `form:"-"`
}

// ActualizarProductoRequest carries the candidate values for a partial
// update. A zero value means the field was not provided: empty string and
// numeric zero are both treated as absent, so an update that tries to set
// stock to 0 or descripcion to "" is skipped. That matches the behavior
// existing API clients depend on.
type ActualizarProductoRequest struct {
	Nombre      string
	Precio      float64
	Stock       int64
	Descripcion string
	CategoriaID int64
	ProveedorID int64
	Foto        string
}
