package repository

import (
	"context"
	"database/sql"

	"github.com/inventario-app/inventario-api/internal/models"
	"github.com/inventario-app/inventario-api/internal/sqlbuild"
	"github.com/inventario-app/inventario-api/internal/utils"
)

type ProductoRepository interface {
	CrearProducto(ctx context.Context, producto *models.Producto) (*models.ExecResult, error)
	ListarProductos(ctx context.Context) ([]models.Producto, error)
	ObtenerProductoPorID(ctx context.Context, id int64) ([]models.Producto, error)
	ListarProductosPorCategoria(ctx context.Context, categoriaID int64) ([]models.Producto, error)
	ActualizarProducto(ctx context.Context, id int64, req *models.ActualizarProductoRequest) (*models.ExecResult, error)
	EliminarProducto(ctx context.Context, id int64) (*models.ExecResult, error)
}

type productoRepository struct {
	DB *sql.DB
}

func NewProductoRepo(db *sql.DB) ProductoRepository {
	return &productoRepository{DB: db}
}

func (r *productoRepository) CrearProducto(ctx context.Context, producto *models.Producto) (*models.ExecResult, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO Productos (nombre, descripcion, precio, stock, categoria_id, proveedor_id, foto)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.DB.ExecContext(dbCtx, query,
		producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock,
		producto.CategoriaID, producto.ProveedorID, producto.Foto)
	if err != nil {
		return nil, err
	}

	return execResult(res)
}

func (r *productoRepository) ListarProductos(ctx context.Context) ([]models.Producto, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, nombre, descripcion, precio, stock, categoria_id, proveedor_id, foto FROM Productos`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanProductos(rows)
}

func (r *productoRepository) ObtenerProductoPorID(ctx context.Context, id int64) ([]models.Producto, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, nombre, descripcion, precio, stock, categoria_id, proveedor_id, foto FROM Productos WHERE id = ?`

	rows, err := r.DB.QueryContext(dbCtx, query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanProductos(rows)
}

func (r *productoRepository) ListarProductosPorCategoria(ctx context.Context, categoriaID int64) ([]models.Producto, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, nombre, descripcion, precio, stock, categoria_id, proveedor_id, foto FROM Productos WHERE categoria_id = ?`

	rows, err := r.DB.QueryContext(dbCtx, query, categoriaID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanProductos(rows)
}

// ActualizarProducto issues the minimal UPDATE for the fields present in
// req. Column identifiers are fixed here; only values are parameterized.
func (r *productoRepository) ActualizarProducto(ctx context.Context, id int64, req *models.ActualizarProductoRequest) (*models.ExecResult, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	fields := []sqlbuild.Field{
		{Column: "nombre", Value: req.Nombre},
		{Column: "precio", Value: req.Precio},
		{Column: "stock", Value: req.Stock},
		{Column: "descripcion", Value: req.Descripcion},
		{Column: "categoria_id", Value: req.CategoriaID},
		{Column: "proveedor_id", Value: req.ProveedorID},
		{Column: "foto", Value: req.Foto},
	}

	query, args, err := sqlbuild.PartialUpdate("Productos", id, fields)
	if err != nil {
		return nil, err
	}

	res, err := r.DB.ExecContext(dbCtx, query, args...)
	if err != nil {
		return nil, err
	}

	return execResult(res)
}

func (r *productoRepository) EliminarProducto(ctx context.Context, id int64) (*models.ExecResult, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM Productos WHERE id = ?`

	res, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return nil, err
	}

	return execResult(res)
}

func scanProductos(rows *sql.Rows) ([]models.Producto, error) {
	productos := []models.Producto{}

	for rows.Next() {
		var p models.Producto

		err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.CategoriaID, &p.ProveedorID, &p.Foto)
		if err != nil {
			return nil, err
		}

		productos = append(productos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return productos, nil
}

func execResult(res sql.Result) (*models.ExecResult, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	// LastInsertId is only meaningful after an INSERT; the driver returns 0
	// for UPDATE and DELETE.
	insertID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.ExecResult{AffectedRows: affected, InsertID: insertID}, nil
}
