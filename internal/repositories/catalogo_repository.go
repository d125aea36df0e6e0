package repository

import (
	"context"
	"database/sql"

	"github.com/inventario-app/inventario-api/internal/models"
	"github.com/inventario-app/inventario-api/internal/utils"
)

// CatalogoRepository reads the reference tables this API never mutates.
type CatalogoRepository interface {
	ListarCategorias(ctx context.Context) ([]models.Categoria, error)
	ListarProveedores(ctx context.Context) ([]models.Proveedor, error)
}

type catalogoRepository struct {
	DB *sql.DB
}

func NewCatalogoRepo(db *sql.DB) CatalogoRepository {
	return &catalogoRepository{DB: db}
}

func (r *catalogoRepository) ListarCategorias(ctx context.Context) ([]models.Categoria, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, nombre FROM Categorias`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	categorias := []models.Categoria{}

	for rows.Next() {
		var c models.Categoria

		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, err
		}

		categorias = append(categorias, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categorias, nil
}

func (r *catalogoRepository) ListarProveedores(ctx context.Context) ([]models.Proveedor, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, nombre, contacto, telefono, email FROM Proveedores`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	proveedores := []models.Proveedor{}

	for rows.Next() {
		var p models.Proveedor

		if err := rows.Scan(&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email); err != nil {
			return nil, err
		}

		proveedores = append(proveedores, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return proveedores, nil
}
