package repository

import (
	"context"
	"database/sql"

	"github.com/inventario-app/inventario-api/internal/models"
	"github.com/inventario-app/inventario-api/internal/utils"
)

type EstadisticasRepository interface {
	ConteoProveedores(ctx context.Context) (int64, error)
	ProductosPorCategoria(ctx context.Context) ([]models.CategoriaConteo, error)
}

type estadisticasRepository struct {
	DB *sql.DB
}

func NewEstadisticasRepo(db *sql.DB) EstadisticasRepository {
	return &estadisticasRepository{DB: db}
}

func (r *estadisticasRepository) ConteoProveedores(ctx context.Context) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT COUNT(*) AS total FROM Proveedores`

	var total int64

	err := r.DB.QueryRowContext(dbCtx, query).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// ProductosPorCategoria uses an inner join, so categories without products
// do not appear in the result at all.
func (r *estadisticasRepository) ProductosPorCategoria(ctx context.Context) ([]models.CategoriaConteo, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT Categorias.nombre AS categoria, COUNT(Productos.id) AS total
		FROM Productos
		JOIN Categorias ON Productos.categoria_id = Categorias.id
		GROUP BY Categorias.nombre
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	conteos := []models.CategoriaConteo{}

	for rows.Next() {
		var c models.CategoriaConteo

		if err := rows.Scan(&c.Categoria, &c.Total); err != nil {
			return nil, err
		}

		conteos = append(conteos, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conteos, nil
}
