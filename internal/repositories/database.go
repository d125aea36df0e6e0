package repository

import (
	"database/sql"
	"fmt"

	"github.com/inventario-app/inventario-api/internal/config"

	_ "github.com/go-sql-driver/mysql"
)

type Repository struct {
	DB *sql.DB

	Producto     ProductoRepository
	Catalogo     CatalogoRepository
	Estadisticas EstadisticasRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := sql.Open("mysql", cfg.Database.GetDSN())

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:           db,
		Producto:     NewProductoRepo(db),
		Catalogo:     NewCatalogoRepo(db),
		Estadisticas: NewEstadisticasRepo(db),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
