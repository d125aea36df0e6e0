package service

import (
	"context"

	appErrors "github.com/inventario-app/inventario-api/internal/errors"
	"github.com/inventario-app/inventario-api/internal/models"
	repository "github.com/inventario-app/inventario-api/internal/repositories"
)

type EstadisticasService interface {
	ConteoProveedores(ctx context.Context) (int64, error)
	ProductosPorCategoria(ctx context.Context) ([]models.CategoriaConteo, error)
}

type estadisticasService struct {
	repo repository.EstadisticasRepository
}

func NewEstadisticasService(repo repository.EstadisticasRepository) EstadisticasService {
	return &estadisticasService{repo: repo}
}

func (s *estadisticasService) ConteoProveedores(ctx context.Context) (int64, error) {

	total, err := s.repo.ConteoProveedores(ctx)
	if err != nil {
		return 0, appErrors.DatabaseError("Error querying proveedor count", err)
	}

	return total, nil
}

func (s *estadisticasService) ProductosPorCategoria(ctx context.Context) ([]models.CategoriaConteo, error) {

	conteos, err := s.repo.ProductosPorCategoria(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Error querying productos por categoria", err)
	}

	return conteos, nil
}
