package service

import (
	"context"

	appErrors "github.com/inventario-app/inventario-api/internal/errors"
	"github.com/inventario-app/inventario-api/internal/models"
	repository "github.com/inventario-app/inventario-api/internal/repositories"
)

type CatalogoService interface {
	ListarCategorias(ctx context.Context) ([]models.Categoria, error)
	ListarProveedores(ctx context.Context) ([]models.Proveedor, error)
}

type catalogoService struct {
	repo repository.CatalogoRepository
}

func NewCatalogoService(repo repository.CatalogoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) ListarCategorias(ctx context.Context) ([]models.Categoria, error) {

	categorias, err := s.repo.ListarCategorias(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Error querying Categorias", err)
	}

	return categorias, nil
}

func (s *catalogoService) ListarProveedores(ctx context.Context) ([]models.Proveedor, error) {

	proveedores, err := s.repo.ListarProveedores(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Error querying Proveedores", err)
	}

	return proveedores, nil
}
