package service

import (
	"context"
	"errors"

	appErrors "github.com/inventario-app/inventario-api/internal/errors"
	"github.com/inventario-app/inventario-api/internal/models"
	repository "github.com/inventario-app/inventario-api/internal/repositories"
	"github.com/inventario-app/inventario-api/internal/sqlbuild"
)

type ProductoService interface {
	CrearProducto(ctx context.Context, req *models.CrearProductoRequest) (*models.ExecResult, error)
	ListarProductos(ctx context.Context) ([]models.Producto, error)
	ObtenerProductoPorID(ctx context.Context, id int64) ([]models.Producto, error)
	ListarProductosPorCategoria(ctx context.Context, categoriaID int64) ([]models.Producto, error)
	ActualizarProducto(ctx context.Context, id int64, req *models.ActualizarProductoRequest) (*models.ExecResult, error)
	EliminarProducto(ctx context.Context, id int64) (*models.ExecResult, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) CrearProducto(ctx context.Context, req *models.CrearProductoRequest) (*models.ExecResult, error) {

	producto := &models.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
		CategoriaID: req.CategoriaID,
		ProveedorID: req.ProveedorID,
		Foto:        req.Foto,
	}

	result, err := s.repo.CrearProducto(ctx, producto)
	if err != nil {
		return nil, appErrors.DatabaseError("Error inserting into Productos", err)
	}

	return result, nil
}

func (s *productoService) ListarProductos(ctx context.Context) ([]models.Producto, error) {

	productos, err := s.repo.ListarProductos(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Error querying Productos", err)
	}

	return productos, nil
}

// ObtenerProductoPorID returns a sequence of zero or one products. A
// missing id is not an error here; the caller sees an empty sequence.
func (s *productoService) ObtenerProductoPorID(ctx context.Context, id int64) ([]models.Producto, error) {

	productos, err := s.repo.ObtenerProductoPorID(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Error querying Productos", err)
	}

	return productos, nil
}

func (s *productoService) ListarProductosPorCategoria(ctx context.Context, categoriaID int64) ([]models.Producto, error) {

	productos, err := s.repo.ListarProductosPorCategoria(ctx, categoriaID)
	if err != nil {
		return nil, appErrors.DatabaseError("Error querying Productos", err)
	}

	return productos, nil
}

func (s *productoService) ActualizarProducto(ctx context.Context, id int64, req *models.ActualizarProductoRequest) (*models.ExecResult, error) {

	result, err := s.repo.ActualizarProducto(ctx, id, req)
	if err != nil {
		if errors.Is(err, sqlbuild.ErrNoFields) {
			return nil, appErrors.BadRequestError("No fields provided to update")
		}

		return nil, appErrors.DatabaseError("Error updating Productos", err)
	}

	return result, nil
}

func (s *productoService) EliminarProducto(ctx context.Context, id int64) (*models.ExecResult, error) {

	result, err := s.repo.EliminarProducto(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Error deleting from Productos", err)
	}

	return result, nil
}
