package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/inventario-app/inventario-api/internal/errors"
	"github.com/inventario-app/inventario-api/internal/models"
	"github.com/inventario-app/inventario-api/internal/repositories/mocks"
	service "github.com/inventario-app/inventario-api/internal/services"
	"github.com/inventario-app/inventario-api/internal/sqlbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCrearProducto(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ProductoRepository)
	productoService := service.NewProductoService(mockRepo)
	ctx := context.Background()

	req := &models.CrearProductoRequest{
		Nombre:      "Widget",
		Precio:      9.99,
		Stock:       5,
		Descripcion: "A widget",
		CategoriaID: 1,
		ProveedorID: 1,
	}

	t.Run("Success - Create Producto", func(t *testing.T) {
		// Arrange
		mockRepo.On("CrearProducto", mock.Anything, mock.MatchedBy(func(p *models.Producto) bool {
			return p.Nombre == req.Nombre && p.Precio == req.Precio && p.Foto == nil
		})).Return(&models.ExecResult{AffectedRows: 1, InsertID: 42}, nil).Once()

		// Act
		result, err := productoService.CrearProducto(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(42), result.InsertID)
		assert.Equal(t, int64(1), result.AffectedRows)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error carries driver message", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("ER_NO_REFERENCED_ROW_2: foreign key constraint fails")
		mockRepo.On("CrearProducto", mock.Anything, mock.AnythingOfType("*models.Producto")).Return(nil, dbErr).Once()

		// Act
		result, err := productoService.CrearProducto(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.Contains(t, appErr.Detail, "Error inserting into Productos: ")
		assert.Contains(t, appErr.Detail, dbErr.Error())
		mockRepo.AssertExpectations(t)
	})
}

func TestObtenerProductoPorID(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ProductoRepository)
	productoService := service.NewProductoService(mockRepo)
	ctx := context.Background()

	t.Run("Missing id yields empty sequence, no error", func(t *testing.T) {
		// Arrange
		mockRepo.On("ObtenerProductoPorID", mock.Anything, int64(999)).Return([]models.Producto{}, nil).Once()

		// Act
		productos, err := productoService.ObtenerProductoPorID(ctx, 999)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, productos)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Found id yields one-element sequence", func(t *testing.T) {
		// Arrange
		mockRepo.On("ObtenerProductoPorID", mock.Anything, int64(7)).
			Return([]models.Producto{{ID: 7, Nombre: "Widget"}}, nil).Once()

		// Act
		productos, err := productoService.ObtenerProductoPorID(ctx, 7)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, productos, 1)
		mockRepo.AssertExpectations(t)
	})
}

func TestActualizarProducto(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ProductoRepository)
	productoService := service.NewProductoService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		req := &models.ActualizarProductoRequest{Stock: 12}
		mockRepo.On("ActualizarProducto", mock.Anything, int64(7), req).
			Return(&models.ExecResult{AffectedRows: 1}, nil).Once()

		// Act
		result, err := productoService.ActualizarProducto(ctx, 7, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.AffectedRows)
		mockRepo.AssertExpectations(t)
	})

	t.Run("No fields maps to a 400", func(t *testing.T) {
		// Arrange
		req := &models.ActualizarProductoRequest{}
		mockRepo.On("ActualizarProducto", mock.Anything, int64(7), req).
			Return(nil, sqlbuild.ErrNoFields).Once()

		// Act
		result, err := productoService.ActualizarProducto(ctx, 7, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Equal(t, 400, appErr.StatusCode)
		mockRepo.AssertExpectations(t)
	})
}

func TestEliminarProducto(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ProductoRepository)
	productoService := service.NewProductoService(mockRepo)
	ctx := context.Background()

	t.Run("Missing row is not an error", func(t *testing.T) {
		// Arrange
		mockRepo.On("EliminarProducto", mock.Anything, int64(999)).
			Return(&models.ExecResult{AffectedRows: 0}, nil).Once()

		// Act
		result, err := productoService.EliminarProducto(ctx, 999)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.AffectedRows)
		mockRepo.AssertExpectations(t)
	})
}
