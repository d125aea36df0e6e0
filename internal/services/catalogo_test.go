package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/inventario-app/inventario-api/internal/errors"
	"github.com/inventario-app/inventario-api/internal/models"
	"github.com/inventario-app/inventario-api/internal/repositories/mocks"
	service "github.com/inventario-app/inventario-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListarCategoriasService(t *testing.T) {
	mockRepo := new(mocks.CatalogoRepository)
	catalogoService := service.NewCatalogoService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		categorias := []models.Categoria{{ID: 1, Nombre: "Herramientas"}}
		mockRepo.On("ListarCategorias", mock.Anything).Return(categorias, nil).Once()

		got, err := catalogoService.ListarCategorias(ctx)

		assert.NoError(t, err)
		assert.Equal(t, categorias, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Database error keeps the driver message", func(t *testing.T) {
		dbErr := errors.New("connection lost")
		mockRepo.On("ListarCategorias", mock.Anything).Return(nil, dbErr).Once()

		_, err := catalogoService.ListarCategorias(ctx)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.Contains(t, appErr.Detail, "Error querying Categorias: connection lost")
		mockRepo.AssertExpectations(t)
	})
}

func TestListarProveedoresService(t *testing.T) {
	mockRepo := new(mocks.CatalogoRepository)
	catalogoService := service.NewCatalogoService(mockRepo)
	ctx := context.Background()

	proveedores := []models.Proveedor{{ID: 1, Nombre: "Ferretera Central"}}
	mockRepo.On("ListarProveedores", mock.Anything).Return(proveedores, nil).Once()

	got, err := catalogoService.ListarProveedores(ctx)

	assert.NoError(t, err)
	assert.Equal(t, proveedores, got)
	mockRepo.AssertExpectations(t)
}
