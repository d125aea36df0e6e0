package handlers

import (
	"log/slog"
	"net/http"

	service "github.com/inventario-app/inventario-api/internal/services"
	"github.com/inventario-app/inventario-api/internal/utils/response"
)

type CatalogoHandler struct {
	catalogoService service.CatalogoService
}

func NewCatalogoHandler(catalogoService service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{catalogoService: catalogoService}
}

func (h *CatalogoHandler) ListarCategorias() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categorias, err := h.catalogoService.ListarCategorias(r.Context())

		if err != nil {
			slog.Error("Failed to fetch categorias", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, categorias)

	}
}

func (h *CatalogoHandler) ListarProveedores() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		proveedores, err := h.catalogoService.ListarProveedores(r.Context())

		if err != nil {
			slog.Error("Failed to fetch proveedores", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, proveedores)

	}
}
