package handlers

import (
	"log/slog"
	"net/http"

	service "github.com/inventario-app/inventario-api/internal/services"
	"github.com/inventario-app/inventario-api/internal/utils/response"
)

type EstadisticasHandler struct {
	estadisticasService service.EstadisticasService
}

func NewEstadisticasHandler(estadisticasService service.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{estadisticasService: estadisticasService}
}

// ConteoProveedores responds with the bare count, not an object.
func (h *EstadisticasHandler) ConteoProveedores() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		total, err := h.estadisticasService.ConteoProveedores(r.Context())

		if err != nil {
			slog.Error("Failed to fetch proveedor count", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, total)

	}
}

func (h *EstadisticasHandler) ProductosPorCategoria() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		conteos, err := h.estadisticasService.ProductosPorCategoria(r.Context())

		if err != nil {
			slog.Error("Failed to fetch productos por categoria", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, conteos)

	}
}
