package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	appErrors "github.com/inventario-app/inventario-api/internal/errors"
	"github.com/inventario-app/inventario-api/internal/models"
	service "github.com/inventario-app/inventario-api/internal/services"
	"github.com/inventario-app/inventario-api/internal/uploads"
	"github.com/inventario-app/inventario-api/internal/utils/response"
)

// memory ceiling for multipart parsing; larger parts spill to temp files
const maxMultipartMemory = 32 << 20

type ProductoHandler struct {
	productoService service.ProductoService
	uploadStore     *uploads.Store
	validator       *validator.Validate
}

func NewProductoHandler(productoService service.ProductoService, uploadStore *uploads.Store) *ProductoHandler {
	return &ProductoHandler{productoService: productoService, uploadStore: uploadStore, validator: validator.New()}
}

func (h *ProductoHandler) CrearProducto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			response.Error(w, appErrors.BadRequestError("Invalid form data"))
			return
		}

		// Zero is a legal stored value for the numeric fields, so their
		// required-ness is judged on the raw form value, not the parsed number.
		if missing := missingFormValues(r, "precio", "stock", "categoria_id", "proveedor_id"); len(missing) > 0 {
			response.MissingFieldsError(w, missing)
			return
		}

		req := models.CrearProductoRequest{
			Nombre:      r.FormValue("nombre"),
			Descripcion: r.FormValue("descripcion"),
		}

		var err error
		if req.Precio, err = parseFormFloat(r.FormValue("precio")); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid precio"))
			return
		}
		if req.Stock, err = parseFormInt(r.FormValue("stock")); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid stock"))
			return
		}
		if req.CategoriaID, err = parseFormInt(r.FormValue("categoria_id")); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid categoria_id"))
			return
		}
		if req.ProveedorID, err = parseFormInt(r.FormValue("proveedor_id")); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid proveedor_id"))
			return
		}

		// Presence checks only; the numeric fields were already covered above.
		if err := h.validator.Struct(req); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, appErrors.ValidationError("Invalid input data"))
			return
		}

		// The photo is filtered and stored before any database interaction.
		foto, ok := h.saveFoto(w, r)
		if !ok {
			return
		}
		req.Foto = foto

		result, err := h.productoService.CrearProducto(r.Context(), &req)

		if err != nil {
			slog.Error("Error during producto creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Producto created successfully", slog.Int64("productoId", result.InsertID))
		response.WriteJson(w, http.StatusCreated, result)

	}
}

func (h *ProductoHandler) ListarProductos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productos, err := h.productoService.ListarProductos(r.Context())

		if err != nil {
			slog.Error("Failed to fetch productos", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, productos)

	}
}

// ObtenerProducto responds with a sequence of zero or one elements; a
// missing id is an empty array with 200, never a 404.
func (h *ProductoHandler) ObtenerProducto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)

		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid producto id"))
			return
		}

		productos, err := h.productoService.ObtenerProductoPorID(r.Context(), id)

		if err != nil {
			slog.Error("Failed to fetch producto", slog.Int64("id", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, productos)

	}
}

func (h *ProductoHandler) ListarPorCategoria() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categoriaID, err := strconv.ParseInt(r.PathValue("categoria_id"), 10, 64)

		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid categoria_id"))
			return
		}

		productos, err := h.productoService.ListarProductosPorCategoria(r.Context(), categoriaID)

		if err != nil {
			slog.Error("Failed to fetch productos by categoria", slog.Int64("categoriaId", categoriaID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, productos)

	}
}

func (h *ProductoHandler) ActualizarProducto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)

		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid producto id"))
			return
		}

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			response.Error(w, appErrors.BadRequestError("Invalid form data"))
			return
		}

		req := models.ActualizarProductoRequest{
			Nombre:      r.FormValue("nombre"),
			Descripcion: r.FormValue("descripcion"),
		}

		if req.Precio, err = parseFormFloat(r.FormValue("precio")); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid precio"))
			return
		}
		if req.Stock, err = parseFormInt(r.FormValue("stock")); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid stock"))
			return
		}
		if req.CategoriaID, err = parseFormInt(r.FormValue("categoria_id")); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid categoria_id"))
			return
		}
		if req.ProveedorID, err = parseFormInt(r.FormValue("proveedor_id")); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid proveedor_id"))
			return
		}

		foto, ok := h.saveFoto(w, r)
		if !ok {
			return
		}
		if foto != nil {
			req.Foto = *foto
		}

		result, err := h.productoService.ActualizarProducto(r.Context(), id, &req)

		if err != nil {
			slog.Error("Error during producto update", slog.Int64("id", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Producto updated successfully", slog.Int64("productoId", id), slog.Int64("affectedRows", result.AffectedRows))
		response.WriteJson(w, http.StatusOK, result)

	}
}

func (h *ProductoHandler) EliminarProducto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)

		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid producto id"))
			return
		}

		result, err := h.productoService.EliminarProducto(r.Context(), id)

		if err != nil {
			slog.Error("Error during producto deletion", slog.Int64("id", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, result)

	}
}

// saveFoto stores an optional uploaded photo. It writes the HTTP error
// itself and reports ok=false when the request must not proceed; a nil
// filename with ok=true means no photo was sent.
func (h *ProductoHandler) saveFoto(w http.ResponseWriter, r *http.Request) (*string, bool) {
	file, header, err := r.FormFile("foto")

	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, true
	}

	if err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid foto upload"))
		return nil, false
	}

	defer file.Close()

	name, err := h.uploadStore.Save(file, header)
	if err != nil {
		if errors.Is(err, uploads.ErrNotImage) || errors.Is(err, uploads.ErrTooLarge) {
			response.Error(w, appErrors.UploadError(err.Error()))
			return nil, false
		}

		slog.Error("Failed to store upload", slog.String("error", err.Error()))
		response.Error(w, appErrors.InternalError("Failed to store upload"))
		return nil, false
	}

	return &name, true
}

func missingFormValues(r *http.Request, names ...string) []string {
	var missing []string

	for _, name := range names {
		if r.FormValue(name) == "" {
			missing = append(missing, name)
		}
	}

	return missing
}

// Empty form values mean "not provided", so they parse to the zero value.
func parseFormFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}

func parseFormInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	return strconv.ParseInt(s, 10, 64)
}
