package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/inventario-app/inventario-api/internal/api/handlers"
	"github.com/inventario-app/inventario-api/internal/api/middleware"
	"github.com/inventario-app/inventario-api/internal/config"
	"github.com/inventario-app/inventario-api/internal/health"
	"github.com/inventario-app/inventario-api/internal/metrics"
	repository "github.com/inventario-app/inventario-api/internal/repositories"
	service "github.com/inventario-app/inventario-api/internal/services"
	"github.com/inventario-app/inventario-api/internal/uploads"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load .env if present, then config
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Upload storage for product photos
	uploadStore, err := uploads.New(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		slog.Error("Error preparing uploads directory", "error", err.Error())
		os.Exit(1)
	}

	productoService := service.NewProductoService(repos.Producto)
	productoHandler := handlers.NewProductoHandler(productoService, uploadStore)
	catalogoService := service.NewCatalogoService(repos.Catalogo)
	catalogoHandler := handlers.NewCatalogoHandler(catalogoService)
	estadisticasService := service.NewEstadisticasService(repos.Estadisticas)
	estadisticasHandler := handlers.NewEstadisticasHandler(estadisticasService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/proveedores", catalogoHandler.ListarProveedores())
	routerMux.HandleFunc("GET /api/categorias", catalogoHandler.ListarCategorias())
	routerMux.HandleFunc("POST /api/productos", productoHandler.CrearProducto())
	routerMux.HandleFunc("GET /api/productos", productoHandler.ListarProductos())
	routerMux.HandleFunc("GET /api/productos/{id}", productoHandler.ObtenerProducto())
	routerMux.HandleFunc("PUT /api/productos/{id}", productoHandler.ActualizarProducto())
	routerMux.HandleFunc("DELETE /api/productos/{id}", productoHandler.EliminarProducto())
	routerMux.HandleFunc("GET /api/productos/categoria/{categoria_id}", productoHandler.ListarPorCategoria())
	routerMux.HandleFunc("GET /api/statistics/proveedores", estadisticasHandler.ConteoProveedores())
	routerMux.HandleFunc("GET /api/statistics/productos-categoria", estadisticasHandler.ProductosPorCategoria())
	routerMux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadStore.Dir()))))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}
