package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/analisis"
	"github.com/tlt-imports/reposicion-api/internal/application/auth"
	"github.com/tlt-imports/reposicion-api/internal/application/carga"
	"github.com/tlt-imports/reposicion-api/internal/application/contenedores"
	"github.com/tlt-imports/reposicion-api/internal/application/cotizaciones"
	"github.com/tlt-imports/reposicion-api/internal/application/estado"
	"github.com/tlt-imports/reposicion-api/internal/application/usecase"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/infrastructure/excel"
	"github.com/tlt-imports/reposicion-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnalisisUC      *analisis.Usecase
	EstadoUC        *estado.Usecase
	CargaUC         *carga.Usecase
	CatalogoUC      *usecase.CatalogoUseCase
	ConfiguracionUC *usecase.ConfiguracionUseCase
	HistoricoUC     *usecase.HistoricoUseCase
	ContenedoresUC  *contenedores.Usecase
	CotizacionesUC  *cotizaciones.Usecase
	AuthUC          *auth.AuthUseCase
	Exportador      *excel.Exportador
	Resumen         *pdf.GeneradorResumen
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth. El login es público y limitado por IP; la administración de
	// usuarios queda para admin.
	loginLimiter := NewRateLimiter(15*time.Minute, 20, nil)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", loginLimiter.Middleware(), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	soloAdmin := RequireRole(entity.RolAdmin)
	operacionChile := RequireRole(entity.RolAdmin, entity.RolChile)

	protected.Post("/auth/register", soloAdmin, authHandler.Register)
	usuarios := protected.Group("/usuarios", soloAdmin)
	usuarios.Get("/", authHandler.ListUsuarios)
	usuarios.Put("/:id", authHandler.UpdateUsuario)
	usuarios.Delete("/:id", authHandler.DeleteUsuario)

	// Análisis de reposición (protegido)
	analisisHandler := NewAnalisisHandler(deps.AnalisisUC)
	protected.Get("/analysis", operacionChile, analisisHandler.Analizar)

	// Workflow de estados (protegido; el rol china también responde cotizaciones)
	estadoHandler := NewEstadoHandler(deps.EstadoUC)
	protected.Post("/status", estadoHandler.Transicionar)
	protected.Post("/status/:sku/excluir", operacionChile, estadoHandler.Excluir)

	// Carga masiva de Excel (protegido)
	cargaHandler := NewCargaHandler(deps.CargaUC)
	protected.Post("/upload", operacionChile, cargaHandler.Subir)
	protected.Post("/process", operacionChile, cargaHandler.Procesar)

	// Catálogo de productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.CatalogoUC)
	productos.Post("/", operacionChile, productoHandler.Crear)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/:sku", productoHandler.Obtener)
	productos.Put("/:sku", operacionChile, productoHandler.Editar)
	productos.Delete("/:sku", operacionChile, productoHandler.Eliminar)

	// Histórico por SKU y llegadas manuales (protegido)
	historico := protected.Group("/historico")
	historicoHandler := NewHistoricoHandler(deps.HistoricoUC)
	historico.Get("/:sku/ventas", historicoHandler.Ventas)
	historico.Get("/:sku/compras", historicoHandler.Compras)
	historico.Get("/:sku/transito", historicoHandler.Transito)
	historico.Get("/:sku/packs", historicoHandler.Packs)
	historico.Post("/llegadas", operacionChile, historicoHandler.RegistrarLlegada)

	// Contenedores (protegido)
	contenedoresGroup := protected.Group("/contenedores")
	contenedorHandler := NewContenedorHandler(deps.ContenedoresUC)
	contenedoresGroup.Post("/", operacionChile, contenedorHandler.Crear)
	contenedoresGroup.Get("/", contenedorHandler.Listar)
	contenedoresGroup.Get("/:id", contenedorHandler.Obtener)
	contenedoresGroup.Patch("/:id", operacionChile, contenedorHandler.Actualizar)
	contenedoresGroup.Delete("/:id", operacionChile, contenedorHandler.Eliminar)

	// Cotizaciones de proveedor (protegido; el rol china las registra)
	cotizacionesGroup := protected.Group("/cotizaciones")
	cotizacionHandler := NewCotizacionHandler(deps.CotizacionesUC)
	cotizacionesGroup.Post("/", cotizacionHandler.Crear)
	cotizacionesGroup.Get("/:sku", cotizacionHandler.ListarPorSKU)
	cotizacionesGroup.Post("/:id/seleccionar", cotizacionHandler.Seleccionar)
	cotizacionesGroup.Delete("/:id", cotizacionHandler.Eliminar)

	// Configuración global (protegido, admin)
	configGroup := protected.Group("/config", soloAdmin)
	configHandler := NewConfiguracionHandler(deps.ConfiguracionUC)
	configGroup.Get("/", configHandler.Get)
	configGroup.Put("/", configHandler.Update)
	configGroup.Post("/reset", configHandler.Reset)

	// Export del análisis (protegido)
	exportGroup := protected.Group("/export", operacionChile)
	exportHandler := NewExportHandler(deps.AnalisisUC, deps.Exportador, deps.Resumen)
	exportGroup.Get("/xlsx", exportHandler.XLSX)
	exportGroup.Get("/pdf", exportHandler.PDF)
}
