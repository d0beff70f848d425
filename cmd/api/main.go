package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tlt-imports/reposicion-api/internal/application/analisis"
	"github.com/tlt-imports/reposicion-api/internal/application/auth"
	"github.com/tlt-imports/reposicion-api/internal/application/carga"
	"github.com/tlt-imports/reposicion-api/internal/application/contenedores"
	"github.com/tlt-imports/reposicion-api/internal/application/cotizaciones"
	"github.com/tlt-imports/reposicion-api/internal/application/estado"
	"github.com/tlt-imports/reposicion-api/internal/application/usecase"
	"github.com/tlt-imports/reposicion-api/internal/infrastructure/excel"
	infrapdf "github.com/tlt-imports/reposicion-api/internal/infrastructure/pdf"
	"github.com/tlt-imports/reposicion-api/internal/infrastructure/postgres"
	"github.com/tlt-imports/reposicion-api/internal/infrastructure/storage"
	httpRouter "github.com/tlt-imports/reposicion-api/internal/interfaces/http"
	"github.com/tlt-imports/reposicion-api/pkg/config"
	"github.com/tlt-imports/reposicion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	transitoRepo := postgres.NewTransitoRepository(pool)
	packRepo := postgres.NewPackRepository(pool)
	configRepo := postgres.NewConfiguracionRepository(pool)
	contenedorRepo := postgres.NewContenedorRepository(pool)
	cotizacionRepo := postgres.NewCotizacionRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	almacen, err := storage.NewMinioAlmacen(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al bucket de cargas")
	}

	estimador := analisis.NewEstimador(ventaRepo, compraRepo, nil)
	analisisUC := analisis.NewUsecase(productoRepo, transitoRepo, configRepo, estimador, nil)
	estadoUC := estado.NewUsecase(productoRepo, configRepo, nil)
	cargaUC := carga.NewUsecase(almacen, excel.NewLector(), txRunner, excel.ParseFecha, nil, log.Componente("carga"))
	catalogoUC := usecase.NewCatalogoUseCase(productoRepo)
	configuracionUC := usecase.NewConfiguracionUseCase(configRepo)
	historicoUC := usecase.NewHistoricoUseCase(ventaRepo, compraRepo, transitoRepo, packRepo, productoRepo)
	contenedoresUC := contenedores.NewUsecase(contenedorRepo, txRunner, nil)
	cotizacionesUC := cotizaciones.NewUsecase(cotizacionRepo, productoRepo, nil)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reposición API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AnalisisUC:      analisisUC,
		EstadoUC:        estadoUC,
		CargaUC:         cargaUC,
		CatalogoUC:      catalogoUC,
		ConfiguracionUC: configuracionUC,
		HistoricoUC:     historicoUC,
		ContenedoresUC:  contenedoresUC,
		CotizacionesUC:  cotizacionesUC,
		AuthUC:          authUC,
		Exportador:      excel.NewExportador(),
		Resumen:         infrapdf.NewGeneradorResumen(),
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
