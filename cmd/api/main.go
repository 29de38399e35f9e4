package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// stores agrupa los adaptadores del driver elegido.
type stores struct {
	items     repository.ItemRepository
	merchants repository.MerchantRepository
	txRunner  catalog.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	st, err := openStores(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("abrir almacén")
	}
	defer st.close()

	app := newApp(cfg, st, log)

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

// newApp arma la aplicación fiber con middleware, docs, health, métricas y rutas.
func newApp(cfg *config.Config, st stores, log *logger.Logger) *fiber.App {
	itemUC := usecase.NewItemUseCase(st.items, st.merchants)
	merchantUC := usecase.NewMerchantUseCase(st.merchants)
	deleteItemUC := catalog.NewDeleteItemUseCase(st.txRunner, log.Named("catalog"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	httpRouter.RegisterMiddleware(app, log.Named("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Catálogo API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		MerchantUC: merchantUC,
		DeleteItem: deleteItemUC,
	})
	return app
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memory.NewStore()
		if cfg.Store.SeedDir != "" {
			if err := seedMemory(ctx, store, cfg.Store, log); err != nil {
				return stores{}, err
			}
		}
		return stores{
			items:     store.Items(),
			merchants: store.Merchants(),
			txRunner:  store,
			close:     func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString(), log); err != nil {
			return stores{}, fmt.Errorf("migraciones: %w", err)
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return stores{}, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return stores{
		items:     postgres.NewItemRepository(pool),
		merchants: postgres.NewMerchantRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

// seedMemory carga los CSV de STORE_SEED_DIR en el almacén recién creado.
func seedMemory(ctx context.Context, store *memory.Store, cfg config.StoreConfig, log *logger.Logger) error {
	res, err := seed.Load(ctx, cfg.SeedDir, seed.Repos{
		Merchants: store.Merchants(),
		Customers: store.Customers(),
		Items:     store.Items(),
		Invoices:  store.Invoices(),
	}, seed.Options{Latin1: cfg.SeedLatin1, Cents: cfg.SeedCents})
	if err != nil {
		return fmt.Errorf("cargar %s: %w", cfg.SeedDir, err)
	}

	ev := log.Info().Str("dir", cfg.SeedDir)
	for _, t := range seed.Tables {
		if n, ok := res.Rows[t.Name]; ok {
			ev = ev.Int(t.Name, n)
		}
	}
	ev.Msg("almacén en memoria cargado")
	if len(res.EmptyInvoices) > 0 {
		log.Warn().Int("invoices", len(res.EmptyInvoices)).Msg("facturas sin líneas en los CSV")
	}
	return nil
}
