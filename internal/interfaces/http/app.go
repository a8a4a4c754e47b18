package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/metrics"
	"github.com/jhoicas/mm-inventario/pkg/logger"
)

// AppOptions configuración de la app fiber.
type AppOptions struct {
	Name     string
	DocsPath string // swagger.json; se ignora si no existe
	Logger   *logger.Logger
	Metrics  *metrics.Recorder // nil = sin /metrics
}

// NewApp arma la app con recover, log de peticiones, /health, /metrics, /docs y las rutas de la API.
func NewApp(opts AppOptions, deps RouterDeps) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())

	var obs HTTPObserver
	if opts.Metrics != nil {
		obs = opts.Metrics
	}
	app.Use(RequestLogger(log, obs))

	// Swagger UI en local: http://localhost:<port>/docs
	if opts.DocsPath != "" {
		if _, err := os.Stat(opts.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: opts.DocsPath,
				Path:     "docs",
				Title:    "MM Inventario API",
			}))
		} else {
			log.Warn().Str("path", opts.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})
	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics.Handler()))
	}

	Router(app, deps)
	return app
}
