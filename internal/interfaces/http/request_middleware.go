package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mm-inventario/pkg/logger"
)

// HTTPObserver recibe una observación por petición atendida (métricas).
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RequestLogger registra cada petición y la reporta a obs (puede ser nil).
// Resuelve el error del handler aquí para registrar el código final.
func RequestLogger(log *logger.Logger, obs HTTPObserver) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		if obs != nil {
			obs.ObserveHTTP(c.Method(), route, status, elapsed)
		}
		ev := log.Debug()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("petición")
		return nil
	}
}
