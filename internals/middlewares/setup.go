package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"

	"donation_terminal_backend/internals/configs"
	"donation_terminal_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App, cfg *configs.AppConfig) {
	app.Use(RecoveryMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(RequestIDMiddleware(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(GlobalRateLimiter())
}
