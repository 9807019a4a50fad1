package route

import (
	settingsController "donation_terminal_backend/internals/features/donations/settings/controller"
	"donation_terminal_backend/internals/features/donations/settings/repository"

	"github.com/gofiber/fiber/v2"
)

// SettingsRoutes: config publik + update config admin.
// adminGuards dipasang di depan route admin (mis. rate limiter).
func SettingsRoutes(api fiber.Router, repo repository.SettingsRepository, adminKey string, adminGuards ...fiber.Handler) {
	ctrl := settingsController.NewSettingsController(repo, adminKey)

	api.Get("/config", ctrl.GetConfig)

	admin := api.Group("/admin", adminGuards...)
	admin.Post("/update-config", ctrl.UpdateConfig)
}
