// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"donation_terminal_backend/internals/configs"
	donationRepo "donation_terminal_backend/internals/features/donations/donations/repository"
	donationRoute "donation_terminal_backend/internals/features/donations/donations/routes"
	donationService "donation_terminal_backend/internals/features/donations/donations/service"
	settingsRepo "donation_terminal_backend/internals/features/donations/settings/repository"
	settingsRoute "donation_terminal_backend/internals/features/donations/settings/route"
	"donation_terminal_backend/internals/features/payment/gateway"
	middlewares "donation_terminal_backend/internals/middlewares"
)

var startTime = time.Now()

// SetupRoutes memasang semua route. gw nil = mode placeholder (credential gateway kosong).
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig, gw gateway.PaymentGateway) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	settings := settingsRepo.NewSettingsRepository(db)
	donations := donationRepo.NewDonationRepository(db)
	svc := donationService.NewDonationService(settings, donations, gw)

	log.Println("[INFO] Mounting Settings routes...")
	settingsRoute.SettingsRoutes(api, settings, cfg.AdminKey, middlewares.AdminRateLimiter())

	log.Println("[INFO] Mounting Donation routes...")
	donationRoute.AllDonationRoutes(api, svc)
}
