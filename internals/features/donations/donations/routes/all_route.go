package route

import (
	donationController "donation_terminal_backend/internals/features/donations/donations/controller"
	donationService "donation_terminal_backend/internals/features/donations/donations/service"

	"github.com/gofiber/fiber/v2"
)

// AllDonationRoutes: endpoint publik untuk terminal donasi.
func AllDonationRoutes(api fiber.Router, svc *donationService.DonationService) {
	donationCtrl := donationController.NewDonationController(svc)

	api.Post("/create-payment-intent", donationCtrl.CreatePaymentIntent) // Validasi nominal + payment intent
	api.Post("/connection-token", donationCtrl.CreateConnectionToken)    // Token untuk card reader
}
