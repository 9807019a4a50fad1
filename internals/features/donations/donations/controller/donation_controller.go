package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"donation_terminal_backend/internals/constants"
	"donation_terminal_backend/internals/features/donations/donations/dto"
	"donation_terminal_backend/internals/features/donations/donations/model"
	donationService "donation_terminal_backend/internals/features/donations/donations/service"
	helper "donation_terminal_backend/internals/helpers"
)

/*
	========================================================
	  Controller

========================================================
*/
type DonationController struct {
	Service   *donationService.DonationService
	Validator *validator.Validate
}

func NewDonationController(svc *donationService.DonationService) *DonationController {
	return &DonationController{Service: svc, Validator: validator.New()}
}

// POST /api/create-payment-intent
func (ctrl *DonationController) CreatePaymentIntent(c *fiber.Ctx) error {
	var body dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&body); err != nil {
		log.Println("[ERROR] BodyParser failed:", err)
		return fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidAmount)
	}
	if err := body.Validate(ctrl.Validator); err != nil {
		log.Println("[ERROR] validasi amount gagal:", err)
		return fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidAmount)
	}

	meta := model.DonationMeta{
		RequestID:      requestID(c),
		IdempotencyKey: strings.TrimSpace(c.Get(constants.HeaderIdempotencyKey)),
	}

	secret, err := ctrl.Service.CreatePaymentIntent(c.UserContext(), body.Amount, meta)
	if err != nil {
		if errors.Is(err, donationService.ErrInvalidAmount) {
			return fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidAmount)
		}
		log.Printf("[ERROR] create payment intent req=%s amount=%d: %v", meta.RequestID, body.Amount, err)
		return fiber.NewError(fiber.StatusInternalServerError, constants.ErrPaymentIntentFailed)
	}

	return helper.JsonOK(c, dto.CreatePaymentIntentResponse{ClientSecret: secret})
}

// POST /api/connection-token
func (ctrl *DonationController) CreateConnectionToken(c *fiber.Ctx) error {
	secret, err := ctrl.Service.CreateConnectionToken(
		c.UserContext(),
		strings.TrimSpace(c.Get(constants.HeaderIdempotencyKey)),
	)
	if err != nil {
		log.Printf("[ERROR] create connection token req=%s: %v", requestID(c), err)
		return fiber.NewError(fiber.StatusInternalServerError, constants.ErrConnectionTokenFailed)
	}

	return helper.JsonOK(c, dto.ConnectionTokenResponse{Secret: secret})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("reqid").(string); ok {
		return id
	}
	return ""
}
