package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"donation_terminal_backend/internals/constants"
	"donation_terminal_backend/internals/features/donations/settings/dto"
	"donation_terminal_backend/internals/features/donations/settings/repository"
	settingsService "donation_terminal_backend/internals/features/donations/settings/service"
	helper "donation_terminal_backend/internals/helpers"
)

type SettingsController struct {
	Repo  repository.SettingsRepository
	Admin *settingsService.AdminService
}

func NewSettingsController(repo repository.SettingsRepository, adminKey string) *SettingsController {
	return &SettingsController{
		Repo:  repo,
		Admin: settingsService.NewAdminService(repo, adminKey),
	}
}

// GET /api/config
func (ctrl *SettingsController) GetConfig(c *fiber.Ctx) error {
	cfg, err := settingsService.Config(c.UserContext(), ctrl.Repo)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			log.Println("[ERROR] ❌ baris settings donasi tidak ada, seed tabel settings dulu")
		} else {
			log.Println("[ERROR] gagal ambil settings donasi:", err)
		}
		return fiber.NewError(fiber.StatusInternalServerError, constants.ErrConfigUnavailable)
	}
	return helper.JsonOK(c, cfg)
}

// POST /api/admin/update-config
func (ctrl *SettingsController) UpdateConfig(c *fiber.Ctx) error {
	var body dto.UpdateConfigRequest
	if err := c.BodyParser(&body); err != nil {
		log.Println("[ERROR] BodyParser failed:", err)
		return fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidRequestBody)
	}

	err := ctrl.Admin.Update(c.UserContext(), body, body.AdminKey)
	switch {
	case err == nil:
		log.Printf("[INFO] ✅ settings donasi diubah: mode=%s ip=%s", body.Mode, c.IP())
		return helper.JsonOK(c, dto.UpdateConfigResponse{Success: true})
	case errors.Is(err, settingsService.ErrUnauthorized):
		log.Printf("[WARN] admin key salah dari ip=%s", c.IP())
		return fiber.NewError(fiber.StatusUnauthorized, constants.ErrUnauthorized)
	case errors.Is(err, settingsService.ErrInvalidConfig):
		return fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidConfig)
	default:
		log.Println("[ERROR] gagal update settings donasi:", err)
		return fiber.NewError(fiber.StatusInternalServerError, constants.ErrConfigUpdateFailed)
	}
}
