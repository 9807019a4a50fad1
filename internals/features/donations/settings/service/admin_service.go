package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"donation_terminal_backend/internals/features/donations/settings/dto"
	"donation_terminal_backend/internals/features/donations/settings/model"
	"donation_terminal_backend/internals/features/donations/settings/repository"
)

var (
	ErrUnauthorized  = errors.New("admin key mismatch")
	ErrInvalidConfig = errors.New("invalid donation config")
)

// AdminService mengubah settings donasi, dijaga oleh shared secret ADMIN_KEY.
type AdminService struct {
	repo      repository.SettingsRepository
	adminKey  string
	validator *validator.Validate
}

func NewAdminService(repo repository.SettingsRepository, adminKey string) *AdminService {
	return &AdminService{repo: repo, adminKey: adminKey, validator: validator.New()}
}

// Authorized: ADMIN_KEY kosong berarti tidak ada key yang diterima.
func (s *AdminService) Authorized(suppliedKey string) bool {
	if s.adminKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(suppliedKey), []byte(s.adminKey)) == 1
}

// Update: key dicek lebih dulu, jadi request dengan key salah tidak pernah menyentuh DB.
func (s *AdminService) Update(ctx context.Context, req dto.UpdateConfigRequest, suppliedKey string) error {
	if !s.Authorized(suppliedKey) {
		return ErrUnauthorized
	}
	if err := req.Validate(s.validator); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return s.repo.Set(ctx, model.DonationMode(req.Mode), req.Option1, req.Option2)
}

// Config membaca settings lalu menurunkan daftar nominal.
func Config(ctx context.Context, repo repository.SettingsRepository) (dto.ConfigResponse, error) {
	s, err := repo.Get(ctx)
	if err != nil {
		return dto.ConfigResponse{}, err
	}
	return dto.NewConfigResponse(s.Mode, AllowedAmounts(s)), nil
}
