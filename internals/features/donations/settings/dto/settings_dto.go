package dto

import (
	"github.com/go-playground/validator/v10"

	"donation_terminal_backend/internals/features/donations/settings/model"
)

/* ===================== Response ===================== */

// ConfigResponse: GET /api/config
type ConfigResponse struct {
	Mode    model.DonationMode `json:"mode"`
	Options []int64            `json:"options"`
}

func NewConfigResponse(mode model.DonationMode, options []int64) ConfigResponse {
	if options == nil {
		options = []int64{}
	}
	return ConfigResponse{Mode: mode, Options: options}
}

/* ===================== Request ===================== */

// UpdateConfigRequest: POST /api/admin/update-config
type UpdateConfigRequest struct {
	Mode     string `json:"mode" validate:"required,oneof=single dual"`
	Option1  *int64 `json:"option1" validate:"required,gt=0"`
	Option2  *int64 `json:"option2" validate:"omitempty,gte=0"`
	AdminKey string `json:"adminKey"`
}

func (r *UpdateConfigRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

type UpdateConfigResponse struct {
	Success bool `json:"success"`
}
