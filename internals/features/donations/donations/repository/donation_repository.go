package repository

import (
	"context"

	"gorm.io/gorm"

	"donation_terminal_backend/internals/features/donations/donations/model"
)

// DonationRepository hanya bisa append; tidak ada update/delete dari aplikasi.
type DonationRepository interface {
	Append(ctx context.Context, d *model.Donation) error
}

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Append(ctx context.Context, d *model.Donation) error {
	if d.Status == "" {
		d.Status = model.DonationStatusCreated
	}
	return r.db.WithContext(ctx).Create(d).Error
}
