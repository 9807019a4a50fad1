package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"donation_terminal_backend/internals/features/donations/settings/model"
)

var ErrSettingsNotFound = errors.New("donation settings row not found")

// settingsRowID: tabel settings hanya punya satu baris.
const settingsRowID = 1

type SettingsRepository interface {
	Get(ctx context.Context) (*model.DonationSettings, error)
	Set(ctx context.Context, mode model.DonationMode, option1, option2 *int64) error
}

type settingsRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db, now: time.Now}
}

func (r *settingsRepository) Get(ctx context.Context) (*model.DonationSettings, error) {
	var s model.DonationSettings
	if err := r.db.WithContext(ctx).First(&s, settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Set menimpa baris settings tanpa cek versi (last write wins).
// option2 disimpan NULL untuk mode single atau nilai kosong.
func (r *settingsRepository) Set(ctx context.Context, mode model.DonationMode, option1, option2 *int64) error {
	if mode == model.DonationModeSingle || option2 == nil || *option2 == 0 {
		option2 = nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.DonationSettings{}).
		Where("id = ?", settingsRowID).
		Updates(map[string]any{
			"mode":       mode,
			"option1":    option1,
			"option2":    option2,
			"updated_at": r.now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSettingsNotFound
	}
	return nil
}

// Seed membuat baris settings bila belum ada; dipakai oleh seeder.
func Seed(ctx context.Context, db *gorm.DB, mode model.DonationMode, option1, option2 *int64) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.DonationSettings{}).
		Where("id = ?", settingsRowID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	s := model.DonationSettings{
		ID:        settingsRowID,
		Mode:      mode,
		Option1:   option1,
		Option2:   option2,
		UpdatedAt: time.Now(),
	}
	if err := db.WithContext(ctx).Create(&s).Error; err != nil {
		return false, err
	}
	return true, nil
}
