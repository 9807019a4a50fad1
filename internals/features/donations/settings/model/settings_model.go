package model

import "time"

/* ===================== Constants ===================== */

type DonationMode string

const (
	DonationModeSingle DonationMode = "single"
	DonationModeDual   DonationMode = "dual"
)

func (m DonationMode) IsValid() bool {
	return m == DonationModeSingle || m == DonationModeDual
}

/* ===================== Model ===================== */

// DonationSettings adalah konfigurasi donasi (tabel satu baris).
// Nominal dalam satuan terkecil mata uang (cent / rupiah).
type DonationSettings struct {
	ID        uint         `gorm:"column:id;primaryKey" json:"-"`
	Mode      DonationMode `gorm:"column:mode;type:varchar(10);not null;default:'single'" json:"mode"`
	Option1   *int64       `gorm:"column:option1" json:"option1"`
	Option2   *int64       `gorm:"column:option2" json:"option2,omitempty"`
	UpdatedAt time.Time    `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

func (DonationSettings) TableName() string { return "settings" }
