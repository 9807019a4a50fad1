package model

import (
	"time"

	"gorm.io/datatypes"
)

/* ===================== Constants ===================== */

const DonationStatusCreated = "created"

/* ===================== Model ===================== */

// DonationMeta: konteks request saat payment intent dibuat.
type DonationMeta struct {
	RequestID      string `json:"request_id,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// Donation: log append-only untuk setiap payment intent yang berhasil dibuat.
type Donation struct {
	DonationID      uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Amount          int64  `gorm:"column:amount;not null" json:"amount"`
	PaymentIntentID string `gorm:"column:payment_intent_id;type:varchar(255);not null;index" json:"payment_intent_id"`
	Status          string `gorm:"column:status;type:varchar(20);not null;default:'created'" json:"status"`

	PaymentGateway string                           `gorm:"column:payment_gateway;type:varchar(20)" json:"payment_gateway"`
	Metadata       datatypes.JSONType[DonationMeta] `gorm:"column:metadata" json:"metadata"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Donation) TableName() string { return "donations" }
