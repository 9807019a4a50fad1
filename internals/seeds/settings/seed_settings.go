package settings

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"donation_terminal_backend/internals/features/donations/settings/model"
	"donation_terminal_backend/internals/features/donations/settings/repository"
)

type SettingsSeed struct {
	Mode    model.DonationMode `json:"mode"`
	Option1 *int64             `json:"option1"`
	Option2 *int64             `json:"option2"`
}

// SeedSettingsFromJSON membuat baris settings awal kalau tabel masih kosong.
// Baris yang sudah ada tidak pernah ditimpa.
func SeedSettingsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca seed settings: %w", err)
	}

	var seed SettingsSeed
	if err := sonic.Unmarshal(file, &seed); err != nil {
		return fmt.Errorf("decode seed settings: %w", err)
	}
	if !seed.Mode.IsValid() {
		return fmt.Errorf("seed settings: mode %q tidak dikenal", seed.Mode)
	}

	created, err := repository.Seed(context.Background(), db, seed.Mode, seed.Option1, seed.Option2)
	if err != nil {
		return err
	}
	if created {
		log.Printf("✅ Settings donasi dibuat: mode=%s", seed.Mode)
	} else {
		log.Println("ℹ️ Settings donasi sudah ada, dilewati.")
	}
	return nil
}
