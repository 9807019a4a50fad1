package seeds

import (
	settings "donation_terminal_backend/internals/seeds/settings"

	"gorm.io/gorm"
)

const settingsSeedFile = "internals/seeds/settings/data_settings.json"

func RunAllSeeds(db *gorm.DB) error {
	//* Settings
	return settings.SeedSettingsFromJSON(db, settingsSeedFile)
}
