package database

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"donation_terminal_backend/internals/configs"
	donationModel "donation_terminal_backend/internals/features/donations/donations/model"
	settingsModel "donation_terminal_backend/internals/features/donations/settings/model"
)

// BuildDSN menyusun DSN postgres dari DATABASE_URL (prioritas) atau DB_* terpisah.
// sslmode default mengikuti DB_SSLMODE bila URL tidak menyebutkannya.
func BuildDSN(cfg configs.DatabaseConfig) (string, error) {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "require"
	}

	if rawURL := strings.TrimSpace(cfg.URL); rawURL != "" {
		dsn := rawURL
		if strings.HasPrefix(rawURL, "postgres://") || strings.HasPrefix(rawURL, "postgresql://") {
			parsed, err := pq.ParseURL(rawURL)
			if err != nil {
				return "", fmt.Errorf("parse DATABASE_URL: %w", err)
			}
			dsn = parsed
		}
		if !strings.Contains(dsn, "sslmode=") {
			dsn += " sslmode=" + sslmode
		}
		return dsn + " application_name=donation_terminal", nil
	}

	if cfg.Host == "" || cfg.Name == "" {
		return "", fmt.Errorf("database not configured: set DATABASE_URL or DB_HOST/DB_NAME")
	}

	// Disusun sebagai URL supaya password dengan spasi/kutip ter-escape oleh pq.ParseURL.
	host := cfg.Host
	if cfg.Port != "" {
		host = net.JoinHostPort(cfg.Host, cfg.Port)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     host,
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	dsn, err := pq.ParseURL(u.String())
	if err != nil {
		return "", fmt.Errorf("build DSN from DB_*: %w", err)
	}
	return dsn + " application_name=donation_terminal", nil
}

func ConnectDB(cfg configs.DatabaseConfig) (*gorm.DB, error) {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := Ping(db); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// AutoMigrate membuat tabel settings & donations bila belum ada.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&settingsModel.DonationSettings{},
		&donationModel.Donation{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
