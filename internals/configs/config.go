package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	PaymentProviderStripe   = "stripe"
	PaymentProviderMidtrans = "midtrans"
)

// =======================
// APP CONFIG
// =======================

type PaymentConfig struct {
	Provider          string
	Currency          string
	StripeSecretKey   string
	MidtransServerKey string
	MidtransUseProd   bool
}

// Credential mengembalikan secret milik provider yang aktif ("" = degraded mode).
func (p PaymentConfig) Credential() string {
	switch p.Provider {
	case PaymentProviderMidtrans:
		return p.MidtransServerKey
	default:
		return p.StripeSecretKey
	}
}

type DatabaseConfig struct {
	URL      string
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
	Migrate  bool
	RunSeeds bool
}

type AppConfig struct {
	Port           string
	AdminKey       string
	CorsOrigins    string
	RequestTimeout time.Duration
	Database       DatabaseConfig
	Payment        PaymentConfig
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() *AppConfig {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" && os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running di platform hosting, menggunakan ENV dari sistem")
	}

	cfg := FromEnv()

	if cfg.AdminKey == "" {
		log.Println("❌ ADMIN_KEY belum diset! Update config admin akan selalu ditolak.")
	} else {
		log.Println("✅ ADMIN_KEY berhasil dimuat.")
	}

	if cfg.Payment.Credential() == "" {
		log.Printf("⚠️ Credential payment provider %q kosong, endpoint pembayaran jalan dalam mode placeholder", cfg.Payment.Provider)
	} else {
		log.Printf("✅ Payment provider %q berhasil dikonfigurasi.", cfg.Payment.Provider)
	}

	return cfg
}

// FromEnv membaca konfigurasi dari environment proses tanpa menyentuh .env.
func FromEnv() *AppConfig {
	provider := strings.ToLower(strings.TrimSpace(GetEnv("PAYMENT_PROVIDER", PaymentProviderStripe)))
	if provider != PaymentProviderMidtrans {
		provider = PaymentProviderStripe
	}

	return &AppConfig{
		Port:           GetEnv("PORT", "4242"),
		AdminKey:       GetEnv("ADMIN_KEY"),
		CorsOrigins:    GetEnv("CORS_ALLOW_ORIGINS", "*"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 15*time.Second),
		Database: DatabaseConfig{
			URL:      GetEnv("DATABASE_URL"),
			User:     GetEnv("DB_USER"),
			Password: GetEnv("DB_PASSWORD"),
			Host:     GetEnv("DB_HOST"),
			Port:     GetEnv("DB_PORT", "5432"),
			Name:     GetEnv("DB_NAME"),
			SSLMode:  GetEnv("DB_SSLMODE", "require"),
			Migrate:  getBool("DB_AUTO_MIGRATE", false),
			RunSeeds: getBool("RUN_SEEDS", false),
		},
		Payment: PaymentConfig{
			Provider:          provider,
			Currency:          strings.ToLower(GetEnv("PAYMENT_CURRENCY", "usd")),
			StripeSecretKey:   GetEnv("STRIPE_SECRET_KEY"),
			MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY"),
			MidtransUseProd:   getBool("MIDTRANS_USE_PROD", false),
		},
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("[WARN] invalid bool for %s=%q, using %v", key, v, def)
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("[WARN] invalid duration for %s=%q, using %s", key, v, def)
	}
	return def
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
