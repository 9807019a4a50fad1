package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"donation_terminal_backend/internals/configs"
	database "donation_terminal_backend/internals/databases"
	"donation_terminal_backend/internals/features/payment/gateway"
	helper "donation_terminal_backend/internals/helpers"
	middlewares "donation_terminal_backend/internals/middlewares"
	routes "donation_terminal_backend/internals/route"
	"donation_terminal_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.FiberErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app, cfg)

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Gagal koneksi database: %v", err)
	}
	database.TunePool(db)
	database.WarmUpQueries(db)

	if cfg.Database.Migrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("❌ AutoMigrate gagal: %v", err)
		}
	}
	if cfg.Database.RunSeeds {
		if err := seeds.RunAllSeeds(db); err != nil {
			log.Fatalf("❌ Seed gagal: %v", err)
		}
	}

	// 💳 Payment gateway; tanpa credential server tetap jalan dengan secret placeholder
	gw, ok := gateway.New(cfg.Payment)
	if !ok {
		log.Printf("⚠️ Credential %s kosong, payment berjalan dalam mode placeholder", cfg.Payment.Provider)
	}

	// ✅ Routes
	routes.SetupRoutes(app, db, cfg, gw)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(db)
}
