package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/ranli8/fit8/internal/api"
	"github.com/ranli8/fit8/internal/cli"
	"github.com/ranli8/fit8/internal/db"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "fit8.db"))

	if len(os.Args) > 1 {
		runSubcommand(os.Args[1:], dbPath)
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	port := getEnv("PORT", "8080")
	programStart := parseProgramStart(getEnv("PROGRAM_START", ""), location)

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, location)
	if err := handler.Seed(programStart); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Fit8",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	// Server-side log of every unlock, independent of connected clients.
	go func() {
		for event := range handler.UnlockEvents() {
			log.Printf("achievement unlocked: %s (+%d points)", event.Achievement.Title, event.Achievement.Points)
		}
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Fit8 listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runSubcommand(args []string, dbPath string) {
	switch args[0] {
	case "reset-pin":
		if err := cli.RunResetPINCommand(dbPath); err != nil {
			log.Fatalf("reset-pin failed: %v", err)
		}
	case "clear-data":
		confirmed := len(args) > 1 && args[1] == "--yes"
		if err := cli.RunClearDataCommand(dbPath, confirmed); err != nil {
			log.Fatalf("clear-data failed: %v", err)
		}
	default:
		log.Fatalf("unknown command %q (expected reset-pin or clear-data)", args[0])
	}
}

// parseProgramStart falls back to today, so a fresh install starts week 1
// immediately.
func parseProgramStart(raw string, location *time.Location) time.Time {
	if raw == "" {
		return time.Now().In(location)
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		log.Printf("invalid PROGRAM_START %q, using today", raw)
		return time.Now().In(location)
	}
	return parsed
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
