package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN    string
	LogFile  string
	SeedDemo bool
}

func Load() Config {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "boutique.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./boutique.log"
	}
	seed := os.Getenv("SEED_DEMO") == "1"

	cfg := Config{DBDSN: dsn, LogFile: logFile, SeedDemo: seed}
	log.Printf("[config] DB_DSN=%s LOG_FILE=%s SEED_DEMO=%v", cfg.DBDSN, cfg.LogFile, cfg.SeedDemo)
	return cfg
}
