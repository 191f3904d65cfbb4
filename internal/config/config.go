package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
}

func Load() Config {
	_ = godotenv.Load() // .env is optional

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// In-memory store: all data resets on process restart.
		dsn = ":memory:"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
