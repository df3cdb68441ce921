package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config carries every path and tunable the service needs. It is built once
// at startup and passed down explicitly; nothing reads the environment after
// Load returns.
type Config struct {
	Port            string
	TemplateDir     string
	DefaultTemplate string // filename inside TemplateDir
	OutputDir       string
	FontsDir        string
	BaseURL         string // public base URL used for share links
}

// Load reads an optional .env file and assembles the configuration with
// defaults matching the standard deployment layout.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}
	return &Config{
		Port:            getEnv("PORT", "8080"),
		TemplateDir:     getEnv("TEMPLATE_DIR", "public"),
		DefaultTemplate: getEnv("DEFAULT_TEMPLATE", "template1.png"),
		OutputDir:       getEnv("OUTPUT_DIR", "output"),
		FontsDir:        getEnv("FONTS_DIR", "fonts"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
