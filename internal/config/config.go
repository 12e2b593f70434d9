// internal/config/config.go
package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the application, loaded from
// environment variables (a .env file is read by the cmd entrypoints).
type Config struct {
	ServerAddr string
	DB         DBConfig
	Brevo      BrevoConfig
	Admin      AdminConfig
}

// DBConfig holds Postgres connection settings.
type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

// DSN builds the Postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name,
	)
}

// BrevoConfig holds the transactional-email API settings.
type BrevoConfig struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

// AdminConfig holds the admin credential checked server-side at login.
type AdminConfig struct {
	Password string
}

// Load reads configuration from the environment, applying defaults for
// everything except secrets.
func Load() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		DB: DBConfig{
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "campusconnect"),
		},
		Brevo: BrevoConfig{
			APIKey:      os.Getenv("BREVO_API_KEY"),
			SenderEmail: getEnv("SENDER_EMAIL", "noreply@lovableai.com"),
			SenderName:  getEnv("SENDER_NAME", "CampusConnect Team"),
		},
		Admin: AdminConfig{
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
