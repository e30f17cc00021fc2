package config

import (
	"os"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Mail     MailConfig
	Images   ImagesConfig
}

type ServerConfig struct {
	Port        string
	FrontendURL string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type AuthConfig struct {
	SecretKey     string
	ConfirmSalt   string
	AccessTTL     string
	RefreshTTL    string
	ConfirmMaxAge string
}

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type ImagesConfig struct {
	UploadURL string
	APIKey    string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getenv("PORT", "8080"),
			FrontendURL: os.Getenv("FRONTEND_URL"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Auth: AuthConfig{
			SecretKey:     os.Getenv("SECRET_KEY"),
			ConfirmSalt:   os.Getenv("SECURITY_PASSWORD_SALT"),
			AccessTTL:     getenv("JWT_ACCESS_TTL", "2h"),
			RefreshTTL:    getenv("JWT_REFRESH_TTL", "720h"),
			ConfirmMaxAge: getenv("CONFIRM_MAX_AGE", "1h"),
		},
		Mail: MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "noreply@cocktail-bar"),
		},
		Images: ImagesConfig{
			UploadURL: os.Getenv("IMAGE_UPLOAD_URL"),
			APIKey:    os.Getenv("IMAGE_UPLOAD_KEY"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
