package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	Env        string `env:"APP_ENV" envDefault:"development"`
	SiteURL    string `env:"SITE_URL" envDefault:"http://localhost:8080"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"corporate"`
	DBPath     string `env:"DB_PATH" envDefault:"corporate.db"`

	JWTSecret     string `env:"JWT_SECRET"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Mail    MailConfig
	Storage StorageConfig
	Google  GoogleConfig
}

type MailConfig struct {
	Driver       string `env:"MAIL_DRIVER" envDefault:"log"`
	From         string `env:"MAIL_FROM" envDefault:"noreply@localhost"`
	FromName     string `env:"MAIL_FROM_NAME" envDefault:"Web Sitesi"`
	Admin        string `env:"MAIL_ADMIN"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	ResendAPIKey string `env:"RESEND_API_KEY"`
	QueueSize    int    `env:"MAIL_QUEUE_SIZE" envDefault:"64"`
}

type StorageConfig struct {
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UseS3         bool   `env:"USE_S3" envDefault:"false"`
	S3Bucket      string `env:"S3_BUCKET"`
	S3Region      string `env:"S3_REGION"`
	CloudFrontURL string `env:"CLOUDFRONT_URL"`
}

type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `env:"GOOGLE_REDIRECT_URL" envDefault:"http://localhost:8080/api/auth/google/callback"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
