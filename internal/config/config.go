package config

import (
	"os"
)

type S3Config struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	Bucket           string
	CloudFrontDomain string
}

type ResendConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port        string
	DatabaseURL string
	FrontendURL string
	CORSOrigins string
	S3          S3Config
	Resend      ResendConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
	}

	cfg.S3.Region = getEnv("AWS_REGION", "us-east-1")
	cfg.S3.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	cfg.S3.Bucket = os.Getenv("S3_BUCKET_NAME")
	cfg.S3.CloudFrontDomain = os.Getenv("CLOUDFRONT_DOMAIN")

	cfg.Resend.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Resend.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Resend.FromName = getEnv("EMAIL_FROM_NAME", "Best Moments")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
