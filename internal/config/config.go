package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	CloudinaryURL string
	GelfAddr      string
	FrontendURL   string
	SendGridKey   string
	FromEmail     string
}

func Load() *Config {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:      getEnv("PORT_ADDR", ":5000"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "renuhealthcare"),
		JWTSecret:     getEnv("JWT_SECRET_KEY", "internhub-dev-secret-change-me"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		GelfAddr:      getEnv("GELF_ADDR", ""),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),
		SendGridKey:   getEnv("SENDGRID_API_KEY", ""),
		FromEmail:     getEnv("EMAIL_USER", "noreply@rshefoundation.org"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
