package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	APP_URL     string
	SIGN_IN_URL string
	CORS_ORIGIN string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	RESEND_API_KEY string
	EMAIL_FROM     string

	RAPIDAPI_KEY string

	STRIPE_SECRET_KEY       string
	STRIPE_WEBHOOK_SECRET   string
	STRIPE_PREMIUM_PRICE_ID string

	UPLOADS_DIR        string
	PUBLIC_UPLOADS_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	APP_URL = getEnv("APP_URL", "http://localhost:5173")
	SIGN_IN_URL = getEnv("SIGN_IN_URL", APP_URL+"/auth")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", APP_URL)

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	RESEND_API_KEY = getEnv("RESEND_API_KEY", "")
	EMAIL_FROM = getEnv("EMAIL_FROM", "ToadToe <contact@toadtoe.online>")

	RAPIDAPI_KEY = getEnv("RAPIDAPI_KEY", "")

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")
	STRIPE_PREMIUM_PRICE_ID = getEnv("STRIPE_PREMIUM_PRICE_ID", "")

	UPLOADS_DIR = getEnv("UPLOADS_DIR", "./uploads")
	PUBLIC_UPLOADS_URL = getEnv("PUBLIC_UPLOADS_URL", "http://localhost:"+PORT+"/uploads")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
