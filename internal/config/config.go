package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string
	UploadDir   string

	JWTIssuer         string
	JWTAccessSecret   string
	AccessTokenTTLMin int

	// WhatsAppContact is the shop number that checkout deep links open a chat
	// with. AdminWhatsApp marks the one account allowed to add products.
	WhatsAppContact string
	AdminWhatsApp   string

	AppBaseURL string
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":5000"),

		DatabaseURL: get("DATABASE_URL", ""),
		UploadDir:   get("UPLOAD_DIR", "uploads"),

		JWTIssuer:         get("JWT_ISSUER", "mkv-co"),
		JWTAccessSecret:   get("JWT_ACCESS_SECRET", ""),
		AccessTokenTTLMin: getInt("ACCESS_TOKEN_TTL_MIN", 60),

		WhatsAppContact: get("WHATSAPP_CONTACT", "7598137660"),
		AdminWhatsApp:   get("ADMIN_WHATSAPP", ""),

		AppBaseURL: get("APP_BASE_URL", "http://localhost:5000"),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
