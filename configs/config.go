package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// Slip header and UPI QR on the preview.
	StallName    string
	StallTagline string
	UPIPayeeID   string

	UploadDir string

	// First-run owner account; seeding is skipped when unset.
	OwnerUsername string
	OwnerPassword string

	PrinterEnabled bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "stall.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         time.Duration(24) * time.Hour,
		StallName:      getEnv("STALL_NAME", "STREET FOOD & CAFE"),
		StallTagline:   getEnv("STALL_TAGLINE", "Fresh & Tasty"),
		UPIPayeeID:     os.Getenv("UPI_PAYEE_ID"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		OwnerUsername:  os.Getenv("OWNER_USERNAME"),
		OwnerPassword:  os.Getenv("OWNER_PASSWORD"),
		PrinterEnabled: getEnv("PRINTER", "log") != "off",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
