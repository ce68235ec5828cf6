package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDB     string
	TokenSecret string
	HTTPPort    string
	LogPath     string
	Debug       bool
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "cinemadb"),
		TokenSecret: getEnv("TOKEN_SECRET", "super-secret"),
		HTTPPort:    getEnv("HTTP_PORT", "4000"),
		LogPath:     getEnv("LOG_PATH", "logs/"),
		Debug:       os.Getenv("DEBUG") == "true",
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}
