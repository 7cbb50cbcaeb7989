package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything main needs to wire the process. Values come
// from the environment, with a .env file loaded first for local runs.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	AllowOrigins string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("ALLOW_ORIGINS", "*")
	viper.AutomaticEnv()

	return &Config{
		Port:         viper.GetString("PORT"),
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		JWTSecret:    viper.GetString("JWT_SECRET"),
		AllowOrigins: viper.GetString("ALLOW_ORIGINS"),
	}
}
