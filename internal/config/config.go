package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config структура конфигурации
type Config struct {
	Port               string
	AppEnv             string
	DatabaseURL        string // учётная запись только для чтения
	ServiceDatabaseURL string // привилегированная учётная запись для записи
	ProfileTokenSecret string
	FeedCacheTTL       time.Duration
	DatabaseConfig     DatabaseConfig
	CloudinaryConfig   CloudinaryConfig
}

// DatabaseConfig содержит конфигурацию базы данных
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	ServiceUser     string
	ServicePassword string
	Name            string
	SSLMode         string
}

// CloudinaryConfig содержит конфигурацию для Cloudinary
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// LoadConfig загружает переменные из .env
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	dbConfig := DatabaseConfig{
		Host:            getEnv("PGHOST", "localhost"),
		Port:            getEnv("PGPORT", "5432"),
		User:            getEnv("PGUSER", "goguma_reader"),
		Password:        getEnv("PGPASSWORD", ""),
		ServiceUser:     getEnv("PGSERVICE_USER", "goguma_service"),
		ServicePassword: getEnv("PGSERVICE_PASSWORD", ""),
		Name:            getEnv("PGDATABASE", "goguma"),
		SSLMode:         getEnv("PGSSLMODE", "disable"),
	}

	cloudinaryConfig := CloudinaryConfig{
		CloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:       getEnv("CLOUDINARY_API_KEY", ""),
		APISecret:    getEnv("CLOUDINARY_API_SECRET", ""),
		UploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", "goguma_mvp"),
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		AppEnv:             getEnv("APP_ENV", "production"),
		DatabaseURL:        dbURL(dbConfig, dbConfig.User, dbConfig.Password),
		ServiceDatabaseURL: dbURL(dbConfig, dbConfig.ServiceUser, dbConfig.ServicePassword),
		ProfileTokenSecret: getEnv("PROFILE_TOKEN_SECRET", ""),
		FeedCacheTTL:       getEnvDuration("FEED_CACHE_TTL", time.Minute),
		DatabaseConfig:     dbConfig,
		CloudinaryConfig:   cloudinaryConfig,
	}

	if cfg.ProfileTokenSecret == "" {
		log.Fatal("❌ Ошибка: не задана переменная окружения PROFILE_TOKEN_SECRET")
	}

	return cfg
}

// dbURL формирует строку подключения для заданной учётной записи
func dbURL(db DatabaseConfig, user, password string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, db.Host, db.Port, db.Name, db.SSLMode)
}

// getEnv получает переменную окружения или использует дефолтное значение
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvDuration читает длительность в секундах
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		log.Printf("⚠️ Неверное значение %s=%q, используем %s", key, value, defaultValue)
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
