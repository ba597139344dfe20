package config

import (
	"os"
	"strconv"

	"serverless-crud/database"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	DBType         string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	DBMaxOpenConns int
	TableName      string

	// Handler selects which users handler the Lambda binary serves.
	Handler string

	AWSRegion  string
	AWSProfile string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:     GetEnv("PORT", "3000"),
		Env:      GetEnv("ENV", "development"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),

		DBType:         GetEnv("DB_TYPE", "mysql"),
		DBHost:         GetEnv("DB_HOST", "localhost"),
		DBPort:         GetEnvInt("DB_PORT", 0),
		DBUser:         GetEnv("DB_USER", ""),
		DBPassword:     GetEnv("DB_PASSWORD", ""),
		DBName:         GetEnv("DB_NAME", ""),
		DBSSLMode:      GetEnv("DB_SSL_MODE", ""),
		DBPath:         GetEnv("DB_PATH", "./data/serverless-crud.db"),
		DBMaxOpenConns: GetEnvInt("DB_MAX_OPEN_CONNS", 1),
		TableName:      GetEnv("TABLE_NAME", "users"),

		Handler: GetEnv("HANDLER", "router"),

		AWSRegion:  GetEnv("AWS_REGION", ""),
		AWSProfile: GetEnv("AWS_PROFILE", ""),
	}
}

// DatabaseOptions maps the DB_* settings onto the options the database factory expects.
func (c *Config) DatabaseOptions() database.Options {
	return database.Options{
		Kind:         database.ParseKind(c.DBType),
		Host:         c.DBHost,
		Port:         c.DBPort,
		User:         c.DBUser,
		Password:     c.DBPassword,
		Name:         c.DBName,
		SSLMode:      c.DBSSLMode,
		Path:         c.DBPath,
		MaxOpenConns: c.DBMaxOpenConns,
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
