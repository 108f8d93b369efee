package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DeletePolicy controls what happens to a goal's children when it is deleted.
type DeletePolicy string

const (
	// DeletePolicyKeep leaves children pointing at the removed parent.
	DeletePolicyKeep DeletePolicy = "keep"
	// DeletePolicyDetach clears the parent reference of direct children.
	DeletePolicyDetach DeletePolicy = "detach"
	// DeletePolicyCascade removes the whole subtree.
	DeletePolicyCascade DeletePolicy = "cascade"
)

// Valid reports whether p is a known policy.
func (p DeletePolicy) Valid() bool {
	switch p {
	case DeletePolicyKeep, DeletePolicyDetach, DeletePolicyCascade:
		return true
	}
	return false
}

// Config holds application configuration
type Config struct {
	// Server
	Port        string
	Env         string
	CORSOrigins []string

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Goals
	GoalDeletePolicy DeletePolicy
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "summit.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "summit"),
		DBPassword: getEnv("DB_PASSWORD", "summit"),
		DBName:     getEnv("DB_NAME", "summit"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		GoalDeletePolicy: DeletePolicy(getEnv("GOAL_DELETE_POLICY", string(DeletePolicyKeep))),
	}

	if config.DBDriver != "sqlite" && config.DBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use sqlite or postgres)", config.DBDriver)
	}
	if !config.GoalDeletePolicy.Valid() {
		return nil, fmt.Errorf("unsupported GOAL_DELETE_POLICY %q (use keep, detach or cascade)", config.GoalDeletePolicy)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresURL returns the connection URL used by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// PostgresDSN returns the keyword/value connection string used by gorm.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
