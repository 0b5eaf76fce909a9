package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Attendance AttendanceConfig
	Payroll    PayrollConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey         string
	AccessExpiration  string
	RefreshExpiration string
}

type AttendanceConfig struct {
	// DefaultWeekOffDay is the company-wide weekly off. The legacy rollout
	// used Tuesday, so that stays the default.
	DefaultWeekOffDay time.Weekday
}

type PayrollConfig struct {
	DeductAbsence    bool
	FirstAbsencePaid bool
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	weekOffDay, err := parseWeekday(getEnv("DEFAULT_WEEK_OFF_DAY", "tuesday"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "attendly-backend"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "attendly"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:         getEnv("JWT_SECRET_KEY", ""),
			AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION", "15m"),
			RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION", "168h"),
		},
		Attendance: AttendanceConfig{
			DefaultWeekOffDay: weekOffDay,
		},
		Payroll: PayrollConfig{
			DeductAbsence:    getEnvBool("PAYROLL_DEDUCT_ABSENCE", true),
			FirstAbsencePaid: getEnvBool("PAYROLL_FIRST_ABSENCE_PAID", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION: %w", err)
	}
	return nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func parseWeekday(value string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return 0, fmt.Errorf("invalid DEFAULT_WEEK_OFF_DAY %q", value)
	}
	return day, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
