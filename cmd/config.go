package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the process configuration, read from the environment and an
// optional .env file.
type Config struct {
	AppEnv   string
	LogLevel string

	HTTPHost kernel.Host
	HTTPPort kernel.Port

	DBHost     kernel.Host
	DBPort     kernel.Port
	DBUser     kernel.Username
	DBPassword string
	DBName     string
	DBSslMode  string

	// PasswordSecretKey is the hex encoded AES key customer passwords are
	// encrypted with.
	PasswordSecretKey string

	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTAccessTTL     time.Duration
	JWTRefreshTTL    time.Duration

	ReconcileSchedule string

	AdminName     string
	AdminEmail    string
	AdminPassword string
	AdminPhone    string
}

// LoadConfig reads .env when present, then the environment. Every invalid
// or missing setting is reported in the returned error.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var problems []error
	collect := func(err error) {
		if err != nil {
			problems = append(problems, err)
		}
	}

	cfg := Config{
		AppEnv:            envOr("APP_ENV", EnvDevelopment),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         envOr("DB_SSLMODE", "disable"),
		PasswordSecretKey: os.Getenv("PASSWORD_SECRET_KEY"),
		JWTAccessSecret:   os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:  os.Getenv("JWT_REFRESH_SECRET"),
		ReconcileSchedule: os.Getenv("RECONCILE_SCHEDULE"),
		AdminName:         envOr("ADMIN_NAME", "Administrator"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPhone:        os.Getenv("ADMIN_PHONE"),
	}

	var err error
	cfg.HTTPHost, err = kernel.NewHost(envOr("HTTP_HOST", "0.0.0.0"))
	collect(wrapSetting("HTTP_HOST", err))
	cfg.HTTPPort, err = kernel.NewPortFromString(envOr("HTTP_PORT", "8080"))
	collect(wrapSetting("HTTP_PORT", err))
	cfg.DBHost, err = kernel.NewHost(os.Getenv("DB_HOST"))
	collect(wrapSetting("DB_HOST", err))
	cfg.DBPort, err = kernel.NewPortFromString(envOr("DB_PORT", "5432"))
	collect(wrapSetting("DB_PORT", err))
	cfg.DBUser, err = kernel.NewUsername(os.Getenv("DB_USER"))
	collect(wrapSetting("DB_USER", err))
	cfg.JWTAccessTTL, err = time.ParseDuration(envOr("JWT_ACCESS_TTL", "5m"))
	collect(wrapSetting("JWT_ACCESS_TTL", err))
	cfg.JWTRefreshTTL, err = time.ParseDuration(envOr("JWT_REFRESH_TTL", "24h"))
	collect(wrapSetting("JWT_REFRESH_TTL", err))

	collect(cfg.validate())

	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var problems []error
	for _, setting := range []struct{ key, value string }{
		{"DB_NAME", c.DBName},
		{"PASSWORD_SECRET_KEY", c.PasswordSecretKey},
		{"JWT_ACCESS_SECRET", c.JWTAccessSecret},
		{"JWT_REFRESH_SECRET", c.JWTRefreshSecret},
	} {
		if strings.TrimSpace(setting.value) == "" {
			problems = append(problems, fmt.Errorf("%s is required", setting.key))
		}
	}
	if _, err := kernel.NewPasswordCipherFromHex(c.PasswordSecretKey); c.PasswordSecretKey != "" && err != nil {
		problems = append(problems, wrapSetting("PASSWORD_SECRET_KEY", err))
	}
	if c.AppEnv != EnvDevelopment && c.AppEnv != EnvProduction {
		problems = append(problems, fmt.Errorf("APP_ENV must be %s or %s", EnvDevelopment, EnvProduction))
	}
	if c.BootstrapAdmin() && c.AdminPhone == "" {
		problems = append(problems, errors.New("ADMIN_PHONE is required when ADMIN_EMAIL is set"))
	}
	if c.JWTAccessTTL >= c.JWTRefreshTTL {
		problems = append(problems, errors.New("JWT_ACCESS_TTL must be shorter than JWT_REFRESH_TTL"))
	}
	return errors.Join(problems...)
}

// BootstrapAdmin reports whether an administrator account is configured.
func (c Config) BootstrapAdmin() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// DSN returns the connection string for the gorm postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort.Int(), c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// HTTPAddress is the listen address of the web server.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort.Int())
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func wrapSetting(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", key, err)
}
