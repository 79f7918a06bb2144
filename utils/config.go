package utils

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

const DefaultGnosisPayURL = "https://api.gnosispay.com"

type Config struct {
	Env        string `mapstructure:"ENV"`
	ServerPort int    `mapstructure:"SERVER_PORT"`
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	GnosisPayAPIURL string `mapstructure:"GNOSISPAY_API_URL"`

	SigningKey    string `mapstructure:"SIGNING_KEY"`
	TokenTTLHours int    `mapstructure:"TOKEN_TTL_HOURS"`

	DBUsername       string `mapstructure:"DB_USERNAME"`
	DBPassword       string `mapstructure:"DB_PASSWORD"`
	DBHost           string `mapstructure:"DB_HOST"`
	DBPort           string `mapstructure:"DB_PORT"`
	DBDriver         string `mapstructure:"DB_DRIVER"`
	DBName           string `mapstructure:"DB_NAME"`
	SSLMode          string `mapstructure:"SSLMODE"`
	DBLoggingEnabled bool   `mapstructure:"DB_LOGGING_ENABLED"`
	MigrationsPath   string `mapstructure:"MIGRATIONS_PATH"`
	LogRetentionDays int    `mapstructure:"LOG_RETENTION_DAYS"`

	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	EmailTransport     string `mapstructure:"EMAIL_TRANSPORT"`
	SMTPHost           string `mapstructure:"SMTP_HOST"`
	SMTPPort           int    `mapstructure:"SMTP_PORT"`
	SMTPSecure         string `mapstructure:"SMTP_SECURE"`
	SMTPUser           string `mapstructure:"SMTP_USER"`
	SMTPPass           string `mapstructure:"SMTP_PASS"`
	SMTPFrom           string `mapstructure:"SMTP_FROM"`
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	PlunkBaseUrl       string `mapstructure:"PLUNK_BASE_URL"`
	PlunkApiKey        string `mapstructure:"PLUNK_API_KEY"`

	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `mapstructure:"TWILIO_PHONE_NUMBER"`
	AppName           string `mapstructure:"APP_NAME"`
	OTPExpiryMinutes  int    `mapstructure:"OTP_EXPIRY_MINUTES"`
	AppURL            string `mapstructure:"APP_URL"`

	Papertrail        string `mapstructure:"PAPERTRAIL"`
	PapertrailAppName string `mapstructure:"PAPERTRAIL_APP_NAME"`
}

// configKeys lists every key viper should resolve from the environment even
// when no .env file is present. AutomaticEnv alone only answers Get calls.
var configKeys = []string{
	"ENV", "SERVER_PORT", "CORS_ORIGIN", "LOG_LEVEL", "GNOSISPAY_API_URL",
	"SIGNING_KEY", "TOKEN_TTL_HOURS",
	"DB_USERNAME", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_DRIVER", "DB_NAME", "SSLMODE",
	"DB_LOGGING_ENABLED", "MIGRATIONS_PATH", "LOG_RETENTION_DAYS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
	"EMAIL_TRANSPORT", "SMTP_HOST", "SMTP_PORT", "SMTP_SECURE", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
	"AWS_REGION", "AWS_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY", "PLUNK_BASE_URL", "PLUNK_API_KEY",
	"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_PHONE_NUMBER", "APP_NAME", "OTP_EXPIRY_MINUTES", "APP_URL",
	"PAPERTRAIL", "PAPERTRAIL_APP_NAME",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GNOSISPAY_API_URL", DefaultGnosisPayURL)
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("SSLMODE", "disable")
	v.SetDefault("MIGRATIONS_PATH", "file://db/migrations")
	v.SetDefault("LOG_RETENTION_DAYS", 90)
	v.SetDefault("EMAIL_TRANSPORT", "smtp")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("APP_NAME", "Portalfi")
	v.SetDefault("OTP_EXPIRY_MINUTES", 10)
	v.SetDefault("APP_URL", "https://portalfi.com")
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("")
	v.AutomaticEnv()
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		// A missing .env is normal in containers, the environment still applies
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.ServerPort <= 0 {
		return fmt.Errorf("server port must be specified")
	}

	if !strings.HasPrefix(config.GnosisPayAPIURL, "http://") && !strings.HasPrefix(config.GnosisPayAPIURL, "https://") {
		return fmt.Errorf("GNOSISPAY_API_URL must be an http(s) URL, got %q", config.GnosisPayAPIURL)
	}

	switch config.EmailTransport {
	case "smtp", "ses", "plunk":
	default:
		return fmt.Errorf("unsupported EMAIL_TRANSPORT %q", config.EmailTransport)
	}

	if config.OTPExpiryMinutes <= 0 {
		return fmt.Errorf("OTP_EXPIRY_MINUTES must be positive")
	}

	return nil
}

// DatabaseConfigured reports whether enough settings exist to attempt a connection.
func (c *Config) DatabaseConfigured() bool {
	return c.DBHost != "" && c.DBName != "" && c.DBUsername != ""
}

func (c *Config) RedisConfigured() bool {
	return c.RedisHost != ""
}

// Redact masks secrets so the config can be logged at startup.
func (c *Config) Redact() Config {
	redacted := *c
	for _, s := range []*string{
		&redacted.SigningKey, &redacted.DBPassword, &redacted.RedisPassword, &redacted.SMTPPass,
		&redacted.AWSSecretAccessKey, &redacted.PlunkApiKey, &redacted.TwilioAuthToken,
	} {
		if *s != "" {
			*s = "****"
		}
	}
	return redacted
}
