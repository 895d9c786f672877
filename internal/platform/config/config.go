package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
	IsProduction  bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Mail relay (SMTP) settings. Their absence degrades the notify paths
	// with a 503 rather than crashing the process.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	// Rate limit for the public auth endpoints, in ulule/limiter notation.
	AuthRateLimit string
}

// HasStoreConfig reports whether a document-store connection string is set.
func (c *Config) HasStoreConfig() bool {
	return c.MongoURI != ""
}

// HasMailConfig reports whether the mail relay is fully configured.
func (c *Config) HasMailConfig() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONGODB_URI", "")
	viper.SetDefault("MONGODB_DATABASE", "gestor")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "gestor-backend")
	viper.SetDefault("EMAIL_HOST", "")
	viper.SetDefault("EMAIL_PORT", "465")
	viper.SetDefault("EMAIL_USER", "")
	viper.SetDefault("EMAIL_PASS", "")
	viper.SetDefault("EMAIL_FROM", "")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.MongoURI = viper.GetString("MONGODB_URI")
	if cfg.MongoURI == "" {
		log.Println("Warning: MONGODB_URI environment variable not set. Store-backed endpoints will return 503 until it is configured.")
	}
	cfg.MongoDatabase = viper.GetString("MONGODB_DATABASE")

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.SMTPHost = viper.GetString("EMAIL_HOST")
	cfg.SMTPPort = viper.GetString("EMAIL_PORT")
	cfg.SMTPUser = viper.GetString("EMAIL_USER")
	cfg.SMTPPass = viper.GetString("EMAIL_PASS")
	cfg.MailFrom = viper.GetString("EMAIL_FROM")
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}
	if !cfg.HasMailConfig() {
		log.Println("Warning: mail relay not fully configured (EMAIL_HOST/EMAIL_PORT/EMAIL_USER/EMAIL_PASS). Password reset mail will return 503.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	return cfg, nil
}
