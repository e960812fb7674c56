package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// AdminTokenName is the request header the admin front end sends the JWT in.
	AdminTokenName  string
	FrontendBaseURL string
	// LoginRateLimit uses the ulule limiter format, e.g. "5-M".
	LoginRateLimit string
	PosthogAPIKey  string

	// AutoFillStrict makes audit-field fill failures abort the write.
	// When false they are logged and the write proceeds.
	AutoFillStrict bool

	Storage StorageConfig
}

// StorageConfig configures the object storage bucket used for uploads.
type StorageConfig struct {
	Endpoint        string
	Bucket          string
	CredentialsFile string
	MaxUploadBytes  int64
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "2h")
	viper.SetDefault("JWT_ISSUER", "sky-delivery-admin")
	viper.SetDefault("ADMIN_TOKEN_NAME", "token")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("AUTOFILL_STRICT", true)
	viper.SetDefault("STORAGE_ENDPOINT", "storage.googleapis.com")
	viper.SetDefault("STORAGE_BUCKET", "")
	viper.SetDefault("STORAGE_CREDENTIALS_FILE", "")
	viper.SetDefault("STORAGE_MAX_UPLOAD_BYTES", 10<<20)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 2 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AdminTokenName = viper.GetString("ADMIN_TOKEN_NAME")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.AutoFillStrict = viper.GetBool("AUTOFILL_STRICT")
	if !cfg.AutoFillStrict {
		log.Println("Warning: AUTOFILL_STRICT is false. Audit field failures will be logged and ignored.")
	}

	cfg.Storage = StorageConfig{
		Endpoint:        viper.GetString("STORAGE_ENDPOINT"),
		Bucket:          viper.GetString("STORAGE_BUCKET"),
		CredentialsFile: viper.GetString("STORAGE_CREDENTIALS_FILE"),
		MaxUploadBytes:  viper.GetInt64("STORAGE_MAX_UPLOAD_BYTES"),
	}
	if cfg.Storage.Bucket == "" {
		log.Println("Warning: STORAGE_BUCKET not set. File uploads will not function.")
	}

	return cfg, nil
}
