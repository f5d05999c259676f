package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ImageStore backends.
const (
	ImageStoreLocal = "local"
	ImageStoreS3    = "s3"
)

// PublicImagePath is the URL prefix uploaded images are served under.
const PublicImagePath = "/assets/uploads/images"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Verification and password-reset tokens share one lifetime.
	SingleUseTokenTTL time.Duration

	// SMTP relay
	SMTPHost      string
	SMTPPort      int
	EmailUser     string
	EmailPassword string
	ContactInbox  string

	// External OAuth Providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	FrontendBaseURL    string
	APIBaseURL         string
	CORSAllowedOrigins []string

	// Image storage
	ImageStore  string
	UploadDir   string
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

// required lists the variables the process cannot start without.
var required = []string{
	"PGSQL_URL",
	"JWT_SECRET",
	"EMAIL_USER",
	"EMAIL_PASSWORD",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"FRONTEND_URL",
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_EXPIRY_DURATION", "120h")
	v.SetDefault("JWT_ISSUER", "letsgoparty")
	v.SetDefault("SINGLE_USE_TOKEN_TTL", "1h")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("API_BASE_URL", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("IMAGE_STORE", ImageStoreLocal)
	v.SetDefault("UPLOAD_DIR", "./assets/uploads/images")
	v.SetDefault("S3_REGION", "us-east-1")

	var missing []string
	for _, key := range required {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		SMTPHost:           v.GetString("SMTP_HOST"),
		SMTPPort:           v.GetInt("SMTP_PORT"),
		EmailUser:          v.GetString("EMAIL_USER"),
		EmailPassword:      v.GetString("EMAIL_PASSWORD"),
		ContactInbox:       v.GetString("CONTACT_INBOX"),
		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:    strings.TrimRight(v.GetString("FRONTEND_URL"), "/"),
		APIBaseURL:         strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		ImageStore:         strings.ToLower(v.GetString("IMAGE_STORE")),
		UploadDir:          v.GetString("UPLOAD_DIR"),
		S3Endpoint:         v.GetString("S3_ENDPOINT"),
		S3Region:           v.GetString("S3_REGION"),
		S3Bucket:           v.GetString("S3_BUCKET"),
		S3AccessKey:        v.GetString("S3_ACCESS_KEY"),
		S3SecretKey:        v.GetString("S3_SECRET_KEY"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.ContactInbox == "" {
		cfg.ContactInbox = cfg.EmailUser
	}
	if cfg.GoogleRedirectURL == "" {
		cfg.GoogleRedirectURL = cfg.APIBaseURL + "/auth/google/callback"
		log.Printf("Warning: GOOGLE_REDIRECT_URL not set. Defaulting to %s\n", cfg.GoogleRedirectURL)
	}

	var err error
	if cfg.JWTExpiryDuration, err = parseDuration(v, "JWT_EXPIRY_DURATION"); err != nil {
		return nil, err
	}
	if cfg.SingleUseTokenTTL, err = parseDuration(v, "SINGLE_USE_TOKEN_TTL"); err != nil {
		return nil, err
	}

	switch cfg.ImageStore {
	case ImageStoreLocal:
	case ImageStoreS3:
		for _, key := range []string{"S3_ENDPOINT", "S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY"} {
			if strings.TrimSpace(v.GetString(key)) == "" {
				missing = append(missing, key)
			}
		}
	default:
		return nil, fmt.Errorf("invalid IMAGE_STORE %q: must be %q or %q", cfg.ImageStore, ImageStoreLocal, ImageStoreS3)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid value for %s (%q): must be a positive duration", key, raw)
	}
	return d, nil
}
