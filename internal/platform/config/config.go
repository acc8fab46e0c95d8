package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Assistant gateway authentication modes.
const (
	AssistantAuthNone          = "none"
	AssistantAuthBearer        = "bearer"
	AssistantAuthGoogleIDToken = "google_idtoken"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	DefaultTimezone string
	Doctors         []string

	// Text-generation endpoint behind the chat assistant
	AssistantURL         string
	AssistantModel       string
	AssistantMaxLength   int
	AssistantTemperature float64
	AssistantTimeout     time.Duration
	AssistantAuthMode    string
	AssistantAPIToken    string
	AssistantAudience    string

	ChatHistorySize     int
	ChatHistorySessions int
	MaxPictureBytes     int64

	AuthRateLimit string
	ChatRateLimit string

	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "healthcare-assistant")
	v.SetDefault("DEFAULT_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("DOCTORS", "Dr. Smith (Cardiology),Dr. Jones (Pediatrics)")
	v.SetDefault("ASSISTANT_URL", "http://localhost:8081/generate")
	v.SetDefault("ASSISTANT_MODEL", "distilgpt2")
	v.SetDefault("ASSISTANT_MAX_LENGTH", 200)
	v.SetDefault("ASSISTANT_TEMPERATURE", 0.7)
	v.SetDefault("ASSISTANT_TIMEOUT", "60s")
	v.SetDefault("ASSISTANT_AUTH_MODE", AssistantAuthNone)
	v.SetDefault("ASSISTANT_API_TOKEN", "")
	v.SetDefault("ASSISTANT_AUDIENCE", "")
	v.SetDefault("CHAT_HISTORY_SIZE", 100)
	v.SetDefault("CHAT_HISTORY_SESSIONS", 1024)
	v.SetDefault("MAX_PICTURE_BYTES", 5*1024*1024)
	v.SetDefault("AUTH_RATE_LIMIT", "5-M")
	v.SetDefault("CHAT_RATE_LIMIT", "20-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDuration(v, "JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	cfg.DefaultTimezone = v.GetString("DEFAULT_TIMEZONE")
	cfg.Doctors = splitList(v.GetString("DOCTORS"))

	cfg.AssistantURL = v.GetString("ASSISTANT_URL")
	cfg.AssistantModel = v.GetString("ASSISTANT_MODEL")
	cfg.AssistantMaxLength = v.GetInt("ASSISTANT_MAX_LENGTH")
	cfg.AssistantTemperature = v.GetFloat64("ASSISTANT_TEMPERATURE")
	cfg.AssistantTimeout = parseDuration(v, "ASSISTANT_TIMEOUT", time.Minute)
	cfg.AssistantAuthMode = strings.ToLower(v.GetString("ASSISTANT_AUTH_MODE"))
	switch cfg.AssistantAuthMode {
	case AssistantAuthNone, AssistantAuthBearer, AssistantAuthGoogleIDToken:
	default:
		log.Printf("Warning: Invalid value for ASSISTANT_AUTH_MODE ('%s'). Defaulting to %s.\n", cfg.AssistantAuthMode, AssistantAuthNone)
		cfg.AssistantAuthMode = AssistantAuthNone
	}
	cfg.AssistantAPIToken = v.GetString("ASSISTANT_API_TOKEN")
	cfg.AssistantAudience = v.GetString("ASSISTANT_AUDIENCE")

	cfg.ChatHistorySize = v.GetInt("CHAT_HISTORY_SIZE")
	cfg.ChatHistorySessions = v.GetInt("CHAT_HISTORY_SESSIONS")
	cfg.MaxPictureBytes = v.GetInt64("MAX_PICTURE_BYTES")

	cfg.AuthRateLimit = v.GetString("AUTH_RATE_LIMIT")
	cfg.ChatRateLimit = v.GetString("CHAT_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	return cfg
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
