package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Log         LogConfig
	Billing     BillingConfig
	Dataset     DatasetConfig
	Suggestions SuggestionsConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type LogConfig struct {
	Level  string
	Format string
}

// BillingConfig carries the doctor-commission rate applied at ingestion and
// manual entry. The rate is uniform; a per-referrer override is anticipated
// but not implemented.
type BillingConfig struct {
	DCRate float64
}

// DatasetConfig points at the TSV dataset the service seeds from. An empty
// path selects the embedded sample dataset.
type DatasetConfig struct {
	Path string
}

// SuggestionsConfig carries the reference lists offered to the entry form.
// They are suggestions only; free text is always accepted.
type SuggestionsConfig struct {
	Referrers      []string
	Investigations []string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "dcreport-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("DC_RATE", 0.3)
	viper.SetDefault("DATASET_PATH", "")
	viper.SetDefault("SUGGEST_REFERRERS", []string{
		"DR. A K JHA",
		"DR. S PRASAD",
		"DR. R N CHOUDHARY",
		"DR. MEENAKSHI SINHA",
		"DR. P K VERMA",
	})
	viper.SetDefault("SUGGEST_INVESTIGATIONS", []string{
		"USG WHOLE ABDOMEN",
		"USG LOWER ABDOMEN",
		"USG UPPER ABDOMEN",
		"USG KUB",
		"USG OBS",
		"CT BRAIN PLAIN",
		"CT BRAIN CONTRAST",
		"HRCT THORAX",
		"XRAY CHEST PA",
		"XRAY LS SPINE",
		"CBC",
		"LFT",
		"KFT",
		"THYROID PROFILE",
	})
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Billing: BillingConfig{
			DCRate: viper.GetFloat64("DC_RATE"),
		},
		Dataset: DatasetConfig{
			Path: viper.GetString("DATASET_PATH"),
		},
		Suggestions: SuggestionsConfig{
			Referrers:      viper.GetStringSlice("SUGGEST_REFERRERS"),
			Investigations: viper.GetStringSlice("SUGGEST_INVESTIGATIONS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
