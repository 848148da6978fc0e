package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. It is resolved once at
// startup and never mutated afterwards; the two API credentials are the only
// process-wide state.
type Config struct {
	Server      ServerConfig
	Spoonacular SpoonacularConfig
	OpenAI      OpenAIConfig
	RateLimit   RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SpoonacularConfig holds recipe-extraction API configuration
type SpoonacularConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// OpenAIConfig holds language-model API configuration
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Pick up a local .env first so viper sees its variables
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/recipeview/")

	// Environment variable settings
	v.SetEnvPrefix("RECIPEVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads a .env file from the working directory when one exists.
// Existing environment variables are never overridden.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Spoonacular defaults; the empty api_key default keeps the env
	// binding alive for Unmarshal
	v.SetDefault("spoonacular.api_key", "")
	v.SetDefault("spoonacular.base_url", "https://spoonacular-recipe-food-nutrition-v1.p.rapidapi.com")

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Spoonacular.APIKey == "" {
		return fmt.Errorf("Spoonacular API key is required (set RECIPEVIEW_SPOONACULAR_API_KEY)")
	}

	if config.OpenAI.APIKey == "" {
		return fmt.Errorf("OpenAI API key is required (set RECIPEVIEW_OPENAI_API_KEY)")
	}

	if config.OpenAI.Model == "" {
		return fmt.Errorf("OpenAI model must not be empty")
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
