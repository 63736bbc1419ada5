package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key to form its environment variable.
const EnvPrefix = "GRC"

// DefaultEnvFile is read when present and no other file is requested.
const DefaultEnvFile = ".env"

// Load configuration from environment variables, a dotenv file and optionally a
// config file. Environment variables take precedence over values from config files,
// and variables already set in the process are never overwritten by the dotenv file.
// When envFiles is empty, DefaultEnvFile is loaded if it exists.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// COHERE_API_KEY keeps deployments of the earlier service working unchanged.
	if err := v.BindEnv("llm.api_key", EnvVar("llm.api_key"), "COHERE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validation tags. A missing required value is
// reported as a *MissingFieldError; any other failure is wrapped as a generic
// validation error.
func Validate(cfg *Config) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			if fe.Tag() == "required" {
				key := strings.TrimPrefix(fe.Namespace(), "Config.")
				return &MissingFieldError{Key: key, EnvVar: EnvVar(key)}
			}
		}
	}

	return fmt.Errorf("config validation failed: %w", err)
}

// EnvVar returns the environment variable that sets the dotted key, e.g.
// "llm.api_key" becomes "GRC_LLM_API_KEY".
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("llm.provider", "cohere")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.max_tokens", 300)
	v.SetDefault("llm.temperature", 0.5)
	v.SetDefault("llm.request_timeout_seconds", 0)
	v.SetDefault("llm.prompt_template_path", "")
}

func loadEnvFiles(envFiles []string) error {
	if len(envFiles) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		envFiles = []string{DefaultEnvFile}
	}

	if err := godotenv.Load(envFiles...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}
