package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	CORS   CORSConfig   `mapstructure:"cors"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMConfig contains the text-generation provider settings.
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=cohere gemini openai anthropic"`
	APIKey   string `mapstructure:"api_key"  validate:"required"`

	// BaseURL points the provider SDK at another endpoint, such as a proxy.
	BaseURL string `mapstructure:"base_url"`

	// ModelName overrides the provider's default model when set.
	ModelName   string  `mapstructure:"model_name"`
	MaxTokens   int     `mapstructure:"max_tokens"  validate:"gt=0"`
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// RequestTimeoutSeconds caps a single provider call. Zero leaves the
	// provider SDK's default in place.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`

	// PromptTemplatePath replaces the embedded prompt template when set.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}
