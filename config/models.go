package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	LLM    LLM          `mapstructure:"llm"    yaml:"llm"    json:"llm"`
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
	Static StaticConfig `mapstructure:"static" yaml:"static" json:"static"`
	CORS   CORSConfig   `mapstructure:"cors"   yaml:"cors"   json:"cors"`
	Log    LogConfig    `mapstructure:"log"    yaml:"log"    json:"log"`
}

type LLM struct {
	// Service is one of gemini, openai or anthropic
	Service string `mapstructure:"service" yaml:"service" json:"service" jsonschema:"enum=gemini,enum=openai,enum=anthropic"`
	// Model defaults to a per-service model when empty.
	Model string `mapstructure:"model" yaml:"model" json:"model"`
	// BaseURL overrides the service endpoint, e.g. for a proxy.
	BaseURL string `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
	// API keys are loaded from ENV or .env, not the config file.
	GeminiAPIKey    string `mapstructure:"gemini_api_key"    yaml:"-" json:"-"`
	OpenAIAPIKey    string `mapstructure:"openai_api_key"    yaml:"-" json:"-"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key" yaml:"-" json:"-"`
	// MaxRetries is the number of additional attempts made by the upstream HTTP client.
	MaxRetries int `mapstructure:"max_retries" yaml:"max_retries" json:"max_retries"`
	// Timeout bounds a single upstream call. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
}

// APIKey returns the credential for the configured service.
func (l LLM) APIKey() string {
	switch l.Service {
	case "openai":
		return l.OpenAIAPIKey
	case "anthropic":
		return l.AnthropicAPIKey
	default:
		return l.GeminiAPIKey
	}
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host" json:"host"`
	Port int    `mapstructure:"port" yaml:"port" json:"port"`

	// CustomHeaders are added to every response. A value of the form env:NAME is read from
	// the environment at request time.
	CustomHeaders map[string]string `mapstructure:"custom_headers" yaml:"custom_headers,omitempty" json:"custom_headers,omitempty"`
}

type StaticConfig struct {
	IndexFile string `mapstructure:"index_file" yaml:"index_file" json:"index_file"`
	ImagesDir string `mapstructure:"images_dir" yaml:"images_dir" json:"images_dir"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins" json:"allowed_origins"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" json:"level"`
}
