package config

import (
	"errors"
	"strings"

	"github.com/getzep/animalfacts/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const EnvPrefix = "ANIMALFACTS"

// envAliases lets the bare provider variables work alongside the prefixed ones.
var envAliases = map[string][]string{
	"llm.gemini_api_key":    {"ANIMALFACTS_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"},
	"llm.openai_api_key":    {"ANIMALFACTS_LLM_OPENAI_API_KEY", "OPENAI_API_KEY"},
	"llm.anthropic_api_key": {"ANIMALFACTS_LLM_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"},
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing config file is not an error: defaults and ENV are enough to run.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("config file not found, using defaults and environment")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.service", "gemini")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_retries", 0)
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("static.index_file", "front_page.html")
	v.SetDefault("static.images_dir", "images")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
