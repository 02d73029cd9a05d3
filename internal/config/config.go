package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration. It is loaded once at startup and
// treated as immutable afterwards; there is no ambient global credential state.
type Config struct {
	AppPort       int    `mapstructure:"APP_PORT"`
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	StaticDir     string `mapstructure:"STATIC_DIR"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

// OpenAIConfigured reports whether a completion credential is present.
// An absent key is a degraded-but-running state, not a startup failure.
func (c *Config) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 5000)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("STATIC_DIR", "./static")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
