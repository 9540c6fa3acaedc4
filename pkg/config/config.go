package config

import "github.com/caarlos0/env/v11"

// Config is the process configuration, sourced from the environment.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"storefront"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogSource   bool   `env:"LOG_SOURCE" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
