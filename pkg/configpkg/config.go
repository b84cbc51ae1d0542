// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environement variables.
type Config struct {
	Environement string `mapstructure:"GO_ENV"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from file or environment variables. A missing
// config file is not an error for a CLI run; the defaults then apply.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("GO_ENV", "production")
	viper.SetDefault("LOG_LEVEL", "warn")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	if err := viper.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}
