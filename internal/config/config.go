package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const DefaultPort = 4040

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Messages MessagesConfig `mapstructure:"messages"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port                   int `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"min=0"`
}

type MessagesConfig struct {
	// File overrides the embedded message table.
	File string `mapstructure:"file" validate:"omitempty,file"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbook")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("messages.file", "")
	v.SetDefault("log.debug", false)

	// The listening port follows the PORT environment variable when it is set
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
