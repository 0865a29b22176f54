// Package config loads the storefront configuration from flags, an optional
// config file and STOREFRONT_* environment variables.
package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr       string
	Env        string
	Store      string
	StorePath  string
	RedisAddr  string
	SessionTTL time.Duration
	AMQPURL    string
	AMQPQueue  string
	AMQPPool   int
}

// Load materializes the configuration from viper's current state. Flag
// binding and env setup happen in the cli package.
func Load() (*Config, error) {
	if file := viper.GetString("config"); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		Addr:       viper.GetString("addr"),
		Env:        viper.GetString("env"),
		Store:      viper.GetString("store"),
		StorePath:  viper.GetString("store-path"),
		RedisAddr:  viper.GetString("redis-addr"),
		SessionTTL: viper.GetDuration("session-ttl"),
		AMQPURL:    viper.GetString("amqp-url"),
		AMQPQueue:  viper.GetString("amqp-queue"),
		AMQPPool:   viper.GetInt("amqp-pool"),
	}, nil
}
