// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/nodewallet/internal/network"
	"github.com/gabapcia/nodewallet/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const Prefix = "NODEWALLET"

type Config struct {
	Network    string `default:"main" validate:"required"`
	WalletPath string `split_words:"true"`
	DataDir    string `split_words:"true" default:"." validate:"required"`
	LogLevel   string `split_words:"true" default:"info" validate:"oneof=debug info warn error"`

	MaxPeers          int           `split_words:"true" default:"4" validate:"gte=1,lte=125"`
	ConnectTimeout    time.Duration `split_words:"true" default:"10s" validate:"gt=0"`
	SyncTimeout       time.Duration `split_words:"true" default:"2m" validate:"gt=0"`
	SyncAttempts      uint          `split_words:"true" default:"3" validate:"gte=1"`
	DiscoveryInterval time.Duration `split_words:"true" default:"30s" validate:"gt=0"`

	// Peers replaces discovery with a fixed list of host:port addresses.
	Peers []string `validate:"dive,hostname_port"`

	// RendezvousURL enables test network discovery. Without it and without
	// Peers the wallet starts with no network.
	RendezvousURL     string `envconfig:"RENDEZVOUS_URL" validate:"omitempty,url"`
	RendezvousChannel string `split_words:"true" default:"#bitcoinTEST"`

	// RedisAddr enables the redis address book when set.
	RedisAddr     string `split_words:"true" validate:"omitempty,hostname_port"`
	RedisUsername string `split_words:"true"`
	RedisPassword string `split_words:"true"`
	RedisDB       int    `envconfig:"REDIS_DB" validate:"gte=0"`

	TelemetryEnabled bool   `split_words:"true"`
	ServiceName      string `split_words:"true" default:"nodewallet"`
}

// Selector returns the parsed network selector.
func (c Config) Selector() network.Selector {
	sel, _ := network.Parse(c.Network)
	return sel
}

// Load reads the configuration from NODEWALLET_* variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", validator.ErrValidationFailed, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	_, err := network.Parse(c.Network)
	return err
}
