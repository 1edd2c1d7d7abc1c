// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package config

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// ErrUnknownNetwork defines that network name has no chain params.
var ErrUnknownNetwork = errors.New("unknown network")

// EnvPrefix defines prefix of environment variables overriding the config.
const EnvPrefix = "BRC20"

// networks defines supported networks by name.
var networks = map[string]*chaincfg.Params{
	"mainnet": &chaincfg.MainNetParams,
	"testnet": &chaincfg.TestNet3Params,
	"signet":  &chaincfg.SigNetParams,
	"regtest": &chaincfg.RegressionNetParams,
}

// Config defines CLI configuration.
type Config struct {
	Network string `mapstructure:"network"`
	Logger  Logger `mapstructure:"logger"`
}

// Logger defines logger configuration.
type Logger struct {
	// Output is the logger output format, "text" (default) or "json".
	Output string `mapstructure:"output"`
	// Debug enables debug level.
	Debug bool `mapstructure:"debug"`
}

// SetDefaults sets default configuration values.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("network", "mainnet")
	v.SetDefault("logger.output", "text")
	v.SetDefault("logger.debug", false)
}

// Load reads configuration from the optional config file and environment variables.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}

// ChainParams returns chain params of the configured network.
func (c Config) ChainParams() (*chaincfg.Params, error) {
	params, ok := networks[strings.ToLower(c.Network)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "network %q", c.Network)
	}

	return params, nil
}
