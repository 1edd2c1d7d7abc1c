// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/brc20/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load(viper.New(), "")
		require.NoError(t, err)
		require.Equal(t, "mainnet", cfg.Network)
		require.Equal(t, "text", cfg.Logger.Output)
		require.False(t, cfg.Logger.Debug)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("network: testnet\nlogger:\n  output: json\n  debug: true\n"), 0o600))

		cfg, err := config.Load(viper.New(), path)
		require.NoError(t, err)
		require.Equal(t, "testnet", cfg.Network)
		require.Equal(t, "json", cfg.Logger.Output)
		require.True(t, cfg.Logger.Debug)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("BRC20_NETWORK", "regtest")
		t.Setenv("BRC20_LOGGER_DEBUG", "true")

		cfg, err := config.Load(viper.New(), "")
		require.NoError(t, err)
		require.Equal(t, "regtest", cfg.Network)
		require.True(t, cfg.Logger.Debug)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestChainParams(t *testing.T) {
	tests := []struct {
		network string
		params  *chaincfg.Params
	}{
		{"mainnet", &chaincfg.MainNetParams},
		{"MainNet", &chaincfg.MainNetParams},
		{"testnet", &chaincfg.TestNet3Params},
		{"signet", &chaincfg.SigNetParams},
		{"regtest", &chaincfg.RegressionNetParams},
	}
	for _, test := range tests {
		params, err := config.Config{Network: test.network}.ChainParams()
		require.NoError(t, err)
		require.Same(t, test.params, params)
	}

	_, err := config.Config{Network: "litecoin"}.ChainParams()
	require.ErrorIs(t, err, config.ErrUnknownNetwork)
}
