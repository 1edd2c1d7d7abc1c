// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"log/slog"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BoostyLabs/brc20/bitcoin/ord/brc20"
	"github.com/BoostyLabs/brc20/internal/config"
	"github.com/BoostyLabs/brc20/internal/logger"
)

// app holds dependencies shared by sub-commands, filled before any of them runs.
type app struct {
	log         *slog.Logger
	chainParams *chaincfg.Params
	builder     *brc20.Builder
}

// NewRootCommand returns brc20 command with all sub-commands registered.
func NewRootCommand() *cobra.Command {
	var (
		configFile string
		a          = &app{builder: brc20.DefaultBuilder}
		v          = viper.New()
	)

	cmd := &cobra.Command{
		Use:           "brc20",
		Short:         "Build BRC-20 deploy, mint and transfer inscriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			a.log, err = logger.New(cfg.Logger, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.chainParams, err = cfg.ChainParams()
			if err != nil {
				return err
			}

			a.log.Debug("configuration loaded", slog.String("network", a.chainParams.Name))

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("network", "mainnet", "network of the commit address, E.g. `mainnet`, `testnet`, `signet` or `regtest`")
	flags.String("log-output", "text", "log output format, `text` or `json`")
	flags.Bool("debug", false, "enable debug logs")

	for key, flag := range map[string]string{
		"network":       "network",
		"logger.output": "log-output",
		"logger.debug":  "debug",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(errors.Wrapf(err, "bind flag %q", flag))
		}
	}

	cmd.AddCommand(
		newDeployCommand(a),
		newMintCommand(a),
		newTransferCommand(a),
		newVersionCommand(),
	)

	return cmd
}
