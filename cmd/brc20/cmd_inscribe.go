// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/BoostyLabs/brc20/bitcoin/ord/brc20"
	"github.com/BoostyLabs/brc20/bitcoin/ord/inscriptions"
	"github.com/BoostyLabs/brc20/internal/logger"
)

// inscribeCmdOptions defines flags shared by operation commands.
type inscribeCmdOptions struct {
	Tick      string
	Recipient string
}

// parse returns validated ticker and decoded recipient public key.
func (opts *inscribeCmdOptions) parse() (brc20.Ticker, []byte, error) {
	ticker, err := brc20.NewTicker(opts.Tick)
	if err != nil {
		return brc20.Ticker{}, nil, err
	}

	recipient, err := hex.DecodeString(opts.Recipient)
	if err != nil {
		return brc20.Ticker{}, nil, errors.Wrap(err, "decode recipient public key")
	}

	return ticker, recipient, nil
}

// bind registers shared flags on the command.
func (opts *inscribeCmdOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&opts.Tick, "tick", "", "ticker, 4 or 5 bytes, E.g. `ordi`")
	flags.StringVar(&opts.Recipient, "recipient", "", "hex encoded recipient public key")
	_ = cmd.MarkFlagRequired("tick")
	_ = cmd.MarkFlagRequired("recipient")
}

func newDeployCommand(a *app) *cobra.Command {
	var (
		opts                    inscribeCmdOptions
		maxSupply, limitPerMint string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build deploy inscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ticker, recipient, err := opts.parse()
			if err != nil {
				return err
			}

			insc, err := a.builder.Deploy(recipient, ticker, maxSupply, limitPerMint)
			if err != nil {
				return a.fail(brc20.OperationDeploy, err)
			}

			return a.print(cmd.OutOrStdout(), brc20.OperationDeploy, insc.Unwrap())
		},
	}

	opts.bind(cmd)
	flags := cmd.Flags()
	flags.StringVar(&maxSupply, "max", "", "max supply, E.g. `21000000`")
	flags.StringVar(&limitPerMint, "lim", "", "limit per mint, E.g. `1000`")
	_ = cmd.MarkFlagRequired("max")
	_ = cmd.MarkFlagRequired("lim")

	return cmd
}

func newMintCommand(a *app) *cobra.Command {
	var (
		opts inscribeCmdOptions
		amt  string
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Build mint inscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ticker, recipient, err := opts.parse()
			if err != nil {
				return err
			}

			insc, err := a.builder.Mint(recipient, ticker, amt)
			if err != nil {
				return a.fail(brc20.OperationMint, err)
			}

			return a.print(cmd.OutOrStdout(), brc20.OperationMint, insc.Unwrap())
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&amt, "amt", "", "amount to mint, E.g. `1000`")
	_ = cmd.MarkFlagRequired("amt")

	return cmd
}

func newTransferCommand(a *app) *cobra.Command {
	var (
		opts inscribeCmdOptions
		amt  string
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Build transfer inscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ticker, recipient, err := opts.parse()
			if err != nil {
				return err
			}

			insc, err := a.builder.Transfer(recipient, ticker, amt)
			if err != nil {
				return a.fail(brc20.OperationTransfer, err)
			}

			return a.print(cmd.OutOrStdout(), brc20.OperationTransfer, insc.Unwrap())
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&amt, "amt", "", "amount to transfer, E.g. `100`")
	_ = cmd.MarkFlagRequired("amt")

	return cmd
}

// fail logs failed inscription building and returns err.
func (a *app) fail(op brc20.Operation, err error) error {
	a.log.Error("failed to build inscription", slog.String("op", op.String()), logger.Error(err))

	return err
}

// print writes inscription details to w.
func (a *app) print(w io.Writer, op brc20.Operation, insc *inscriptions.Inscription) error {
	script, err := insc.WitnessScript()
	if err != nil {
		return err
	}

	ctrlBlock, err := insc.ControlBlock()
	if err != nil {
		return err
	}

	addr, err := insc.Address(a.chainParams)
	if err != nil {
		return err
	}

	vBytes, err := insc.VBytesSize()
	if err != nil {
		return err
	}

	a.log.Info("inscription built",
		slog.String("op", op.String()),
		slog.String("address", addr.String()),
		slog.Int("body_size", len(insc.Body)),
	)

	_, err = fmt.Fprintf(w, "payload: %s\ncontent-type: %s\nwitness-script: %x\ncontrol-block: %x\naddress: %s\nreveal-vbytes: %d\n",
		insc.Body, insc.ContentType, script, ctrlBlock, addr.String(), vBytes)

	return err
}
