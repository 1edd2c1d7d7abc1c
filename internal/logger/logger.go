// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/BoostyLabs/brc20/internal/config"
)

// ErrUnknownOutput defines that logger output format is not supported.
var ErrUnknownOutput = errors.New("unknown logger output")

// New creates slog logger writing to w by the config.
func New(cfg config.Logger, w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
	}

	switch strings.ToLower(cfg.Output) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, errors.Wrapf(ErrUnknownOutput, "output %q", cfg.Output)
}

// Error returns error as log attribute.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}
