// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package brc20

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidParams defines that provided parameters violate protocol rules.
var ErrInvalidParams = errors.New("invalid parameters")

const (
	// MinTickerLength defines the shortest ticker length in bytes.
	MinTickerLength = 4
	// MaxTickerLength defines the longest ticker length in bytes.
	MaxTickerLength = 5
)

// Ticker defines BRC-20 token identifier.
type Ticker struct {
	value string
}

// NewTicker creates new Ticker from identifier.
// NOTE: Length is measured in bytes, so "ordi" is valid while 4 multi-byte symbols are not.
func NewTicker(identifier string) (Ticker, error) {
	ticker := Ticker{value: identifier}
	if err := ticker.validate(); err != nil {
		return Ticker{}, err
	}

	return ticker, nil
}

// MustTicker uses NewTicker, panics in case of error.
func MustTicker(identifier string) Ticker {
	ticker, err := NewTicker(identifier)
	if err != nil {
		panic(err)
	}

	return ticker
}

// validate checks ticker length, zero Ticker is invalid.
func (t Ticker) validate() error {
	if len(t.value) != MinTickerLength && len(t.value) != MaxTickerLength {
		return errors.Wrap(ErrInvalidParams, "ticker must be exactly 4 or 5 bytes length")
	}

	return nil
}

// String returns ticker identifier as it was provided.
func (t Ticker) String() string {
	return t.value
}
