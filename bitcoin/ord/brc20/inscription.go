// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package brc20

import (
	"github.com/cockroachdb/errors"

	"github.com/BoostyLabs/brc20/bitcoin/ord/inscriptions"
)

// ErrNoInscription defines that Inscriber reported success without an inscription.
var ErrNoInscription = errors.New("no inscription constructed")

// Inscriber constructs inscription with provided content addressed to the recipient public key.
type Inscriber interface {
	Inscribe(contentType, body, recipient []byte) (*inscriptions.Inscription, error)
}

// InscriberFunc is an adapter to use ordinary functions as Inscriber.
type InscriberFunc func(contentType, body, recipient []byte) (*inscriptions.Inscription, error)

// Inscribe calls f(contentType, body, recipient).
func (f InscriberFunc) Inscribe(contentType, body, recipient []byte) (*inscriptions.Inscription, error) {
	return f(contentType, body, recipient)
}

// DefaultBuilder builds BRC-20 inscriptions with inscriptions.New.
var DefaultBuilder = NewBuilder(InscriberFunc(inscriptions.New))

// DeployInscription describes inscription of the deploy operation.
type DeployInscription struct {
	*inscriptions.Inscription
}

// Unwrap returns underlying inscription.
func (i *DeployInscription) Unwrap() *inscriptions.Inscription {
	return i.Inscription
}

// MintInscription describes inscription of the mint operation.
type MintInscription struct {
	*inscriptions.Inscription
}

// Unwrap returns underlying inscription.
func (i *MintInscription) Unwrap() *inscriptions.Inscription {
	return i.Inscription
}

// TransferInscription describes inscription of the transfer operation.
type TransferInscription struct {
	*inscriptions.Inscription
}

// Unwrap returns underlying inscription.
func (i *TransferInscription) Unwrap() *inscriptions.Inscription {
	return i.Inscription
}

// Builder provides BRC-20 inscriptions building related logic.
// Builder holds no mutable state and is safe for concurrent use.
type Builder struct {
	inscriber Inscriber
}

// NewBuilder is a constructor for Builder.
func NewBuilder(inscriber Inscriber) *Builder {
	return &Builder{
		inscriber: inscriber,
	}
}

// Deploy builds deploy inscription with max supply and limit per mint addressed to the recipient.
// Ticker not created by NewTicker fails with ErrInvalidParams, errors of the Inscriber are returned as is.
func (b *Builder) Deploy(recipient []byte, ticker Ticker, maxSupply, limitPerMint string) (*DeployInscription, error) {
	if err := ticker.validate(); err != nil {
		return nil, err
	}

	inscription, err := b.inscribe(DeployPayload(ticker, maxSupply, limitPerMint), recipient)
	if err != nil {
		return nil, err
	}

	return &DeployInscription{inscription}, nil
}

// Mint builds mint inscription of amount addressed to the recipient.
// Errors of the Inscriber are returned as is.
func (b *Builder) Mint(recipient []byte, ticker Ticker, amount string) (*MintInscription, error) {
	if err := ticker.validate(); err != nil {
		return nil, err
	}

	inscription, err := b.inscribe(MintPayload(ticker, amount), recipient)
	if err != nil {
		return nil, err
	}

	return &MintInscription{inscription}, nil
}

// Transfer builds transfer inscription of amount addressed to the recipient.
// Errors of the Inscriber are returned as is.
func (b *Builder) Transfer(recipient []byte, ticker Ticker, amount string) (*TransferInscription, error) {
	if err := ticker.validate(); err != nil {
		return nil, err
	}

	inscription, err := b.inscribe(TransferPayload(ticker, amount), recipient)
	if err != nil {
		return nil, err
	}

	return &TransferInscription{inscription}, nil
}

// inscribe passes payload to the Inscriber with BRC-20 content type.
func (b *Builder) inscribe(payload, recipient []byte) (*inscriptions.Inscription, error) {
	inscription, err := b.inscriber.Inscribe([]byte(ContentType), payload, recipient)
	if err != nil {
		return nil, err
	}
	if inscription == nil {
		return nil, errors.WithStack(ErrNoInscription)
	}

	return inscription, nil
}

// NewDeployInscription uses DefaultBuilder to build deploy inscription.
func NewDeployInscription(recipient []byte, ticker Ticker, maxSupply, limitPerMint string) (*DeployInscription, error) {
	return DefaultBuilder.Deploy(recipient, ticker, maxSupply, limitPerMint)
}

// NewMintInscription uses DefaultBuilder to build mint inscription.
func NewMintInscription(recipient []byte, ticker Ticker, amount string) (*MintInscription, error) {
	return DefaultBuilder.Mint(recipient, ticker, amount)
}

// NewTransferInscription uses DefaultBuilder to build transfer inscription.
func NewTransferInscription(recipient []byte, ticker Ticker, amount string) (*TransferInscription, error) {
	return DefaultBuilder.Transfer(recipient, ticker, amount)
}
