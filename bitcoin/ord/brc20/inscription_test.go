// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package brc20_test

import (
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/brc20/bitcoin/ord/brc20"
	"github.com/BoostyLabs/brc20/bitcoin/ord/inscriptions"
)

// inscribeCall stores arguments passed to the Inscriber.
type inscribeCall struct {
	contentType []byte
	body        []byte
	recipient   []byte
}

// recordingInscriber returns Inscriber storing its last call.
func recordingInscriber(call *inscribeCall, err error) brc20.Inscriber {
	return brc20.InscriberFunc(func(contentType, body, recipient []byte) (*inscriptions.Inscription, error) {
		*call = inscribeCall{contentType, body, recipient}
		if err != nil {
			return nil, err
		}

		return &inscriptions.Inscription{ContentType: string(contentType), Body: body}, nil
	})
}

func TestBuilder(t *testing.T) {
	recipient := []byte{0x02, 0x01, 0x02, 0x03}

	t.Run("Transfer", func(t *testing.T) {
		var call inscribeCall
		insc, err := brc20.NewBuilder(recordingInscriber(&call, nil)).Transfer(recipient, brc20.MustTicker("asdf"), "100")
		require.NoError(t, err)
		require.Equal(t, brc20.ContentType, string(call.contentType))
		require.Equal(t, `{"p":"brc-20","op":"transfer","tick":"asdf","amt":"100"}`, string(call.body))
		require.Equal(t, recipient, call.recipient)
		require.Equal(t, call.body, insc.Body)
		require.Same(t, insc.Inscription, insc.Unwrap())
	})

	t.Run("Mint", func(t *testing.T) {
		var call inscribeCall
		insc, err := brc20.NewBuilder(recordingInscriber(&call, nil)).Mint(recipient, brc20.MustTicker("ordi"), "1000")
		require.NoError(t, err)
		require.Equal(t, brc20.ContentType, string(call.contentType))
		require.Equal(t, `{"p":"brc-20","op":"mint","tick":"ordi","amt":"1000"}`, string(call.body))
		require.Equal(t, recipient, call.recipient)
		require.Equal(t, call.body, insc.Unwrap().Body)
	})

	t.Run("Deploy", func(t *testing.T) {
		var call inscribeCall
		insc, err := brc20.NewBuilder(recordingInscriber(&call, nil)).Deploy(recipient, brc20.MustTicker("ordi"), "21000000", "1000")
		require.NoError(t, err)
		require.Equal(t, brc20.ContentType, string(call.contentType))
		require.Equal(t, `{"p":"brc-20","op":"deploy","tick":"ordi","max":"21000000","lim":"1000"}`, string(call.body))
		require.Equal(t, recipient, call.recipient)
		require.Equal(t, brc20.ContentType, insc.ContentType)
	})

	t.Run("inscriber error is returned as is", func(t *testing.T) {
		errInscribe := errors.New("payload too large")
		builder := brc20.NewBuilder(recordingInscriber(new(inscribeCall), errInscribe))
		ticker := brc20.MustTicker("ordi")

		deploy, err := builder.Deploy(recipient, ticker, "1", "1")
		require.Nil(t, deploy)
		require.Same(t, errInscribe, err)

		mint, err := builder.Mint(recipient, ticker, "1")
		require.Nil(t, mint)
		require.Same(t, errInscribe, err)

		transfer, err := builder.Transfer(recipient, ticker, "1")
		require.Nil(t, transfer)
		require.Same(t, errInscribe, err)
	})

	t.Run("no inscription", func(t *testing.T) {
		builder := brc20.NewBuilder(brc20.InscriberFunc(func(_, _, _ []byte) (*inscriptions.Inscription, error) {
			return nil, nil
		}))

		insc, err := builder.Transfer(recipient, brc20.MustTicker("ordi"), "1")
		require.Nil(t, insc)
		require.ErrorIs(t, err, brc20.ErrNoInscription)
	})

	t.Run("zero ticker", func(t *testing.T) {
		var call inscribeCall
		builder := brc20.NewBuilder(recordingInscriber(&call, nil))

		deploy, err := builder.Deploy(recipient, brc20.Ticker{}, "21000000", "1000")
		require.Nil(t, deploy)
		require.ErrorIs(t, err, brc20.ErrInvalidParams)

		mint, err := builder.Mint(recipient, brc20.Ticker{}, "100")
		require.Nil(t, mint)
		require.ErrorIs(t, err, brc20.ErrInvalidParams)

		transfer, err := builder.Transfer(recipient, brc20.Ticker{}, "100")
		require.Nil(t, transfer)
		require.ErrorIs(t, err, brc20.ErrInvalidParams)

		// inscriber is never reached.
		require.Nil(t, call.body)

		transfer, err = brc20.NewTransferInscription(recipient, brc20.Ticker{}, "100")
		require.Nil(t, transfer)
		require.ErrorIs(t, err, brc20.ErrInvalidParams)
	})

	t.Run("ticker is not changed", func(t *testing.T) {
		var first, second inscribeCall
		ticker := brc20.MustTicker("asdf")
		cloned := ticker

		_, err := brc20.NewBuilder(recordingInscriber(&first, nil)).Mint(recipient, ticker, "7")
		require.NoError(t, err)
		_, err = brc20.NewBuilder(recordingInscriber(&second, nil)).Mint(recipient, cloned, "7")
		require.NoError(t, err)

		require.Equal(t, first.body, second.body)
		require.Equal(t, "asdf", ticker.String())
	})
}

func TestDefaultBuilder(t *testing.T) {
	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	recipient := privKey.PubKey().SerializeCompressed()
	ticker := brc20.MustTicker("ordi")

	t.Run("inscriptions", func(t *testing.T) {
		deploy, err := brc20.NewDeployInscription(recipient, ticker, "21000000", "1000")
		require.NoError(t, err)

		mint, err := brc20.NewMintInscription(recipient, ticker, "1000")
		require.NoError(t, err)

		transfer, err := brc20.NewTransferInscription(recipient, ticker, "100")
		require.NoError(t, err)

		for _, insc := range []*inscriptions.Inscription{deploy.Unwrap(), mint.Unwrap(), transfer.Unwrap()} {
			require.True(t, privKey.PubKey().IsEqual(insc.Recipient()))

			script, err := insc.WitnessScript()
			require.NoError(t, err)

			parsed, err := inscriptions.ParseInscriptionFromWitnessData(script)
			require.NoError(t, err)
			require.Equal(t, brc20.ContentType, parsed.ContentType)
			require.Equal(t, insc.Body, parsed.Body)
		}

		require.Equal(t, brc20.TransferPayload(ticker, "100"), transfer.Body)

		// methods of the inscription are promoted.
		addr, err := transfer.Address(&chaincfg.MainNetParams)
		require.NoError(t, err)
		require.NotEmpty(t, addr.String())

		mintAddr, err := mint.Address(&chaincfg.MainNetParams)
		require.NoError(t, err)
		require.NotEqual(t, addr.String(), mintAddr.String())
	})

	t.Run("malformed recipient", func(t *testing.T) {
		insc, err := brc20.NewTransferInscription(recipient[:20], ticker, "100")
		require.Error(t, err)
		require.Nil(t, insc)
	})

	t.Run("oversized payload", func(t *testing.T) {
		amount := make([]byte, inscriptions.MaxBodySize)
		for i := range amount {
			amount[i] = '9'
		}

		insc, err := brc20.NewMintInscription(recipient, ticker, string(amount))
		require.ErrorIs(t, err, inscriptions.ErrBodyTooLarge)
		require.Nil(t, insc)
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		bodies := make([][]byte, 8)
		for i := range bodies {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				insc, err := brc20.NewTransferInscription(recipient, ticker, "100")
				if err == nil {
					bodies[i] = insc.Body
				}
			}(i)
		}
		wg.Wait()

		for _, body := range bodies {
			require.Equal(t, brc20.TransferPayload(ticker, "100"), body)
		}
	})
}
