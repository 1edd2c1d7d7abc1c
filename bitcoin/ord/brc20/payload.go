// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package brc20

import (
	"fmt"
)

// Field values are inserted verbatim, indexers rely on the field order.
const (
	deployPayloadFormat = `{"p":"%s","op":"%s","tick":"%s","max":"%s","lim":"%s"}`
	amountPayloadFormat = `{"p":"%s","op":"%s","tick":"%s","amt":"%s"}`
)

// DeployPayload returns JSON payload of the deploy operation.
func DeployPayload(ticker Ticker, maxSupply, limitPerMint string) []byte {
	return []byte(fmt.Sprintf(deployPayloadFormat, ProtocolID, OperationDeploy, ticker.value, maxSupply, limitPerMint))
}

// MintPayload returns JSON payload of the mint operation.
func MintPayload(ticker Ticker, amount string) []byte {
	return amountPayload(OperationMint, ticker, amount)
}

// TransferPayload returns JSON payload of the transfer operation.
func TransferPayload(ticker Ticker, amount string) []byte {
	return amountPayload(OperationTransfer, ticker, amount)
}

// amountPayload returns JSON payload of operations with an amount field.
func amountPayload(op Operation, ticker Ticker, amount string) []byte {
	return []byte(fmt.Sprintf(amountPayloadFormat, ProtocolID, op, ticker.value, amount))
}
