// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package brc20

const (
	// ProtocolID defines protocol identifier of BRC-20 payloads.
	ProtocolID = "brc-20"
	// ContentType defines MIME type of BRC-20 inscriptions.
	ContentType = "text/plain;charset=utf-8"
)

// Operation defines BRC-20 operation type.
type Operation string

const (
	// OperationDeploy defines new ticker deployment.
	OperationDeploy Operation = "deploy"
	// OperationMint defines minting of deployed ticker.
	OperationMint Operation = "mint"
	// OperationTransfer defines inscribing of transferable balance.
	OperationTransfer Operation = "transfer"
)

// IsValid returns true if the operation is known by the protocol.
func (o Operation) IsValid() bool {
	switch o {
	case OperationDeploy, OperationMint, OperationTransfer:
		return true
	}

	return false
}

// String returns operation as string.
func (o Operation) String() string {
	return string(o)
}
