// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Command brc20 previews BRC-20 inscriptions: payload, witness script and commit address.
package main

import (
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
