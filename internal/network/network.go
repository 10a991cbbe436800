// Package network defines the network selector a wallet service is bound to
// and the chain parameters and file names that derive from it.
package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// ErrUnknownNetwork is returned when a selector string does not name a supported network.
var ErrUnknownNetwork = errors.New("unknown network")

const (
	filePrefix    = "multibit"
	testNetSuffix = "testnet"
	separator     = "-"

	walletSuffix     = ".wallet"
	blockchainSuffix = ".blockchain"
)

// Selector identifies which network a service targets. It is fixed for the
// lifetime of a service instance.
type Selector string

const (
	Main Selector = "main"
	Test Selector = "test"
)

// Parse converts user input into a Selector.
func Parse(s string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main", "mainnet", "prod", "prodnet":
		return Main, nil
	case "test", "testnet", "testnet3":
		return Test, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
	}
}

// Validate reports whether s is one of the supported selectors.
func (s Selector) Validate() error {
	switch s {
	case Main, Test:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNetwork, string(s))
	}
}

// IsTest reports whether the selector points at the test network.
func (s Selector) IsTest() bool {
	return s == Test
}

// Params returns the chain parameters for the selector.
// Unknown selectors fall back to the main network parameters.
func (s Selector) Params() *chaincfg.Params {
	if s.IsTest() {
		return &chaincfg.TestNet3Params
	}

	return &chaincfg.MainNetParams
}

// FilePrefix returns the prefix shared by every file persisted for the network.
//
// Format: "multibit" or "multibit-testnet".
func (s Selector) FilePrefix() string {
	if s.IsTest() {
		return filePrefix + separator + testNetSuffix
	}

	return filePrefix
}

// WalletFile returns the default wallet file name for the network.
func (s Selector) WalletFile() string {
	return s.FilePrefix() + walletSuffix
}

// ChainFile returns the default chain store file name for the network.
func (s Selector) ChainFile() string {
	return s.FilePrefix() + blockchainSuffix
}

func (s Selector) String() string {
	return string(s)
}
