// Package cli exposes the wallet service as a command-line application.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/nodewallet/internal/addressbook"
	"github.com/gabapcia/nodewallet/internal/network"
	"github.com/gabapcia/nodewallet/internal/walletservice"

	"github.com/urfave/cli/v3"
)

// WalletService is the part of the wallet service the commands drive.
type WalletService interface {
	State() walletservice.State
	Reason() error
	Network() network.Selector
	WalletPath() string
	Balance() (int64, error)
	Addresses() ([]string, error)
	ChainHeight() (int32, error)
	PeerCount() (int, error)
	DownloadBlockChain(ctx context.Context) error
	SendPayment(ctx context.Context, address, amount string, fee int64) (*walletservice.Transaction, error)
}

var _ WalletService = (*walletservice.Service)(nil)

// Run executes the nodewallet CLI application.
//
// Commands:
//
//   - `start`: Syncs the chain and keeps the wallet online until interrupted.
//   - `sync`: Downloads the block chain and exits.
//   - `send`: Sends a payment.
//   - `info`: Prints the wallet and network status.
//   - `addresses`: Lists the receiving addresses and their labels.
//   - `label`: Sets the label of a receiving address.
func Run(ctx context.Context, ws WalletService, book addressbook.Service) error {
	return newApp(ws, book).Run(ctx, os.Args)
}

func newApp(ws WalletService, book addressbook.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "nodewallet",
		Description:           "Command-line interface for a Bitcoin wallet that talks to the peer-to-peer network directly.",
		Usage:                 "nodewallet [command] [flags]",
		Commands: []*cli.Command{
			startCommand(ws),
			syncCommand(ws),
			sendCommand(ws),
			infoCommand(ws),
			listAddressesCommand(ws, book),
			labelAddressCommand(ws, book),
		},
	}
}
