package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/nodewallet/internal/walletservice"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v3"
)

// defaultFee is the fee in satoshis used when --fee is not set.
const defaultFee = 10_000

// sendCommand returns a CLI command that pays an amount of coins to an address.
//
// Usage example:
//
//	nodewallet send --address mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn --amount 0.5 --fee 10000
func sendCommand(ws WalletService) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Builds, signs and broadcasts a payment, then saves the wallet.",
		Usage:       "Sends coins. Must provide the destination address and the amount.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Destination address on the wallet network",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount in coins (e.g., 0.5)",
				Required: true,
			},
			&cli.Int64Flag{
				Name:  "fee",
				Usage: "Fee in satoshis",
				Value: defaultFee,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				address = c.String("address")
				amount  = c.String("amount")
				fee     = c.Int64("fee")
			)

			tx, err := ws.SendPayment(ctx, address, amount, fee)

			var (
				persistWarning *walletservice.PersistenceWarning
				recordWarning  *walletservice.RecordWarning
			)
			if errors.As(err, &persistWarning) || errors.As(err, &recordWarning) {
				fmt.Fprintf(c.Root().ErrWriter, "warning: %v\n", err)
				err = nil
			}
			if err != nil {
				return err
			}

			return printf(c, "%s\n", tx.Hash)
		},
	}
}

// infoCommand returns a CLI command that prints the state of the wallet service.
//
// Usage example:
//
//	nodewallet info
func infoCommand(ws WalletService) *cli.Command {
	return &cli.Command{
		Name:        "info",
		Description: "Prints the network, service state, wallet file, balance, addresses and network status.",
		Usage:       "Shows the wallet status.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := printf(c, "network: %s\nstate: %s\n", ws.Network(), ws.State()); err != nil {
				return err
			}
			if reason := ws.Reason(); reason != nil {
				if err := printf(c, "reason: %v\n", reason); err != nil {
					return err
				}
			}

			if balance, err := ws.Balance(); err == nil {
				if err := printf(c, "wallet: %s\nbalance: %s\n", ws.WalletPath(), btcutil.Amount(balance)); err != nil {
					return err
				}
			}

			if addrs, err := ws.Addresses(); err == nil {
				for _, addr := range addrs {
					if err := printf(c, "address: %s\n", addr); err != nil {
						return err
					}
				}
			}

			if height, err := ws.ChainHeight(); err == nil {
				if err := printf(c, "chain height: %d\n", height); err != nil {
					return err
				}
			}

			if peers, err := ws.PeerCount(); err == nil {
				if err := printf(c, "peers: %d\n", peers); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func printf(c *cli.Command, format string, args ...any) error {
	_, err := fmt.Fprintf(c.Root().Writer, format, args...)
	return err
}
