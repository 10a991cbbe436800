package cli

import (
	"context"

	"github.com/gabapcia/nodewallet/internal/addressbook"

	"github.com/urfave/cli/v3"
)

// listAddressesCommand returns a CLI command that prints the receiving
// addresses of the wallet network with their labels.
//
// Usage example:
//
//	nodewallet addresses
func listAddressesCommand(ws WalletService, book addressbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "addresses",
		Description: "Lists the receiving addresses recorded for the wallet network.",
		Usage:       "Prints one address per line followed by its label.",
		Action: func(ctx context.Context, c *cli.Command) error {
			entries, err := book.List(ctx, ws.Network())
			if err != nil {
				return err
			}

			for _, e := range entries {
				if err := printf(c, "%s\t%s\n", e.Address, e.Label); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// labelAddressCommand returns a CLI command that sets the label of a
// receiving address.
//
// Usage example:
//
//	nodewallet label --address 1BoatSLRHtKNngkdXEeobR76b53LETtpyT --label savings
func labelAddressCommand(ws WalletService, book addressbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "label",
		Description: "Sets the label of a receiving address on the wallet network.",
		Usage:       "Labels an address. Must provide both address and label.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Receiving address to label",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "label",
				Usage:    "Label text",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				address = c.String("address")
				label   = c.String("label")
			)

			return book.SetLabel(ctx, ws.Network(), address, label)
		},
	}
}
