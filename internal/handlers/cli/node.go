package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/nodewallet/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// startCommand returns a CLI command that downloads the chain and then keeps
// the wallet connected, receiving payments, until SIGINT or SIGTERM.
//
// Usage example:
//
//	nodewallet start
func startCommand(ws WalletService) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Downloads the block chain and keeps the wallet online to receive payments.",
		Usage:       "Runs the wallet until Ctrl+C or a termination signal.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := ws.DownloadBlockChain(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Warn(ctx, "block chain download incomplete", "error", err)
			}

			<-ctx.Done()
			return nil
		},
	}
}

// syncCommand returns a CLI command that downloads the block chain and exits.
//
// Usage example:
//
//	nodewallet sync
func syncCommand(ws WalletService) *cli.Command {
	return &cli.Command{
		Name:        "sync",
		Description: "Downloads the block chain up to the best height announced by the connected peers.",
		Usage:       "Synchronizes the chain store and exits.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := ws.DownloadBlockChain(ctx); err != nil {
				return err
			}

			height, err := ws.ChainHeight()
			if err != nil {
				return err
			}

			return printf(c, "chain synchronized at height %d\n", height)
		},
	}
}
