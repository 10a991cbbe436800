package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/nodewallet/internal/addressbook"
	"github.com/gabapcia/nodewallet/internal/chainstore"
	"github.com/gabapcia/nodewallet/internal/config"
	"github.com/gabapcia/nodewallet/internal/handlers/cli"
	"github.com/gabapcia/nodewallet/internal/infra/discovery"
	"github.com/gabapcia/nodewallet/internal/infra/p2p/btcd"
	"github.com/gabapcia/nodewallet/internal/infra/storage/redis"
	"github.com/gabapcia/nodewallet/internal/network"
	"github.com/gabapcia/nodewallet/internal/peergroup"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/nodewallet/internal/pkg/transport/http"
	"github.com/gabapcia/nodewallet/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/nodewallet/internal/walletservice"
	"github.com/gabapcia/nodewallet/internal/walletstore"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer logger.Sync()

	sel := cfg.Selector()
	ctx = logger.WithFields(ctx, "wallet.network", sel)

	book, closeBook, err := newAddressBook(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBook()

	events := cli.NewEventLogger(ctx)
	deps := walletservice.Dependencies{
		WalletStore: walletstore.New(
			walletstore.WithDataDir(cfg.DataDir),
			walletstore.WithObserver(events),
		),
		OpenChainStore: func(path string, sel network.Selector) (walletservice.ChainStore, error) {
			st, err := chainstore.Open(path, sel)
			if err != nil {
				return nil, err
			}
			return chainStore{st}, nil
		},
		NewSession: func(chain walletservice.ChainStore, sink peergroup.TransactionSink) (peergroup.Session, error) {
			peers, err := newDiscovery(cfg, sel)
			if err != nil {
				return nil, err
			}

			dialer := btcd.New(sel.Params(),
				btcd.WithDialTimeout(cfg.ConnectTimeout),
				btcd.WithNewestBlock(chain.(chainStore).newestBlock),
			)

			return peergroup.New(chain, peers, dialer, sink,
				peergroup.WithListener(events),
				peergroup.WithMaxPeers(cfg.MaxPeers),
				peergroup.WithConnectTimeout(cfg.ConnectTimeout),
				peergroup.WithSyncTimeout(cfg.SyncTimeout),
				peergroup.WithSyncAttempts(cfg.SyncAttempts),
				peergroup.WithDiscoveryInterval(cfg.DiscoveryInterval),
			), nil
		},
	}

	svc := walletservice.New(ctx, walletservice.Config{
		Network:    sel,
		WalletPath: cfg.WalletPath,
		DataDir:    cfg.DataDir,
	}, deps,
		walletservice.WithAddressBook(book),
		walletservice.WithObserver(events),
	)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error(ctx, "wallet service not closed cleanly", "error", err)
		}
	}()

	return cli.Run(ctx, svc, book)
}

// chainStore reports the tip of the header chain in the version handshake.
type chainStore struct {
	*chainstore.Store
}

func (c chainStore) newestBlock() (*chainhash.Hash, int32, error) {
	tip := c.Tip()
	return &tip.Hash, tip.Height, nil
}

func newAddressBook(ctx context.Context, cfg config.Config) (addressbook.Service, func(), error) {
	if cfg.RedisAddr == "" {
		return addressbook.New(addressbook.NewMemoryStorage()), func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}

	return addressbook.New(client), func() { _ = client.Close() }, nil
}

func newDiscovery(cfg config.Config, sel network.Selector) (peergroup.Discovery, error) {
	if len(cfg.Peers) > 0 {
		return peergroup.StaticDiscovery(cfg.Peers), nil
	}

	var rendezvous peergroup.Discovery
	if cfg.RendezvousURL != "" {
		client := jsonrpc.NewClient(transporthttp.NewClient(), cfg.RendezvousURL)
		rendezvous = discovery.NewRendezvous(client, cfg.RendezvousChannel, sel.Params().DefaultPort)
	}

	return peergroup.SelectDiscovery(sel, discovery.NewDNSSeed(sel.Params()), rendezvous)
}
