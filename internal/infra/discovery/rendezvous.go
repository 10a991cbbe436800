package discovery

import (
	"context"
	"net"

	"github.com/gabapcia/nodewallet/internal/peergroup"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/nodewallet/internal/pkg/types"
	"github.com/gabapcia/nodewallet/internal/pkg/validator"
)

// DefaultChannel is the rendezvous channel of the test network.
const DefaultChannel = "#bitcoinTEST"

const methodRendezvousPeers = "rendezvous_peers"

type rendezvous struct {
	client      jsonrpc.Client
	channel     string
	defaultPort string
}

var _ peergroup.Discovery = (*rendezvous)(nil)

// DiscoverPeers asks the rendezvous service for the peers announced on the
// channel. Entries without a port get the default port; malformed entries
// are dropped.
func (r *rendezvous) DiscoverPeers(ctx context.Context) ([]string, error) {
	announced, err := jsonrpc.Call[[]string](ctx, r.client, methodRendezvousPeers, r.channel)
	if err != nil {
		return nil, err
	}

	peers := types.NewSet[string]()
	for _, entry := range announced {
		addr := entry
		if _, _, err := net.SplitHostPort(entry); err != nil {
			addr = net.JoinHostPort(entry, r.defaultPort)
		}

		if err := validator.Var("peer", addr, "hostname_port"); err != nil {
			logger.Warn(ctx, "rendezvous peer ignored", "rendezvous.channel", r.channel, "peer.addr", entry, "error", err)
			continue
		}
		peers.Add(addr)
	}

	result := types.Sorted(peers)
	logger.Debug(ctx, "rendezvous channel queried", "rendezvous.channel", r.channel, "peers.count", len(result))
	return result, nil
}

// NewRendezvous returns a discovery backed by the rendezvous service reached
// through client. An empty channel selects DefaultChannel.
func NewRendezvous(client jsonrpc.Client, channel, defaultPort string) *rendezvous {
	if channel == "" {
		channel = DefaultChannel
	}

	return &rendezvous{
		client:      client,
		channel:     channel,
		defaultPort: defaultPort,
	}
}
