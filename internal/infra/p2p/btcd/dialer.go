// Package btcd connects the network session to Bitcoin peers with the btcd
// peer implementation.
package btcd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gabapcia/nodewallet/internal/peergroup"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/peer"
	"github.com/btcsuite/btcd/wire"
)

// ErrDisconnected is returned when a message is sent to a closed connection.
var ErrDisconnected = errors.New("peer disconnected")

const (
	userAgentName    = "nodewallet"
	userAgentVersion = "0.1.0"
)

type dialer struct {
	params      *chaincfg.Params
	netDialer   net.Dialer
	newestBlock func() (*chainhash.Hash, int32, error)
}

var _ peergroup.Dialer = (*dialer)(nil)

func (d *dialer) Dial(ctx context.Context, addr string, h peergroup.Handler) (peergroup.Conn, error) {
	c := &conn{
		addr:   addr,
		verack: make(chan struct{}),
		done:   make(chan struct{}),
	}

	cfg := &peer.Config{
		NewestBlock:      d.newestBlock,
		UserAgentName:    userAgentName,
		UserAgentVersion: userAgentVersion,
		ChainParams:      d.params,
		TrickleInterval:  10 * time.Second,
		ProtocolVersion:  peer.MaxProtocolVersion,
		Listeners: peer.MessageListeners{
			OnVerAck: func(*peer.Peer, *wire.MsgVerAck) {
				c.verackOnce.Do(func() { close(c.verack) })
			},
			OnHeaders: func(_ *peer.Peer, msg *wire.MsgHeaders) {
				h.OnHeaders(c, msg.Headers)
			},
			OnTx: func(_ *peer.Peer, msg *wire.MsgTx) {
				h.OnTransaction(c, msg)
			},
			OnInv: func(p *peer.Peer, msg *wire.MsgInv) {
				requestAnnouncedTransactions(p, msg)
			},
		},
	}

	p, err := peer.NewOutboundPeer(cfg, addr)
	if err != nil {
		return nil, fmt.Errorf("create peer %s: %w", addr, err)
	}
	c.peer = p

	netConn, err := d.netDialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	p.AssociateConnection(netConn)
	go func() {
		p.WaitForDisconnect()
		close(c.done)
	}()

	select {
	case <-c.verack:
	case <-c.done:
		return nil, fmt.Errorf("%w: %s closed during handshake", ErrDisconnected, addr)
	case <-ctx.Done():
		p.Disconnect()
		return nil, ctx.Err()
	}

	// announce new blocks with headers instead of inventory
	p.QueueMessage(wire.NewMsgSendHeaders(), nil)

	logger.Debug(ctx, "peer handshake completed",
		"peer.addr", addr,
		"peer.user_agent", p.UserAgent(),
		"peer.height", p.LastBlock(),
	)
	return c, nil
}

// requestAnnouncedTransactions answers transaction announcements with a
// getdata so the transactions themselves are delivered.
func requestAnnouncedTransactions(p *peer.Peer, msg *wire.MsgInv) {
	getData := wire.NewMsgGetData()
	for _, inv := range msg.InvList {
		if inv.Type != wire.InvTypeTx && inv.Type != wire.InvTypeWitnessTx {
			continue
		}
		if err := getData.AddInvVect(inv); err != nil {
			break
		}
	}

	if len(getData.InvList) > 0 {
		p.QueueMessage(getData, nil)
	}
}

type config struct {
	dialTimeout time.Duration
	newestBlock func() (*chainhash.Hash, int32, error)
}

// Option configures the dialer.
type Option func(*config)

// New creates a peergroup.Dialer for the network described by params.
func New(params *chaincfg.Params, opts ...Option) *dialer {
	cfg := config{
		dialTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &dialer{
		params:      params,
		netDialer:   net.Dialer{Timeout: cfg.dialTimeout},
		newestBlock: cfg.newestBlock,
	}
}

// WithDialTimeout bounds the TCP connect.
func WithDialTimeout(d time.Duration) Option {
	return func(c *config) {
		c.dialTimeout = d
	}
}

// WithNewestBlock reports the local chain tip in the version handshake.
func WithNewestBlock(fn func() (*chainhash.Hash, int32, error)) Option {
	return func(c *config) {
		c.newestBlock = fn
	}
}
