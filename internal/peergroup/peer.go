package peergroup

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Conn is an established peer connection that completed the version handshake.
type Conn interface {
	// Addr returns the remote address in "host:port" form.
	Addr() string

	// BestHeight returns the best block height announced by the peer.
	BestHeight() int32

	// RequestHeaders asks the peer for the headers following the locator.
	RequestHeaders(locator []*chainhash.Hash) error

	// SendTransaction relays tx to the peer.
	SendTransaction(tx *wire.MsgTx) error

	// Done is closed once the connection is gone.
	Done() <-chan struct{}

	// Close disconnects the peer.
	Close()
}

// Handler receives the messages a connection delivers. Calls may come from
// any goroutine.
type Handler interface {
	OnHeaders(conn Conn, headers []*wire.BlockHeader)
	OnTransaction(conn Conn, tx *wire.MsgTx)
}

// Dialer connects to peers.
type Dialer interface {
	// Dial connects to addr and completes the handshake before returning.
	// ctx bounds the dial and the handshake only, not the connection.
	Dial(ctx context.Context, addr string, h Handler) (Conn, error)
}
