package btcd

import (
	"sync"

	"github.com/gabapcia/nodewallet/internal/peergroup"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/peer"
	"github.com/btcsuite/btcd/wire"
)

type conn struct {
	addr string
	peer *peer.Peer

	verack     chan struct{}
	verackOnce sync.Once
	done       chan struct{}
}

var _ peergroup.Conn = (*conn)(nil)

func (c *conn) Addr() string {
	return c.addr
}

func (c *conn) BestHeight() int32 {
	return c.peer.LastBlock()
}

func (c *conn) RequestHeaders(locator []*chainhash.Hash) error {
	if !c.peer.Connected() {
		return ErrDisconnected
	}

	msg := wire.NewMsgGetHeaders()
	for _, hash := range locator {
		if err := msg.AddBlockLocatorHash(hash); err != nil {
			return err
		}
	}

	c.peer.QueueMessage(msg, nil)
	return nil
}

func (c *conn) SendTransaction(tx *wire.MsgTx) error {
	if !c.peer.Connected() {
		return ErrDisconnected
	}

	c.peer.QueueMessage(tx, nil)
	return nil
}

func (c *conn) Done() <-chan struct{} {
	return c.done
}

func (c *conn) Close() {
	c.peer.Disconnect()
}
