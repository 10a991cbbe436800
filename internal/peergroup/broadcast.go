package peergroup

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/nodewallet/internal/pkg/logger"

	"github.com/btcsuite/btcd/wire"
)

// Broadcast succeeds when at least one connected peer accepted tx.
func (s *session) Broadcast(ctx context.Context, tx *wire.MsgTx) error {
	if !s.started() {
		return ErrSessionNotStarted
	}

	conns := s.connectedPeers()
	if len(conns) == 0 {
		return ErrNoPeersAvailable
	}

	var (
		hash = tx.TxHash()
		errs []error
		sent int
	)
	for _, conn := range conns {
		if err := conn.SendTransaction(tx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", conn.Addr(), err))
			continue
		}
		sent++
	}

	if sent == 0 {
		return errors.Join(append([]error{ErrNoPeersAvailable}, errs...)...)
	}

	for _, err := range errs {
		logger.Warn(ctx, "transaction not relayed", "tx.hash", hash, "error", err)
	}
	logger.Info(ctx, "transaction broadcast", "tx.hash", hash, "peers.count", sent)
	return nil
}
