package walletservice

import (
	"context"

	"github.com/gabapcia/nodewallet/internal/pkg/logger"

	"github.com/btcsuite/btcd/wire"
)

// ReceiveTransaction applies a transaction relayed by the network. It runs
// under the same lock as SendPayment. A wallet change is saved right away;
// a failed save is logged and retried by the next change.
func (s *Service) ReceiveTransaction(ctx context.Context, tx *wire.MsgTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wallet == nil {
		return ErrServiceNotReady
	}

	changed, err := s.wallet.ReceiveTransaction(tx)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	logger.Info(ctx, "wallet transaction received", "tx.hash", tx.TxHash(), "wallet.balance", s.wallet.Balance())
	s.observer.WalletChanged(ctx, s.wallet)

	if err := s.store.Save(ctx, s.wallet, s.walletPath); err != nil {
		s.metrics.persistWarning(ctx)
		logger.Warn(ctx, "wallet not saved after incoming transaction", "wallet.path", s.walletPath, "tx.hash", tx.TxHash(), "error", err)
	}

	return nil
}
