package cli

import (
	"context"

	"github.com/gabapcia/nodewallet/internal/peergroup"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/wallet"
	"github.com/gabapcia/nodewallet/internal/walletstore"

	"github.com/btcsuite/btcd/wire"
)

// EventLogger logs the network and wallet events of a running wallet.
type EventLogger struct {
	ctx context.Context
}

var (
	_ peergroup.Listener   = (*EventLogger)(nil)
	_ walletstore.Observer = (*EventLogger)(nil)
)

// NewEventLogger returns a listener logging with the fields carried by ctx.
func NewEventLogger(ctx context.Context) *EventLogger {
	return &EventLogger{ctx: ctx}
}

func (l *EventLogger) PeerConnected(addr string, peerCount int) {
	logger.Info(l.ctx, "peer connected", "peer.addr", addr, "peers.count", peerCount)
}

func (l *EventLogger) PeerDisconnected(addr string, peerCount int) {
	logger.Info(l.ctx, "peer disconnected", "peer.addr", addr, "peers.count", peerCount)
}

func (l *EventLogger) ChainDownloadProgress(height, target int32) {
	logger.Debug(l.ctx, "block chain download progress", "chain.height", height, "chain.target", target)
}

func (l *EventLogger) ChainDownloaded(height int32) {
	logger.Info(l.ctx, "block chain downloaded", "chain.height", height)
}

func (l *EventLogger) TransactionReceived(tx *wire.MsgTx) {
	logger.Info(l.ctx, "transaction relayed", "tx.hash", tx.TxHash())
}

func (l *EventLogger) WalletChanged(ctx context.Context, w *wallet.Wallet) {
	logger.Info(ctx, "wallet changed",
		"wallet.network", w.Network(),
		"wallet.balance", w.Balance(),
		"wallet.transactions", len(w.Transactions()),
	)
}
