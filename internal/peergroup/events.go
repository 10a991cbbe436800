package peergroup

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/nodewallet/internal/chainstore"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/x/chflow"

	"github.com/btcsuite/btcd/wire"
)

type eventKind int

const (
	eventConnected eventKind = iota
	eventDisconnected
	eventHeaders
	eventTransaction
	eventSynced
)

type event struct {
	kind      eventKind
	conn      Conn
	peerCount int
	headers   []*wire.BlockHeader
	tx        *wire.MsgTx
	height    int32
}

func (s *session) OnHeaders(conn Conn, headers []*wire.BlockHeader) {
	_ = chflow.Send(s.ctx, s.events, event{kind: eventHeaders, conn: conn, headers: headers})
}

func (s *session) OnTransaction(conn Conn, tx *wire.MsgTx) {
	_ = chflow.Send(s.ctx, s.events, event{kind: eventTransaction, conn: conn, tx: tx})
}

// runEventLoop is the only goroutine that writes the chain store, hands
// transactions to the sink and calls the listener.
func (s *session) runEventLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		e, ok := chflow.Receive(ctx, s.events)
		if !ok {
			return
		}

		switch e.kind {
		case eventConnected:
			s.listener.PeerConnected(e.conn.Addr(), e.peerCount)
		case eventDisconnected:
			s.listener.PeerDisconnected(e.conn.Addr(), e.peerCount)
		case eventHeaders:
			s.handleHeaders(ctx, e.conn, e.headers)
		case eventTransaction:
			s.handleTransaction(ctx, e.conn, e.tx)
		case eventSynced:
			s.listener.ChainDownloaded(e.height)
		}
	}
}

func (s *session) handleHeaders(ctx context.Context, conn Conn, headers []*wire.BlockHeader) {
	s.metrics.headersReceived.Add(ctx, int64(len(headers)))

	added, err := s.chain.PutHeaders(headers)
	if err != nil {
		level := logger.Error
		if errors.Is(err, chainstore.ErrOrphanHeader) {
			level = logger.Warn
		}
		level(ctx, "headers rejected", "peer.addr", conn.Addr(), "headers.count", len(headers), "error", err)
	}

	height := s.chain.Height()
	if added > 0 {
		logger.Debug(ctx, "headers applied", "peer.addr", conn.Addr(), "headers.added", added, "chain.height", height)
		s.listener.ChainDownloadProgress(height, max(height, s.BestPeerHeight()))
	}

	if s.isSyncPeer(conn) {
		s.continueSync(ctx, conn, added, len(headers))
	}

	s.changed.Notify()
}

func (s *session) handleTransaction(ctx context.Context, conn Conn, tx *wire.MsgTx) {
	hash := tx.TxHash()
	if err := s.sink.ReceiveTransaction(ctx, tx); err != nil {
		logger.Error(ctx, "transaction not applied", "peer.addr", conn.Addr(), "tx.hash", hash, "error", err)
		return
	}

	s.listener.TransactionReceived(tx)
}

// maintainPeers keeps up to maxPeers connections, looking for new peers on
// every interval tick and right after a disconnect.
func (s *session) maintainPeers(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.discoveryInterval)
	defer ticker.Stop()

	for {
		s.fillPeers(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-s.wake:
		}
	}
}

func (s *session) fillPeers(ctx context.Context) {
	if s.PeerCount() >= s.maxPeers {
		return
	}

	addrs, err := s.discovery.DiscoverPeers(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn(ctx, "peer discovery failed", "error", err)
		}
		return
	}

	for _, addr := range addrs {
		if ctx.Err() != nil || s.PeerCount() >= s.maxPeers {
			return
		}
		if s.hasPeer(addr) {
			continue
		}

		s.connect(ctx, addr)
	}
}

func (s *session) connect(ctx context.Context, addr string) {
	dialCtx, cancel := context.WithTimeout(ctx, s.connectTimeout)
	conn, err := s.dialer.Dial(dialCtx, addr, s)
	cancel()
	if err != nil {
		logger.Debug(ctx, "peer connection failed", "peer.addr", addr, "error", err)
		return
	}

	s.peersMu.Lock()
	s.peers[conn.Addr()] = conn
	count := len(s.peers)
	s.peersMu.Unlock()

	s.metrics.peersConnected.Add(ctx, 1)
	logger.Info(ctx, "peer connected", "peer.addr", conn.Addr(), "peer.height", conn.BestHeight(), "peers.count", count)

	s.wg.Add(1)
	go s.watchPeer(ctx, conn)

	_ = chflow.Send(ctx, s.events, event{kind: eventConnected, conn: conn, peerCount: count})
	s.changed.Notify()
}

// watchPeer removes conn from the session once it disconnects.
func (s *session) watchPeer(ctx context.Context, conn Conn) {
	defer s.wg.Done()

	select {
	case <-conn.Done():
	case <-ctx.Done():
		conn.Close()
	}

	s.peersMu.Lock()
	if current, ok := s.peers[conn.Addr()]; ok && current == conn {
		delete(s.peers, conn.Addr())
	}
	count := len(s.peers)
	s.peersMu.Unlock()

	s.metrics.peersConnected.Add(context.WithoutCancel(ctx), -1)
	logger.Info(ctx, "peer disconnected", "peer.addr", conn.Addr(), "peers.count", count)

	_ = chflow.Send(ctx, s.events, event{kind: eventDisconnected, conn: conn, peerCount: count})
	_ = chflow.TrySend(s.wake, struct{}{})
	s.changed.Notify()
}

func (s *session) hasPeer(addr string) bool {
	s.peersMu.RLock()
	defer s.peersMu.RUnlock()

	_, ok := s.peers[addr]
	return ok
}
