package peergroup

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/x/chflow"

	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrNoPeersAvailable is returned when no peer is connected to serve a request.
	ErrNoPeersAvailable = errors.New("no peers available")

	// ErrSyncTimeout is returned when peers are connected but the chain did
	// not reach their height in time.
	ErrSyncTimeout = errors.New("block chain download timed out")
)

// syncState tracks the peer serving the current download.
type syncState struct {
	peer Conn
	done bool
}

func isRetryableSyncError(err error) bool {
	return errors.Is(err, ErrNoPeersAvailable) || errors.Is(err, ErrSyncTimeout)
}

func (s *session) DownloadBlockChain(ctx context.Context) error {
	if !s.started() {
		return ErrSessionNotStarted
	}

	logger.Info(ctx, "block chain download started", "chain.height", s.ChainHeight())

	err := s.retry.Execute(ctx, func() error {
		return s.syncOnce(ctx)
	})
	s.resetSync()

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn(ctx, "block chain download canceled, stopping network session", "chain.height", s.ChainHeight())
			s.Stop()
			return ctxErr
		}
		logger.Error(ctx, "block chain download failed", "chain.height", s.ChainHeight(), "error", err)
		return err
	}

	height := s.ChainHeight()
	logger.Info(ctx, "block chain downloaded", "chain.height", height)
	_ = chflow.Send(s.ctx, s.events, event{kind: eventSynced, height: height})
	return nil
}

// syncOnce is a single download attempt bounded by the sync timeout.
func (s *session) syncOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.syncTimeout)
	defer cancel()

	var requested Conn
	for {
		wait := s.changed.Wait()

		conn, target := s.bestPeer()
		if conn != nil {
			if s.caughtUp(conn, target) {
				return nil
			}

			if conn != requested {
				if err := s.requestHeaders(conn); err != nil {
					logger.Warn(ctx, "headers request failed", "peer.addr", conn.Addr(), "error", err)
				} else {
					requested = conn
				}
			}
		}

		select {
		case <-wait:
		case <-ctx.Done():
			if conn == nil {
				return ErrNoPeersAvailable
			}
			return fmt.Errorf("%w: height %d of %d", ErrSyncTimeout, s.ChainHeight(), target)
		}
	}
}

func (s *session) caughtUp(conn Conn, target int32) bool {
	if s.ChainHeight() >= target {
		return true
	}

	s.syncMu.Lock()
	defer s.syncMu.Unlock()
	return s.syncing.peer == conn && s.syncing.done
}

func (s *session) requestHeaders(conn Conn) error {
	s.syncMu.Lock()
	s.syncing = syncState{peer: conn}
	s.syncMu.Unlock()

	locator, err := s.chain.Locator()
	if err != nil {
		return err
	}
	return conn.RequestHeaders(locator)
}

func (s *session) isSyncPeer(conn Conn) bool {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()
	return s.syncing.peer == conn
}

// continueSync asks the sync peer for the next batch while it keeps sending
// full batches of new headers, otherwise marks the download as finished.
func (s *session) continueSync(ctx context.Context, conn Conn, added, received int) {
	if added > 0 && received >= wire.MaxBlockHeadersPerMsg {
		locator, err := s.chain.Locator()
		if err == nil {
			err = conn.RequestHeaders(locator)
		}
		if err == nil {
			return
		}
		logger.Warn(ctx, "headers request failed", "peer.addr", conn.Addr(), "error", err)
	}

	s.syncMu.Lock()
	s.syncing.done = true
	s.syncMu.Unlock()
}

func (s *session) resetSync() {
	s.syncMu.Lock()
	s.syncing = syncState{}
	s.syncMu.Unlock()
}
