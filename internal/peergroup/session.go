// Package peergroup owns the connections to the Bitcoin network: it discovers
// peers, keeps a bounded set of them connected, downloads the header chain
// and relays transactions in both directions.
package peergroup

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/resilience/retry"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrSessionAlreadyStarted is returned by a second call to Start.
	ErrSessionAlreadyStarted = errors.New("session already started")

	// ErrSessionNotStarted is returned by operations that need a running session.
	ErrSessionNotStarted = errors.New("session not started")

	// ErrSessionClosed is returned by Start after Stop.
	ErrSessionClosed = errors.New("session closed")
)

const eventChannelBufferSize = 64

// ChainStore is the header chain the session extends.
type ChainStore interface {
	Height() int32
	Locator() ([]*chainhash.Hash, error)
	PutHeaders(headers []*wire.BlockHeader) (int, error)
}

// TransactionSink receives the transactions relayed by peers.
type TransactionSink interface {
	ReceiveTransaction(ctx context.Context, tx *wire.MsgTx) error
}

// Session is the network session of a wallet.
type Session interface {
	// Start begins peer discovery and the event loop. Connections are made
	// in the background.
	Start(ctx context.Context) error

	// Stop disconnects every peer and waits for the background work to end.
	Stop()

	// DownloadBlockChain blocks until the local chain reaches the best height
	// announced by the connected peers. Canceling ctx stops the session and
	// closes every connection before it returns.
	DownloadBlockChain(ctx context.Context) error

	// Broadcast relays tx to every connected peer.
	Broadcast(ctx context.Context, tx *wire.MsgTx) error

	PeerCount() int
	ChainHeight() int32
	BestPeerHeight() int32
}

type session struct {
	mu        sync.Mutex
	running   atomic.Bool
	isStarted bool
	isClosed  bool
	closeFunc func()

	// ctx is set by Start before any connection exists and read by the
	// handler callbacks.
	ctx context.Context
	wg  sync.WaitGroup

	chain     ChainStore
	discovery Discovery
	dialer    Dialer
	sink      TransactionSink
	listener  Listener
	metrics   *metrics

	maxPeers          int
	connectTimeout    time.Duration
	syncTimeout       time.Duration
	discoveryInterval time.Duration
	retry             retry.Retry

	events  chan event
	wake    chan struct{}
	changed *signal

	peersMu sync.RWMutex
	peers   map[string]Conn

	syncMu  sync.Mutex
	syncing syncState
}

var (
	_ Session = (*session)(nil)
	_ Handler = (*session)(nil)
)

func (s *session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return ErrSessionClosed
	}
	if s.isStarted {
		return ErrSessionAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	s.ctx = ctx
	s.closeFunc = cancel

	s.wg.Add(2)
	go s.runEventLoop(ctx)
	go s.maintainPeers(ctx)

	s.isStarted = true
	s.running.Store(true)
	logger.Info(ctx, "network session started", "peers.max", s.maxPeers)
	return nil
}

func (s *session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isClosed = true
	if !s.isStarted {
		return
	}

	s.running.Store(false)
	s.closeFunc()
	s.wg.Wait()

	s.peersMu.Lock()
	for addr, conn := range s.peers {
		conn.Close()
		delete(s.peers, addr)
	}
	s.peersMu.Unlock()

	s.isStarted = false
	s.closeFunc = nil
	logger.Info(context.Background(), "network session stopped")
}

// started does not take mu so it can be called while Stop waits.
func (s *session) started() bool {
	return s.running.Load()
}

func (s *session) PeerCount() int {
	s.peersMu.RLock()
	defer s.peersMu.RUnlock()
	return len(s.peers)
}

func (s *session) ChainHeight() int32 {
	return s.chain.Height()
}

func (s *session) BestPeerHeight() int32 {
	_, height := s.bestPeer()
	return height
}

// bestPeer returns the connected peer announcing the highest chain.
func (s *session) bestPeer() (Conn, int32) {
	s.peersMu.RLock()
	defer s.peersMu.RUnlock()

	var (
		best   Conn
		height int32
	)
	for _, conn := range s.peers {
		if h := conn.BestHeight(); best == nil || h > height {
			best, height = conn, h
		}
	}
	return best, height
}

func (s *session) connectedPeers() []Conn {
	s.peersMu.RLock()
	defer s.peersMu.RUnlock()

	conns := make([]Conn, 0, len(s.peers))
	for _, conn := range s.peers {
		conns = append(conns, conn)
	}
	return conns
}

type config struct {
	listener          Listener
	maxPeers          int
	connectTimeout    time.Duration
	syncTimeout       time.Duration
	discoveryInterval time.Duration
	syncAttempts      uint
	retry             retry.Retry
}

// Option configures a session.
type Option func(*config)

// New creates a session extending chain with headers from peers found through
// discovery. Incoming transactions are handed to sink.
//
// Defaults: 4 peers, 10s connect timeout, 2m per sync attempt, rediscovery
// every 30s, 3 sync attempts.
func New(chain ChainStore, discovery Discovery, dialer Dialer, sink TransactionSink, opts ...Option) *session {
	cfg := config{
		listener:          NopListener{},
		maxPeers:          4,
		connectTimeout:    10 * time.Second,
		syncTimeout:       2 * time.Minute,
		discoveryInterval: 30 * time.Second,
		syncAttempts:      3,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.retry == nil {
		cfg.retry = retry.New(retry.WithAttempts(cfg.syncAttempts), retry.WithRetryIf(isRetryableSyncError))
	}

	return &session{
		chain:             chain,
		discovery:         discovery,
		dialer:            dialer,
		sink:              sink,
		listener:          cfg.listener,
		metrics:           newMetrics(),
		maxPeers:          cfg.maxPeers,
		connectTimeout:    cfg.connectTimeout,
		syncTimeout:       cfg.syncTimeout,
		discoveryInterval: cfg.discoveryInterval,
		retry:             cfg.retry,
		events:            make(chan event, eventChannelBufferSize),
		wake:              make(chan struct{}, 1),
		changed:           newSignal(),
		peers:             make(map[string]Conn),
	}
}

// WithListener registers the listener before any connection is made.
func WithListener(l Listener) Option {
	return func(c *config) {
		if l != nil {
			c.listener = l
		}
	}
}

// WithMaxPeers bounds the number of simultaneous connections.
func WithMaxPeers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxPeers = n
		}
	}
}

// WithConnectTimeout bounds a single dial and handshake.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *config) {
		c.connectTimeout = d
	}
}

// WithSyncTimeout bounds a single chain download attempt.
func WithSyncTimeout(d time.Duration) Option {
	return func(c *config) {
		c.syncTimeout = d
	}
}

// WithDiscoveryInterval sets how often missing peers are looked up again.
func WithDiscoveryInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.discoveryInterval = d
		}
	}
}

// WithSyncAttempts sets how many times DownloadBlockChain tries before
// giving up. Ignored when WithRetry is used.
func WithSyncAttempts(n uint) Option {
	return func(c *config) {
		if n > 0 {
			c.syncAttempts = n
		}
	}
}

// WithRetry replaces the retry policy of DownloadBlockChain.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// signal wakes every waiter each time Notify is called.
type signal struct {
	mu sync.Mutex
	ch chan struct{}
}

func newSignal() *signal {
	return &signal{ch: make(chan struct{})}
}

// Wait returns a channel closed by the next Notify. Take it before checking
// the condition being waited on.
func (s *signal) Wait() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch
}

func (s *signal) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(s.ch)
	s.ch = make(chan struct{})
}
