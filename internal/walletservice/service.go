// Package walletservice is the entry point of the wallet: it loads the wallet,
// opens the chain store, joins the network and exposes the payment and sync
// operations on top of them.
//
// Construction never fails. A step that cannot complete leaves the service
// Degraded with the cause available from Reason, and the operations that need
// the missing component return ErrServiceNotReady.
package walletservice

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/gabapcia/nodewallet/internal/addressbook"
	"github.com/gabapcia/nodewallet/internal/network"
	"github.com/gabapcia/nodewallet/internal/peergroup"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/validator"
	"github.com/gabapcia/nodewallet/internal/wallet"
	"github.com/gabapcia/nodewallet/internal/walletstore"
)

// ChainStore is the header chain handed to the network session. The service
// only reads its height and closes it.
type ChainStore interface {
	peergroup.ChainStore
	Close() error
}

// Config selects the network and the files of a service instance.
type Config struct {
	Network network.Selector `validate:"required,oneof=main test"`

	// WalletPath is optional. Empty, missing or directory paths fall back to
	// the default wallet file inside DataDir.
	WalletPath string

	// ChainPath defaults to the network chain file inside DataDir.
	ChainPath string

	DataDir string
}

func (c Config) chainPath() string {
	if c.ChainPath != "" {
		return c.ChainPath
	}
	return filepath.Join(c.DataDir, c.Network.ChainFile())
}

// Dependencies are the collaborators the service builds itself from.
type Dependencies struct {
	WalletStore walletstore.Store

	// OpenChainStore opens the chain store file for the network.
	OpenChainStore func(path string, sel network.Selector) (ChainStore, error)

	// NewSession creates the network session over chain. The service passes
	// itself as the sink of relayed transactions. An error, such as
	// peergroup.ErrNoDiscovery, degrades the service at StageNetwork.
	NewSession func(chain ChainStore, sink peergroup.TransactionSink) (peergroup.Session, error)
}

// Service is the wallet service facade.
type Service struct {
	// mu serializes every wallet mutation and the save that follows it.
	mu     sync.Mutex
	wallet *wallet.Wallet

	state      State
	reason     *InitializationError
	network    network.Selector
	walletPath string

	chain   ChainStore
	session peergroup.Session

	store       walletstore.Store
	addressBook addressbook.Service
	observer    walletstore.Observer
	metrics     *metrics

	closeOnce sync.Once
}

var _ peergroup.TransactionSink = (*Service)(nil)

// New builds the service, running the wallet, chain store and network steps
// in order. ctx bounds the lifetime of the network session.
func New(ctx context.Context, cfg Config, deps Dependencies, opts ...Option) *Service {
	c := config{
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&c)
	}

	s := &Service{
		state:       Uninitialized,
		network:     cfg.Network,
		store:       deps.WalletStore,
		addressBook: c.addressBook,
		observer:    c.observer,
		metrics:     newMetrics(),
	}

	s.initialize(ctx, cfg, deps)
	return s
}

func (s *Service) initialize(ctx context.Context, cfg Config, deps Dependencies) {
	s.state = Initializing

	if err := validator.Validate(cfg); err != nil {
		s.degrade(ctx, StageConfig, errors.Join(ErrInvalidConfig, err))
		return
	}

	w, path, err := s.store.LoadOrCreate(ctx, cfg.WalletPath, cfg.Network)
	if err != nil {
		s.degrade(ctx, StageWallet, err)
		return
	}
	s.wallet = w
	s.walletPath = path

	s.reconcileAddressBook(ctx)

	chain, err := deps.OpenChainStore(cfg.chainPath(), cfg.Network)
	if err != nil {
		s.degrade(ctx, StageChainStore, err)
		return
	}

	session, err := deps.NewSession(chain, s)
	if err == nil {
		if err = session.Start(ctx); err != nil {
			session.Stop()
		}
	}
	if err != nil {
		if cerr := chain.Close(); cerr != nil {
			logger.Warn(ctx, "chain store not closed", "chain.path", cfg.chainPath(), "error", cerr)
		}
		s.degrade(ctx, StageNetwork, err)
		return
	}

	s.chain = chain
	s.session = session
	s.state = Ready
	logger.Info(ctx, "wallet service ready",
		"wallet.network", s.network,
		"wallet.path", s.walletPath,
		"chain.height", chain.Height(),
	)
}

func (s *Service) degrade(ctx context.Context, stage string, err error) {
	s.state = Degraded
	s.reason = newInitializationError(stage, err)
	logger.Error(ctx, "wallet service degraded", "stage", stage, "error", err)
}

// reconcileAddressBook registers every wallet key as a receiving address.
// Failures are logged; the address book is not required for the wallet to work.
func (s *Service) reconcileAddressBook(ctx context.Context) {
	if s.addressBook == nil {
		return
	}

	addrs, err := s.wallet.Addresses()
	if err == nil {
		err = s.addressBook.AddReceivingAddresses(ctx, s.network, addrs)
	}
	if err != nil {
		logger.Warn(ctx, "address book not reconciled", "wallet.network", s.network, "error", err)
	}
}

// State returns the lifecycle state. A canceled chain download moves a
// Ready service to Degraded.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reason returns why the service is degraded, or nil.
func (s *Service) Reason() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reason == nil {
		return nil
	}
	return s.reason
}

func (s *Service) Network() network.Selector {
	return s.network
}

func (s *Service) IsTestNet() bool {
	return s.network.IsTest()
}

// WalletPath returns the canonical path of the wallet file, empty when the
// wallet could not be loaded.
func (s *Service) WalletPath() string {
	return s.walletPath
}

func (s *Service) ChainHeight() (int32, error) {
	if s.chain == nil {
		return 0, ErrServiceNotReady
	}
	return s.chain.Height(), nil
}

func (s *Service) PeerCount() (int, error) {
	if s.session == nil {
		return 0, ErrServiceNotReady
	}
	return s.session.PeerCount(), nil
}

func (s *Service) Balance() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wallet == nil {
		return 0, ErrServiceNotReady
	}
	return s.wallet.Balance(), nil
}

func (s *Service) Addresses() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wallet == nil {
		return nil, ErrServiceNotReady
	}
	return s.wallet.Addresses()
}

func (s *Service) Transactions() ([]wallet.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wallet == nil {
		return nil, ErrServiceNotReady
	}
	return s.wallet.Transactions(), nil
}

// DownloadBlockChain blocks until the chain store reaches the height of the
// best connected peer.
//
// Canceling ctx stops the network session and closes its connections before
// returning. The service is then Degraded at StageNetwork and keeps serving
// wallet reads.
func (s *Service) DownloadBlockChain(ctx context.Context) error {
	if s.State() != Ready {
		return ErrServiceNotReady
	}

	// The wallet lock is not held here: stopping the session waits for
	// incoming transactions that need it.
	err := s.session.DownloadBlockChain(ctx)
	if err != nil && ctx.Err() != nil {
		s.mu.Lock()
		s.degrade(ctx, StageNetwork, err)
		s.mu.Unlock()
	}
	return err
}

// Close stops the network session and closes the chain store. The wallet
// lock is not held while the session drains, so an in-flight incoming
// transaction can finish.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.session != nil {
			s.session.Stop()
		}
		if s.chain != nil {
			err = s.chain.Close()
		}
	})
	return err
}

type config struct {
	addressBook addressbook.Service
	observer    walletstore.Observer
}

// Option configures optional collaborators of the service.
type Option func(*config)

// WithAddressBook registers wallet addresses in book on construction.
func WithAddressBook(book addressbook.Service) Option {
	return func(c *config) {
		c.addressBook = book
	}
}

// WithObserver notifies o whenever a send or an incoming transaction changes
// the wallet. o is called with the wallet lock held.
func WithObserver(o walletstore.Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}

type nopObserver struct{}

func (nopObserver) WalletChanged(context.Context, *wallet.Wallet) {}
