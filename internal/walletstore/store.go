// Package walletstore loads wallets from disk, creating a fresh one when none
// exists yet, and persists them with atomic replace semantics.
package walletstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabapcia/nodewallet/internal/network"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/wallet"

	"github.com/google/renameio/v2"
)

var (
	// ErrCorruptWallet is returned when an existing wallet file cannot be decoded.
	ErrCorruptWallet = errors.New("corrupt wallet file")

	// ErrPersistence is returned when a wallet cannot be read from or written to disk.
	ErrPersistence = errors.New("wallet persistence failed")

	// ErrNetworkMismatch is returned when a wallet file belongs to another network.
	ErrNetworkMismatch = errors.New("wallet network does not match the requested network")
)

const walletFileMode fs.FileMode = 0o600

// Observer is notified every time a wallet is loaded or created.
type Observer interface {
	WalletChanged(ctx context.Context, w *wallet.Wallet)
}

// Store is the wallet store adapter.
type Store interface {
	// LoadOrCreate returns the wallet stored at path along with the path it
	// was actually read from or written to.
	//
	// An existing regular file is decoded; decoding failures return
	// ErrCorruptWallet. An empty path, a directory or a missing file falls
	// back to the default wallet file of the network inside the data dir,
	// which is loaded when present and otherwise created with a single
	// fresh key and saved immediately.
	LoadOrCreate(ctx context.Context, path string, sel network.Selector) (*wallet.Wallet, string, error)

	// Save fully overwrites the wallet file at path. The previous content
	// stays intact unless the new content was written completely.
	Save(ctx context.Context, w *wallet.Wallet, path string) error
}

type store struct {
	dataDir  string
	observer Observer
}

var _ Store = (*store)(nil)

// DefaultPath returns the default wallet file path for the network inside dataDir.
func DefaultPath(dataDir string, sel network.Selector) string {
	return filepath.Join(dataDir, sel.WalletFile())
}

func (s *store) LoadOrCreate(ctx context.Context, path string, sel network.Selector) (*wallet.Wallet, string, error) {
	if path != "" {
		w, ok, err := s.loadIfRegular(ctx, path, sel)
		if err != nil || ok {
			return w, path, err
		}
	}

	path = DefaultPath(s.dataDir, sel)

	w, ok, err := s.loadIfRegular(ctx, path, sel)
	if err != nil || ok {
		return w, path, err
	}

	w, err = s.create(ctx, path, sel)
	if err != nil {
		return nil, path, err
	}

	return w, path, nil
}

// loadIfRegular decodes the wallet at path when path names a regular file.
// It reports false, without error, when the path is missing or is a directory.
func (s *store) loadIfRegular(ctx context.Context, path string, sel network.Selector) (*wallet.Wallet, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if !info.Mode().IsRegular() {
		logger.Debug(ctx, "wallet path is not a regular file, using default", "wallet.path", path)
		return nil, false, nil
	}

	w, err := s.load(path, sel)
	if err != nil {
		return nil, false, err
	}

	logger.Info(ctx, "wallet loaded", "wallet.path", path, "wallet.keys", len(w.Keys()))
	s.observer.WalletChanged(ctx, w)
	return w, true, nil
}

func (s *store) load(path string, sel network.Selector) (*wallet.Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	var w wallet.Wallet
	if err := w.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptWallet, path, err)
	}

	if w.Network() != sel {
		return nil, fmt.Errorf("%w: %s holds a %s wallet", ErrNetworkMismatch, path, w.Network())
	}

	return &w, nil
}

func (s *store) create(ctx context.Context, path string, sel network.Selector) (*wallet.Wallet, error) {
	w := wallet.New(sel)
	if _, err := w.NewKey(); err != nil {
		return nil, err
	}

	if err := s.Save(ctx, w, path); err != nil {
		return nil, err
	}

	logger.Info(ctx, "wallet created", "wallet.path", path, "wallet.network", sel)
	s.observer.WalletChanged(ctx, w)
	return w, nil
}

func (s *store) Save(ctx context.Context, w *wallet.Wallet, path string) error {
	data, err := w.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(walletFileMode))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger.Debug(ctx, "wallet saved", "wallet.path", path, "wallet.bytes", len(data))
	return nil
}

type config struct {
	dataDir  string
	observer Observer
}

// Option configures the store.
type Option func(*config)

// New creates a wallet store. By default the data dir is the working
// directory and no observer is notified.
func New(opts ...Option) *store {
	cfg := config{
		dataDir:  ".",
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &store{
		dataDir:  cfg.dataDir,
		observer: cfg.observer,
	}
}

// WithDataDir sets the directory holding the default wallet file.
func WithDataDir(dir string) Option {
	return func(c *config) {
		c.dataDir = dir
	}
}

// WithObserver registers the observer notified on every load or create.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}

type nopObserver struct{}

func (nopObserver) WalletChanged(context.Context, *wallet.Wallet) {}
