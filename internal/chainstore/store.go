// Package chainstore keeps the block header chain of one network in a single
// bbolt file. Headers are appended only when they connect to the current
// tip; full blocks are never stored.
package chainstore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/nodewallet/internal/network"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.etcd.io/bbolt"
)

var (
	// ErrChainStore is returned when the store file cannot be opened, read or written.
	ErrChainStore = errors.New("chain store failure")

	// ErrNetworkMismatch is returned when the file was created for another network.
	ErrNetworkMismatch = errors.New("chain store network does not match the requested network")

	// ErrOrphanHeader is returned when a header does not connect to the chain tip.
	ErrOrphanHeader = errors.New("header does not connect to the chain tip")

	// ErrHeaderNotFound is returned when a requested header is not stored.
	ErrHeaderNotFound = errors.New("header not found")
)

var (
	bucketMeta    = []byte("meta")
	bucketHeaders = []byte("headers")
	bucketHeights = []byte("heights")

	keyNetwork = []byte("network")
	keyTip     = []byte("tip")
)

const (
	headerSize = 80
	entrySize  = 4 + headerSize
)

// Header is a stored block header along with its position in the chain.
type Header struct {
	wire.BlockHeader
	Hash   chainhash.Hash
	Height int32
}

// Store is an open chain store. It is safe for concurrent readers, writes are
// expected from a single goroutine.
type Store struct {
	db      *bbolt.DB
	network network.Selector

	mu  sync.RWMutex
	tip Header
}

type config struct {
	lockTimeout time.Duration
}

// Option configures Open.
type Option func(*config)

// WithLockTimeout bounds how long Open waits for the file lock held by
// another process. Defaults to one second.
func WithLockTimeout(d time.Duration) Option {
	return func(c *config) {
		c.lockTimeout = d
	}
}

// Open opens the chain store at path, creating it and seeding it with the
// genesis header of sel when it does not exist.
func Open(path string, sel network.Selector, opts ...Option) (*Store, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	cfg := config{lockTimeout: time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: cfg.lockTimeout})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrChainStore, path, err)
	}

	s := &Store{
		db:      db,
		network: sel,
	}

	if err := db.Update(s.initialize); err != nil {
		_ = db.Close()
		if errors.Is(err, ErrNetworkMismatch) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrChainStore, path, err)
	}

	return s, nil
}

func (s *Store) initialize(tx *bbolt.Tx) error {
	meta, err := tx.CreateBucketIfNotExists(bucketMeta)
	if err != nil {
		return err
	}
	headers, err := tx.CreateBucketIfNotExists(bucketHeaders)
	if err != nil {
		return err
	}
	heights, err := tx.CreateBucketIfNotExists(bucketHeights)
	if err != nil {
		return err
	}

	stored := meta.Get(keyNetwork)
	if stored == nil {
		params := s.network.Params()
		genesis := Header{
			BlockHeader: params.GenesisBlock.Header,
			Hash:        *params.GenesisHash,
			Height:      0,
		}

		if err := putHeader(headers, heights, genesis); err != nil {
			return err
		}
		if err := meta.Put(keyNetwork, []byte(s.network)); err != nil {
			return err
		}
		if err := meta.Put(keyTip, genesis.Hash[:]); err != nil {
			return err
		}

		s.tip = genesis
		return nil
	}

	if network.Selector(stored) != s.network {
		return fmt.Errorf("%w: file holds %s, requested %s", ErrNetworkMismatch, stored, s.network)
	}

	tipHash, err := chainhash.NewHash(meta.Get(keyTip))
	if err != nil {
		return fmt.Errorf("invalid tip: %w", err)
	}

	tip, err := getHeader(headers, *tipHash)
	if err != nil {
		return err
	}

	s.tip = tip
	return nil
}

// Network returns the network the store was opened for.
func (s *Store) Network() network.Selector {
	return s.network
}

// Tip returns the last header of the chain.
func (s *Store) Tip() Header {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tip
}

// Height returns the height of the chain tip.
func (s *Store) Height() int32 {
	return s.Tip().Height
}

// HeaderByHash looks up a stored header.
func (s *Store) HeaderByHash(hash chainhash.Hash) (Header, error) {
	var h Header
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		h, err = getHeader(tx.Bucket(bucketHeaders), hash)
		return err
	})
	if err != nil && !errors.Is(err, ErrHeaderNotFound) {
		return Header{}, fmt.Errorf("%w: %w", ErrChainStore, err)
	}

	return h, err
}

// Locator returns block hashes starting at the tip, one by one for the
// first ten, then doubling the step back to the genesis block.
func (s *Store) Locator() ([]*chainhash.Hash, error) {
	tip := s.Tip()

	var locator []*chainhash.Hash
	err := s.db.View(func(tx *bbolt.Tx) error {
		heights := tx.Bucket(bucketHeights)

		step := int32(1)
		for height := tip.Height; ; height -= step {
			if height < 0 {
				height = 0
			}

			raw := heights.Get(heightKey(height))
			if raw == nil {
				return fmt.Errorf("missing hash at height %d", height)
			}

			hash, err := chainhash.NewHash(raw)
			if err != nil {
				return err
			}
			locator = append(locator, hash)

			if height == 0 {
				return nil
			}
			if len(locator) >= 10 {
				step *= 2
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: locator: %w", ErrChainStore, err)
	}

	return locator, nil
}

// PutHeaders appends headers in a single transaction and returns how many
// were new. Headers already stored are skipped. When a new header does not
// connect to the tip nothing is written and ErrOrphanHeader is returned.
func (s *Store) PutHeaders(headers []*wire.BlockHeader) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tip := s.tip
	added := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		hb := tx.Bucket(bucketHeaders)
		ht := tx.Bucket(bucketHeights)

		for _, bh := range headers {
			hash := bh.BlockHash()
			if hb.Get(hash[:]) != nil {
				continue
			}

			if !bh.PrevBlock.IsEqual(&tip.Hash) {
				return fmt.Errorf("%w: %s", ErrOrphanHeader, hash)
			}

			next := Header{BlockHeader: *bh, Hash: hash, Height: tip.Height + 1}
			if err := putHeader(hb, ht, next); err != nil {
				return err
			}

			tip = next
			added++
		}

		if added == 0 {
			return nil
		}
		return tx.Bucket(bucketMeta).Put(keyTip, tip.Hash[:])
	})
	if err != nil {
		if errors.Is(err, ErrOrphanHeader) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrChainStore, err)
	}

	s.tip = tip
	return added, nil
}

// Close releases the file.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrChainStore, err)
	}
	return nil
}

func heightKey(height int32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, uint32(height))
	return key
}

func putHeader(headers, heights *bbolt.Bucket, h Header) error {
	var buf bytes.Buffer
	buf.Grow(entrySize)
	buf.Write(heightKey(h.Height))
	if err := h.BlockHeader.Serialize(&buf); err != nil {
		return err
	}

	if err := headers.Put(h.Hash[:], buf.Bytes()); err != nil {
		return err
	}
	return heights.Put(heightKey(h.Height), h.Hash[:])
}

func getHeader(headers *bbolt.Bucket, hash chainhash.Hash) (Header, error) {
	raw := headers.Get(hash[:])
	if raw == nil {
		return Header{}, fmt.Errorf("%w: %s", ErrHeaderNotFound, hash)
	}
	if len(raw) != entrySize {
		return Header{}, fmt.Errorf("invalid header entry of %d bytes", len(raw))
	}

	h := Header{
		Hash:   hash,
		Height: int32(binary.BigEndian.Uint32(raw[:4])),
	}
	if err := h.BlockHeader.Deserialize(bytes.NewReader(raw[4:])); err != nil {
		return Header{}, err
	}

	return h, nil
}
