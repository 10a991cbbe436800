// Package wallet holds the spendable funds and key material of a single
// wallet: an ordered key chain, the outputs those keys can spend and the
// history of transactions that touched them.
//
// A Wallet is not safe for concurrent use. Its owner is expected to guard
// every call with a single lock.
package wallet

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/gabapcia/nodewallet/internal/network"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// ErrNoKeys is returned when an operation needs a key and the wallet has none.
var ErrNoKeys = errors.New("wallet has no keys")

// Key is a single private key of the wallet key chain.
type Key struct {
	privKey   *btcec.PrivateKey
	CreatedAt time.Time
}

// NewKey generates a fresh secp256k1 key pair.
func NewKey() (*Key, error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}

	return &Key{privKey: privKey, CreatedAt: time.Now().UTC()}, nil
}

// KeyFromBytes rebuilds a key from its 32 byte private scalar.
func KeyFromBytes(b []byte, createdAt time.Time) *Key {
	privKey, _ := btcec.PrivKeyFromBytes(b)
	return &Key{privKey: privKey, CreatedAt: createdAt}
}

// PubKey returns the compressed serialization of the public key.
func (k *Key) PubKey() []byte {
	return k.privKey.PubKey().SerializeCompressed()
}

// PubKeyHex returns the compressed public key as hex. It identifies the key
// without exposing private material.
func (k *Key) PubKeyHex() string {
	return hex.EncodeToString(k.PubKey())
}

// Address derives the pay-to-pubkey-hash receiving address of the key.
func (k *Key) Address(sel network.Selector) (*btcutil.AddressPubKeyHash, error) {
	return btcutil.NewAddressPubKeyHash(btcutil.Hash160(k.PubKey()), sel.Params())
}

// Output is an unspent transaction output owned by one of the wallet keys.
type Output struct {
	OutPoint wire.OutPoint
	Value    int64
	PkScript []byte
	KeyIndex int
}

// Direction tells whether a transaction moved funds into or out of the wallet.
type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

// Transaction is an entry of the wallet history.
type Transaction struct {
	Hash      chainhash.Hash
	Raw       []byte
	Direction Direction
	Value     int64 // credited amount for incoming, amount paid to others for outgoing
	Fee       int64 // zero when the wallet does not own every input
	Time      time.Time
}

// ID returns the network-unique identifier of the transaction.
func (t *Transaction) ID() string {
	return t.Hash.String()
}

// Wallet is the in-memory wallet state.
type Wallet struct {
	network network.Selector
	keys    []*Key
	scripts map[string]int // hex pkScript -> key index

	unspent []Output
	history []*Transaction
	seen    map[chainhash.Hash]struct{}
}

// New creates an empty wallet bound to the given network.
func New(sel network.Selector) *Wallet {
	return &Wallet{
		network: sel,
		scripts: make(map[string]int),
		seen:    make(map[chainhash.Hash]struct{}),
	}
}

// Network returns the network the wallet is bound to.
func (w *Wallet) Network() network.Selector {
	return w.network
}

// AddKey appends a key to the key chain. Adding a key already present is a no-op.
func (w *Wallet) AddKey(k *Key) error {
	script, err := w.scriptFor(k)
	if err != nil {
		return err
	}

	if _, ok := w.scripts[script]; ok {
		return nil
	}

	w.keys = append(w.keys, k)
	w.scripts[script] = len(w.keys) - 1
	return nil
}

// NewKey generates a key and appends it to the key chain.
func (w *Wallet) NewKey() (*Key, error) {
	k, err := NewKey()
	if err != nil {
		return nil, err
	}

	if err := w.AddKey(k); err != nil {
		return nil, err
	}

	return k, nil
}

func (w *Wallet) scriptFor(k *Key) (string, error) {
	addr, err := k.Address(w.network)
	if err != nil {
		return "", err
	}

	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(script), nil
}

// Keys returns the key chain in insertion order.
func (w *Wallet) Keys() []*Key {
	keys := make([]*Key, len(w.keys))
	copy(keys, w.keys)
	return keys
}

// Addresses returns one receiving address per key, in key order.
func (w *Wallet) Addresses() ([]string, error) {
	addrs := make([]string, 0, len(w.keys))
	for _, k := range w.keys {
		addr, err := k.Address(w.network)
		if err != nil {
			return nil, err
		}

		addrs = append(addrs, addr.EncodeAddress())
	}

	return addrs, nil
}

// Balance returns the sum of all unspent outputs, in satoshis.
func (w *Wallet) Balance() int64 {
	var total int64
	for _, out := range w.unspent {
		total += out.Value
	}
	return total
}

// Unspent returns a copy of the unspent outputs, oldest first.
func (w *Wallet) Unspent() []Output {
	outs := make([]Output, len(w.unspent))
	copy(outs, w.unspent)
	return outs
}

// Transactions returns a copy of the wallet history, oldest first.
func (w *Wallet) Transactions() []Transaction {
	txs := make([]Transaction, len(w.history))
	for i, tx := range w.history {
		txs[i] = *tx
	}
	return txs
}

// HasTransaction reports whether the wallet history already holds the transaction.
func (w *Wallet) HasTransaction(hash chainhash.Hash) bool {
	_, ok := w.seen[hash]
	return ok
}
