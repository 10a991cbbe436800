package wallet

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/nodewallet/internal/network"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// ErrMalformedWallet is returned when wallet bytes cannot be decoded.
var ErrMalformedWallet = errors.New("malformed wallet data")

const documentVersion = 1

type keyDocument struct {
	PrivateKey string    `json:"private_key"`
	CreatedAt  time.Time `json:"created_at"`
}

type outputDocument struct {
	TxHash   string `json:"tx_hash"`
	Index    uint32 `json:"index"`
	Value    int64  `json:"value"`
	PkScript string `json:"pk_script"`
	KeyIndex int    `json:"key_index"`
}

type transactionDocument struct {
	Raw       string    `json:"raw"`
	Direction Direction `json:"direction"`
	Value     int64     `json:"value"`
	Fee       int64     `json:"fee"`
	Time      time.Time `json:"time"`
}

type walletDocument struct {
	Version      int                   `json:"version"`
	Network      network.Selector      `json:"network"`
	Keys         []keyDocument         `json:"keys"`
	Unspent      []outputDocument      `json:"unspent"`
	Transactions []transactionDocument `json:"transactions"`
}

// MarshalBinary encodes the full wallet state.
func (w *Wallet) MarshalBinary() ([]byte, error) {
	doc := walletDocument{
		Version:      documentVersion,
		Network:      w.network,
		Keys:         make([]keyDocument, len(w.keys)),
		Unspent:      make([]outputDocument, len(w.unspent)),
		Transactions: make([]transactionDocument, len(w.history)),
	}

	for i, k := range w.keys {
		doc.Keys[i] = keyDocument{
			PrivateKey: hex.EncodeToString(k.privKey.Serialize()),
			CreatedAt:  k.CreatedAt,
		}
	}

	for i, out := range w.unspent {
		doc.Unspent[i] = outputDocument{
			TxHash:   out.OutPoint.Hash.String(),
			Index:    out.OutPoint.Index,
			Value:    out.Value,
			PkScript: hex.EncodeToString(out.PkScript),
			KeyIndex: out.KeyIndex,
		}
	}

	for i, tx := range w.history {
		doc.Transactions[i] = transactionDocument{
			Raw:       hex.EncodeToString(tx.Raw),
			Direction: tx.Direction,
			Value:     tx.Value,
			Fee:       tx.Fee,
			Time:      tx.Time,
		}
	}

	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalBinary replaces the wallet state with the decoded data.
func (w *Wallet) UnmarshalBinary(data []byte) error {
	var doc walletDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedWallet, err)
	}

	if doc.Version != documentVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedWallet, doc.Version)
	}

	if err := doc.Network.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedWallet, err)
	}

	decoded := New(doc.Network)
	for i, kd := range doc.Keys {
		raw, err := hex.DecodeString(kd.PrivateKey)
		if err != nil || len(raw) != 32 {
			return fmt.Errorf("%w: key %d", ErrMalformedWallet, i)
		}

		if err := decoded.AddKey(KeyFromBytes(raw, kd.CreatedAt)); err != nil {
			return fmt.Errorf("%w: key %d: %w", ErrMalformedWallet, i, err)
		}
	}

	for i, od := range doc.Unspent {
		hash, err := chainhash.NewHashFromStr(od.TxHash)
		if err != nil {
			return fmt.Errorf("%w: output %d: %w", ErrMalformedWallet, i, err)
		}

		script, err := hex.DecodeString(od.PkScript)
		if err != nil {
			return fmt.Errorf("%w: output %d: %w", ErrMalformedWallet, i, err)
		}

		if od.KeyIndex < 0 || od.KeyIndex >= len(decoded.keys) {
			return fmt.Errorf("%w: output %d references unknown key", ErrMalformedWallet, i)
		}

		decoded.unspent = append(decoded.unspent, Output{
			OutPoint: *wire.NewOutPoint(hash, od.Index),
			Value:    od.Value,
			PkScript: script,
			KeyIndex: od.KeyIndex,
		})
	}

	for i, td := range doc.Transactions {
		raw, err := hex.DecodeString(td.Raw)
		if err != nil {
			return fmt.Errorf("%w: transaction %d: %w", ErrMalformedWallet, i, err)
		}

		rec := &Transaction{Raw: raw, Direction: td.Direction, Value: td.Value, Fee: td.Fee, Time: td.Time}
		tx, err := rec.MsgTx()
		if err != nil {
			return fmt.Errorf("%w: transaction %d: %w", ErrMalformedWallet, i, err)
		}
		rec.Hash = tx.TxHash()

		decoded.history = append(decoded.history, rec)
		decoded.seen[rec.Hash] = struct{}{}
	}

	*w = *decoded
	return nil
}
