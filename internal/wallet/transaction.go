package wallet

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// dustThreshold is the smallest change output worth creating. Smaller change
// is left to the miners as extra fee.
const dustThreshold int64 = 546

var (
	// ErrInsufficientFunds is matched by every *InsufficientFundsError.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when the amount to send is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNegativeFee is returned when the fee is below zero.
	ErrNegativeFee = errors.New("fee must not be negative")

	// ErrAddressNetwork is returned when the destination belongs to another network.
	ErrAddressNetwork = errors.New("address is not valid for the wallet network")

	// ErrUnknownTransaction is returned when committing a transaction that
	// does not spend any wallet output.
	ErrUnknownTransaction = errors.New("transaction does not spend wallet outputs")
)

// InsufficientFundsError reports a send that the wallet balance cannot cover.
type InsufficientFundsError struct {
	Needed    int64 // amount plus fee
	Available int64 // wallet balance at the time of the request
}

// Shortfall is the amount missing to complete the send.
func (e *InsufficientFundsError) Shortfall() int64 {
	return e.Needed - e.Available
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: need %s, have %s (short by %s)",
		ErrInsufficientFunds,
		btcutil.Amount(e.Needed),
		btcutil.Amount(e.Available),
		btcutil.Amount(e.Shortfall()),
	)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// CreateSend builds and signs a transaction paying amount to dest with the
// given fee. It selects unspent outputs oldest first and returns change to
// the first key. The wallet is not modified: call CommitSend once the
// transaction has been broadcast.
func (w *Wallet) CreateSend(dest btcutil.Address, amount, fee int64) (*wire.MsgTx, error) {
	switch {
	case amount <= 0:
		return nil, ErrInvalidAmount
	case fee < 0:
		return nil, ErrNegativeFee
	case len(w.keys) == 0:
		return nil, ErrNoKeys
	case !dest.IsForNet(w.network.Params()):
		return nil, ErrAddressNetwork
	}

	var (
		needed    = amount + fee
		available = w.Balance()
	)
	if needed > available {
		return nil, &InsufficientFundsError{Needed: needed, Available: available}
	}

	var (
		selected []Output
		total    int64
	)
	for _, out := range w.unspent {
		selected = append(selected, out)
		total += out.Value
		if total >= needed {
			break
		}
	}

	destScript, err := txscript.PayToAddrScript(dest)
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	for _, out := range selected {
		outPoint := out.OutPoint
		tx.AddTxIn(wire.NewTxIn(&outPoint, nil, nil))
	}
	tx.AddTxOut(wire.NewTxOut(amount, destScript))

	if change := total - needed; change >= dustThreshold {
		changeScript, err := hex.DecodeString(w.scriptOf(0))
		if err != nil {
			return nil, err
		}
		tx.AddTxOut(wire.NewTxOut(change, changeScript))
	}

	for i, out := range selected {
		sigScript, err := txscript.SignatureScript(tx, i, out.PkScript, txscript.SigHashAll, w.keys[out.KeyIndex].privKey, true)
		if err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		tx.TxIn[i].SignatureScript = sigScript
	}

	return tx, nil
}

// CommitSend records a broadcast transaction built by CreateSend: the spent
// outputs are removed, change is added and the history gains an outgoing entry.
func (w *Wallet) CommitSend(tx *wire.MsgTx) (*Transaction, error) {
	if rec, ok := w.recorded(tx); ok {
		return rec, nil
	}

	rec, changed, err := w.apply(tx)
	if err != nil {
		return nil, err
	}

	if !changed || rec.Direction != Outgoing {
		return nil, ErrUnknownTransaction
	}

	return rec, nil
}

// ReceiveTransaction applies a transaction seen on the network. It credits
// outputs paying wallet keys and consumes wallet outputs the transaction
// spends. It reports whether the wallet changed; transactions already in the
// history are ignored.
func (w *Wallet) ReceiveTransaction(tx *wire.MsgTx) (bool, error) {
	if _, ok := w.recorded(tx); ok {
		return false, nil
	}

	_, changed, err := w.apply(tx)
	return changed, err
}

func (w *Wallet) recorded(tx *wire.MsgTx) (*Transaction, bool) {
	hash := tx.TxHash()
	if _, ok := w.seen[hash]; !ok {
		return nil, false
	}

	for _, rec := range w.history {
		if rec.Hash == hash {
			return rec, true
		}
	}
	return nil, true
}

func (w *Wallet) apply(tx *wire.MsgTx) (*Transaction, bool, error) {
	hash := tx.TxHash()

	var (
		debited   int64
		ownInputs int
		spent     = make(map[wire.OutPoint]struct{})
	)
	for _, in := range tx.TxIn {
		for _, out := range w.unspent {
			if out.OutPoint == in.PreviousOutPoint {
				debited += out.Value
				ownInputs++
				spent[out.OutPoint] = struct{}{}
				break
			}
		}
	}

	var (
		credited int64
		totalOut int64
		received []Output
	)
	for i, out := range tx.TxOut {
		totalOut += out.Value

		keyIndex, ok := w.scripts[hex.EncodeToString(out.PkScript)]
		if !ok {
			continue
		}

		credited += out.Value
		received = append(received, Output{
			OutPoint: wire.OutPoint{Hash: hash, Index: uint32(i)},
			Value:    out.Value,
			PkScript: out.PkScript,
			KeyIndex: keyIndex,
		})
	}

	if ownInputs == 0 && len(received) == 0 {
		return nil, false, nil
	}

	var raw bytes.Buffer
	if err := tx.Serialize(&raw); err != nil {
		return nil, false, err
	}

	rec := &Transaction{
		Hash:      hash,
		Raw:       raw.Bytes(),
		Direction: Incoming,
		Value:     credited,
		Time:      time.Now().UTC(),
	}

	if ownInputs > 0 {
		rec.Direction = Outgoing
		if ownInputs == len(tx.TxIn) {
			rec.Fee = debited - totalOut
		}
		rec.Value = debited - credited - rec.Fee
	}

	remaining := w.unspent[:0]
	for _, out := range w.unspent {
		if _, ok := spent[out.OutPoint]; !ok {
			remaining = append(remaining, out)
		}
	}
	w.unspent = append(remaining, received...)
	w.history = append(w.history, rec)
	w.seen[hash] = struct{}{}

	return rec, true, nil
}

func (w *Wallet) scriptOf(keyIndex int) string {
	for script, idx := range w.scripts {
		if idx == keyIndex {
			return script
		}
	}
	return ""
}

// MsgTx decodes the raw transaction bytes.
func (t *Transaction) MsgTx() (*wire.MsgTx, error) {
	tx := new(wire.MsgTx)
	if err := tx.Deserialize(bytes.NewReader(t.Raw)); err != nil {
		return nil, err
	}
	return tx, nil
}
