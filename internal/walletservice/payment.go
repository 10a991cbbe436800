package walletservice

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/validator"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/shopspring/decimal"
)

// satoshiDigits is the number of fractional digits of one coin.
const satoshiDigits = 8

var maxAmount = decimal.NewFromInt(btcutil.MaxSatoshi)

// Transaction is a payment broadcast by the service.
type Transaction struct {
	Hash        string
	Destination string
	Amount      int64
	Fee         int64
	Raw         []byte
}

// SendPayment pays amount coins to address with a fee in satoshis.
//
// Input errors are reported before the wallet is touched. A send the wallet
// cannot fund returns a *wallet.InsufficientFundsError and leaves the wallet
// unchanged. Once broadcast the payment is recorded and saved; a failed save
// returns the transaction together with a *PersistenceWarning, and a payment
// the wallet fails to record returns it with a *RecordWarning.
func (s *Service) SendPayment(ctx context.Context, address, amount string, fee int64) (*Transaction, error) {
	dest, err := s.parseAddress(address)
	if err != nil {
		s.metrics.paymentRejected(ctx, "invalid_address")
		return nil, err
	}

	value, err := parseAmount(amount)
	if err != nil {
		s.metrics.paymentRejected(ctx, "invalid_amount")
		return nil, err
	}

	if err := validator.Var("fee", fee, "gte=0"); err != nil {
		s.metrics.paymentRejected(ctx, "invalid_amount")
		return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wallet == nil {
		s.metrics.paymentRejected(ctx, "not_ready")
		return nil, ErrServiceNotReady
	}

	tx, err := s.wallet.CreateSend(dest, value, fee)
	if err != nil {
		s.metrics.paymentRejected(ctx, "wallet")
		return nil, err
	}

	if s.state != Ready {
		s.metrics.paymentRejected(ctx, "not_ready")
		return nil, ErrServiceNotReady
	}

	if err := s.session.Broadcast(ctx, tx); err != nil {
		s.metrics.paymentRejected(ctx, "broadcast")
		return nil, err
	}

	result := &Transaction{
		Hash:        tx.TxHash().String(),
		Destination: dest.EncodeAddress(),
		Amount:      value,
		Fee:         fee,
	}
	s.metrics.paymentSent(ctx)

	rec, err := s.wallet.CommitSend(tx)
	if err != nil {
		result.Raw = rawTx(tx)
		s.metrics.persistWarning(ctx)
		logger.Error(ctx, "broadcast payment not recorded", "tx.hash", result.Hash, "error", err)
		return result, &RecordWarning{Hash: result.Hash, Err: err}
	}
	result.Raw = rec.Raw

	logger.Info(ctx, "payment sent",
		"tx.hash", result.Hash,
		"tx.destination", result.Destination,
		"tx.amount", value,
		"tx.fee", fee,
	)

	s.observer.WalletChanged(ctx, s.wallet)

	if err := s.store.Save(ctx, s.wallet, s.walletPath); err != nil {
		s.metrics.persistWarning(ctx)
		logger.Warn(ctx, "wallet not saved after broadcast", "wallet.path", s.walletPath, "tx.hash", result.Hash, "error", err)
		return result, &PersistenceWarning{Path: s.walletPath, Err: err}
	}

	return result, nil
}

func (s *Service) parseAddress(text string) (btcutil.Address, error) {
	params := s.network.Params()

	addr, err := btcutil.DecodeAddress(strings.TrimSpace(text), params)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, text, err)
	}
	if !addr.IsForNet(params) {
		return nil, fmt.Errorf("%w: %q is not a %s network address", ErrInvalidAddress, text, s.network)
	}

	return addr, nil
}

// parseAmount converts a decimal coin amount into satoshis. Amounts with more
// than eight fractional digits are rejected instead of rounded.
func parseAmount(text string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	if !d.Equal(d.Truncate(satoshiDigits)) {
		return 0, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, text, satoshiDigits)
	}

	sat := d.Shift(satoshiDigits)
	if !sat.IsPositive() || sat.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, text)
	}

	return sat.IntPart(), nil
}

func rawTx(tx *wire.MsgTx) []byte {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}
