package walletservice

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gabapcia/nodewallet/internal/chainstore"
	"github.com/gabapcia/nodewallet/internal/network"
	"github.com/gabapcia/nodewallet/internal/peergroup"
	"github.com/gabapcia/nodewallet/internal/walletstore"
)

var (
	// ErrServiceNotReady is returned by operations that need a component the
	// service failed to initialize.
	ErrServiceNotReady = errors.New("wallet service is not ready")

	// ErrInvalidAddress is returned when the destination is not an address of
	// the service network.
	ErrInvalidAddress = errors.New("invalid destination address")

	// ErrInvalidAmount is returned for malformed, non-positive or over-precise amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidConfig is returned when the service configuration fails validation.
	ErrInvalidConfig = errors.New("invalid wallet service configuration")
)

// Initialization stages, in the order they run.
const (
	StageConfig     = "config"
	StageWallet     = "wallet"
	StageChainStore = "chain store"
	StageNetwork    = "network"
)

// InitializationError is the reason of a degraded service. It keeps the type
// name and message of the error that stopped construction.
type InitializationError struct {
	Stage     string
	CauseType string
	Message   string
	Err       error
}

func newInitializationError(stage string, err error) *InitializationError {
	return &InitializationError{
		Stage:     stage,
		CauseType: causeType(err),
		Message:   err.Error(),
		Err:       err,
	}
}

// causeClasses name the failures construction can run into, most specific
// first.
var causeClasses = []struct {
	err  error
	name string
}{
	{walletstore.ErrCorruptWallet, "walletstore.ErrCorruptWallet"},
	{walletstore.ErrNetworkMismatch, "walletstore.ErrNetworkMismatch"},
	{walletstore.ErrPersistence, "walletstore.ErrPersistence"},
	{chainstore.ErrNetworkMismatch, "chainstore.ErrNetworkMismatch"},
	{chainstore.ErrChainStore, "chainstore.ErrChainStore"},
	{peergroup.ErrNoDiscovery, "peergroup.ErrNoDiscovery"},
	{network.ErrUnknownNetwork, "network.ErrUnknownNetwork"},
	{ErrInvalidConfig, "walletservice.ErrInvalidConfig"},
}

// causeType names the class of err: the known failure it matches, or else the
// type of the innermost error of its chain. Joined errors follow their first
// branch.
func causeType(err error) string {
	for _, c := range causeClasses {
		if errors.Is(err, c.err) {
			return c.name
		}
	}

	for {
		var next error
		switch e := err.(type) {
		case interface{ Unwrap() error }:
			next = e.Unwrap()
		case interface{ Unwrap() []error }:
			if errs := e.Unwrap(); len(errs) > 0 {
				next = errs[0]
			}
		}
		if next == nil {
			return reflect.TypeOf(err).String()
		}
		err = next
	}
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed at %s: %s", e.Stage, e.Message)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// PersistenceWarning is returned along with a transaction that was broadcast
// but could not be saved to the wallet file.
type PersistenceWarning struct {
	Path string
	Err  error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("transaction broadcast but wallet not saved to %s: %v", w.Path, w.Err)
}

func (w *PersistenceWarning) Unwrap() error {
	return w.Err
}

// RecordWarning is returned along with a transaction that was broadcast but
// could not be recorded in the wallet. The funds may already be spent.
type RecordWarning struct {
	Hash string
	Err  error
}

func (w *RecordWarning) Error() string {
	return fmt.Sprintf("transaction %s broadcast but not recorded in the wallet: %v", w.Hash, w.Err)
}

func (w *RecordWarning) Unwrap() error {
	return w.Err
}
