// Package addressbook keeps the receiving addresses of the wallet along with
// user labels. Entries are only ever added or relabeled.
package addressbook

import (
	"context"
	"errors"

	"github.com/gabapcia/nodewallet/internal/network"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"
)

type Service interface {
	// AddReceivingAddresses registers addrs for the network. Known addresses
	// keep their label.
	AddReceivingAddresses(ctx context.Context, sel network.Selector, addrs []string) error

	List(ctx context.Context, sel network.Selector) ([]Entry, error)

	SetLabel(ctx context.Context, sel network.Selector, address, label string) error
}

type service struct {
	storage Storage
}

var _ Service = (*service)(nil)

func (s *service) AddReceivingAddresses(ctx context.Context, sel network.Selector, addrs []string) error {
	var errs []error
	for _, addr := range addrs {
		e, err := buildEntry(sel, addr, "")
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := s.storage.AddReceivingAddress(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	logger.Debug(ctx, "receiving addresses reconciled", "wallet.network", sel, "addresses.count", len(addrs))
	return nil
}

func (s *service) List(ctx context.Context, sel network.Selector) ([]Entry, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	return s.storage.ListReceivingAddresses(ctx, sel)
}

func (s *service) SetLabel(ctx context.Context, sel network.Selector, address, label string) error {
	e, err := buildEntry(sel, address, label)
	if err != nil {
		return err
	}

	return s.storage.SetLabel(ctx, e)
}

// New creates the address book over storage.
func New(storage Storage) *service {
	return &service{
		storage: storage,
	}
}
