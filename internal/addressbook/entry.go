package addressbook

import (
	"context"

	"github.com/gabapcia/nodewallet/internal/network"
	"github.com/gabapcia/nodewallet/internal/pkg/validator"
)

// Entry is a receiving address of the wallet and its user label.
type Entry struct {
	Network network.Selector `validate:"required,oneof=main test"`
	Address string           `validate:"required"`
	Label   string
}

// Storage persists address book entries.
type Storage interface {
	// AddReceivingAddress stores the entry unless the address is already
	// known, in which case the stored label is kept.
	AddReceivingAddress(ctx context.Context, e Entry) error

	// ListReceivingAddresses returns the entries of a network ordered by address.
	ListReceivingAddresses(ctx context.Context, sel network.Selector) ([]Entry, error)

	// SetLabel sets the label of an address, adding it when missing.
	SetLabel(ctx context.Context, e Entry) error
}

func buildEntry(sel network.Selector, address, label string) (Entry, error) {
	e := Entry{
		Network: sel,
		Address: address,
		Label:   label,
	}

	return e, validator.Validate(e)
}
