package redis

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gabapcia/nodewallet/internal/addressbook"
	"github.com/gabapcia/nodewallet/internal/network"
)

const addressBookPrefix = "addressbook"

// addressBookKey returns the hash holding the address book of a network.
// Fields are addresses and values their labels.
//
// Format: "addressbook:{network}"
func addressBookKey(sel network.Selector) string {
	return fmt.Sprintf("%s:%s", addressBookPrefix, sel)
}

// AddReceivingAddress uses HSETNX so an existing label is never replaced.
func (c *client) AddReceivingAddress(ctx context.Context, e addressbook.Entry) error {
	return c.conn.HSetNX(ctx, addressBookKey(e.Network), e.Address, e.Label).Err()
}

func (c *client) ListReceivingAddresses(ctx context.Context, sel network.Selector) ([]addressbook.Entry, error) {
	book, err := c.conn.HGetAll(ctx, addressBookKey(sel)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]addressbook.Entry, 0, len(book))
	for addr, label := range book {
		entries = append(entries, addressbook.Entry{Network: sel, Address: addr, Label: label})
	}

	slices.SortFunc(entries, func(a, b addressbook.Entry) int {
		return strings.Compare(a.Address, b.Address)
	})
	return entries, nil
}

func (c *client) SetLabel(ctx context.Context, e addressbook.Entry) error {
	return c.conn.HSet(ctx, addressBookKey(e.Network), e.Address, e.Label).Err()
}

var _ addressbook.Storage = (*client)(nil)
