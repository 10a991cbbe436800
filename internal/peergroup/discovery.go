package peergroup

import (
	"context"
	"errors"

	"github.com/gabapcia/nodewallet/internal/network"
)

// ErrNoDiscovery is returned when no discovery strategy is available for a network.
var ErrNoDiscovery = errors.New("no peer discovery for network")

// Discovery finds candidate peer addresses in "host:port" form.
type Discovery interface {
	DiscoverPeers(ctx context.Context) ([]string, error)
}

// SelectDiscovery picks the discovery strategy of a network: DNS seeds on
// the main network, the rendezvous channel on the test network.
func SelectDiscovery(sel network.Selector, dns, rendezvous Discovery) (Discovery, error) {
	var d Discovery
	switch sel {
	case network.Main:
		d = dns
	case network.Test:
		d = rendezvous
	default:
		return nil, network.ErrUnknownNetwork
	}

	if d == nil {
		return nil, ErrNoDiscovery
	}
	return d, nil
}

// StaticDiscovery always returns the same addresses.
type StaticDiscovery []string

func (s StaticDiscovery) DiscoverPeers(context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}
