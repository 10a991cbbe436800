// Package discovery finds candidate Bitcoin peers, either through the DNS
// seeds of a network or through a rendezvous channel.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"sync"
	"time"

	"github.com/gabapcia/nodewallet/internal/peergroup"
	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/types"

	"github.com/btcsuite/btcd/chaincfg"
	"golang.org/x/sync/errgroup"
)

// ErrNoSeeds is returned when the network defines no DNS seed.
var ErrNoSeeds = errors.New("network has no dns seeds")

// LookupFunc resolves a host name into IP addresses.
type LookupFunc func(ctx context.Context, host string) ([]string, error)

type dnsSeed struct {
	seeds   []chaincfg.DNSSeed
	port    string
	lookup  LookupFunc
	timeout time.Duration
}

var _ peergroup.Discovery = (*dnsSeed)(nil)

// DiscoverPeers queries every seed concurrently and returns the merged
// addresses in random order. It fails only when no seed answered.
func (d *dnsSeed) DiscoverPeers(ctx context.Context) ([]string, error) {
	if len(d.seeds) == 0 {
		return nil, ErrNoSeeds
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var (
		mu    sync.Mutex
		addrs = types.NewSet[string]()
		errs  []error
		g     errgroup.Group
	)
	for _, seed := range d.seeds {
		g.Go(func() error {
			ips, err := d.lookup(ctx, seed.Host)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", seed.Host, err))
				return nil
			}
			for _, ip := range ips {
				addrs.Add(net.JoinHostPort(ip, d.port))
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(addrs) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	for _, err := range errs {
		logger.Debug(ctx, "dns seed lookup failed", "error", err)
	}

	result := addrs.ToSlice()
	rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	logger.Debug(ctx, "dns seeds queried", "seeds.count", len(d.seeds), "peers.count", len(result))
	return result, nil
}

type dnsConfig struct {
	lookup  LookupFunc
	timeout time.Duration
}

// DNSOption configures the DNS seed discovery.
type DNSOption func(*dnsConfig)

// NewDNSSeed returns the DNS seed discovery of params. Addresses use the
// default port of the network.
func NewDNSSeed(params *chaincfg.Params, opts ...DNSOption) *dnsSeed {
	cfg := dnsConfig{
		lookup:  net.DefaultResolver.LookupHost,
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &dnsSeed{
		seeds:   params.DNSSeeds,
		port:    params.DefaultPort,
		lookup:  cfg.lookup,
		timeout: cfg.timeout,
	}
}

// WithLookup replaces the resolver.
func WithLookup(fn LookupFunc) DNSOption {
	return func(c *dnsConfig) {
		if fn != nil {
			c.lookup = fn
		}
	}
}

// WithLookupTimeout bounds a whole discovery round.
func WithLookupTimeout(d time.Duration) DNSOption {
	return func(c *dnsConfig) {
		c.timeout = d
	}
}
