package peergroup

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/nodewallet/internal/chainstore"
	"github.com/gabapcia/nodewallet/internal/network"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

var errUnreachable = errors.New("unreachable")

// fakeConn is an in-memory peer. When serve is set it answers header
// requests with the part of the chain following the locator.
type fakeConn struct {
	addr    string
	height  int32
	serve   []*wire.BlockHeader
	sendErr error

	mu       sync.Mutex
	handler  Handler
	requests int
	sent     []*wire.MsgTx

	done      chan struct{}
	closeOnce sync.Once
}

func newFakeConn(addr string, height int32, serve []*wire.BlockHeader) *fakeConn {
	return &fakeConn{
		addr:   addr,
		height: height,
		serve:  serve,
		done:   make(chan struct{}),
	}
}

func (c *fakeConn) Addr() string      { return c.addr }
func (c *fakeConn) BestHeight() int32 { return c.height }

func (c *fakeConn) RequestHeaders(locator []*chainhash.Hash) error {
	c.mu.Lock()
	c.requests++
	handler := c.handler
	c.mu.Unlock()

	if c.serve == nil {
		return nil
	}

	start := 0
	for i, h := range c.serve {
		hash := h.BlockHash()
		if hash.IsEqual(locator[0]) {
			start = i + 1
			break
		}
	}

	go handler.OnHeaders(c, c.serve[start:])
	return nil
}

func (c *fakeConn) SendTransaction(tx *wire.MsgTx) error {
	if c.sendErr != nil {
		return c.sendErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, tx)
	return nil
}

func (c *fakeConn) Done() <-chan struct{} { return c.done }

func (c *fakeConn) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *fakeConn) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func (c *fakeConn) requestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests
}

// fakeDialer hands out the registered connections; unknown addresses fail.
type fakeDialer struct {
	mu    sync.Mutex
	conns map[string]*fakeConn
	dials map[string]int
}

func newFakeDialer(conns ...*fakeConn) *fakeDialer {
	d := &fakeDialer{conns: map[string]*fakeConn{}, dials: map[string]int{}}
	for _, c := range conns {
		d.conns[c.addr] = c
	}
	return d
}

func (d *fakeDialer) Dial(_ context.Context, addr string, h Handler) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dials[addr]++
	conn, ok := d.conns[addr]
	if !ok {
		return nil, errUnreachable
	}

	conn.mu.Lock()
	conn.handler = h
	conn.mu.Unlock()
	return conn, nil
}

// replace registers a fresh connection for addr, used to simulate reconnects.
func (d *fakeDialer) replace(c *fakeConn) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.conns[c.addr] = c
}

func (d *fakeDialer) dialCount(addr string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials[addr]
}

// recordingListener stores every event it receives.
type recordingListener struct {
	NopListener

	mu         sync.Mutex
	connected  []string
	dropped    []string
	downloaded []int32
	progress   []int32
	txs        []chainhash.Hash
}

func (l *recordingListener) PeerConnected(addr string, _ int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.connected = append(l.connected, addr)
}

func (l *recordingListener) PeerDisconnected(addr string, _ int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dropped = append(l.dropped, addr)
}

func (l *recordingListener) ChainDownloadProgress(height, _ int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.progress = append(l.progress, height)
}

func (l *recordingListener) ChainDownloaded(height int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.downloaded = append(l.downloaded, height)
}

func (l *recordingListener) TransactionReceived(tx *wire.MsgTx) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.txs = append(l.txs, tx.TxHash())
}

func (l *recordingListener) snapshot() recordingListener {
	l.mu.Lock()
	defer l.mu.Unlock()
	return recordingListener{
		connected:  append([]string(nil), l.connected...),
		dropped:    append([]string(nil), l.dropped...),
		downloaded: append([]int32(nil), l.downloaded...),
		progress:   append([]int32(nil), l.progress...),
		txs:        append([]chainhash.Hash(nil), l.txs...),
	}
}

func openChain(t *testing.T) *chainstore.Store {
	t.Helper()

	store, err := chainstore.Open(filepath.Join(t.TempDir(), "chain"), network.Test)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// headerChain builds n headers on top of the test network genesis block.
func headerChain(n int) []*wire.BlockHeader {
	prev := *network.Test.Params().GenesisHash
	headers := make([]*wire.BlockHeader, 0, n)
	for i := range n {
		h := wire.NewBlockHeader(1, &prev, &prev, 0x1d00ffff, uint32(i+1))
		h.Timestamp = time.Unix(1_700_000_000+int64(i)*600, 0)
		headers = append(headers, h)
		prev = h.BlockHash()
	}
	return headers
}

func sampleTx(value int64) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{1}, 0), nil, nil))
	tx.AddTxOut(wire.NewTxOut(value, []byte{0x51}))
	return tx
}
