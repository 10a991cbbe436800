package peergroup

import (
	"github.com/btcsuite/btcd/wire"
)

// Listener receives session events. Calls are serialized by the session event
// loop and must not block for long.
type Listener interface {
	PeerConnected(addr string, peerCount int)
	PeerDisconnected(addr string, peerCount int)
	ChainDownloadProgress(height, target int32)
	ChainDownloaded(height int32)
	TransactionReceived(tx *wire.MsgTx)
}

// NopListener ignores every event. Embed it to implement a subset of Listener.
type NopListener struct{}

var _ Listener = NopListener{}

func (NopListener) PeerConnected(string, int)          {}
func (NopListener) PeerDisconnected(string, int)       {}
func (NopListener) ChainDownloadProgress(int32, int32) {}
func (NopListener) ChainDownloaded(int32)              {}
func (NopListener) TransactionReceived(*wire.MsgTx)    {}
