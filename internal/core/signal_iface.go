package core

import "errors"

// ErrSignalClosed is returned by TrySend once the connection is closed.
var ErrSignalClosed = errors.New("connection closed")

// Frame is one encoded outbound message.
type Frame []byte

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
