// Package apptest provides an in-memory core.SignalConnection for tests.
package apptest

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/dkeye/Huddle/internal/core"
	"github.com/stretchr/testify/require"
)

var (
	ErrClosed = core.ErrSignalClosed
	ErrFull   = errors.New("send queue full")
)

// Received is a decoded outbound frame.
type Received struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type Conn struct {
	mu     sync.Mutex
	frames []core.Frame
	closed bool
	full   bool
}

func NewConn() *Conn { return &Conn{} }

func (c *Conn) TrySend(f core.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.full {
		return ErrFull
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// SetFull makes every later TrySend fail as if the queue were saturated.
func (c *Conn) SetFull(full bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.full = full
}

func (c *Conn) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = nil
}

func (c *Conn) Events(t *testing.T) []Received {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Received, 0, len(c.frames))
	for _, f := range c.frames {
		var r Received
		require.NoError(t, json.Unmarshal(f, &r))
		out = append(out, r)
	}
	return out
}

// Types lists the event types received so far, in order.
func (c *Conn) Types(t *testing.T) []string {
	t.Helper()
	evs := c.Events(t)
	out := make([]string, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Type)
	}
	return out
}

// Last decodes the data of the most recent event of the given type into v.
func (c *Conn) Last(t *testing.T, eventType string, v any) bool {
	t.Helper()
	evs := c.Events(t)
	for i := len(evs) - 1; i >= 0; i-- {
		if evs[i].Type == eventType {
			require.NoError(t, json.Unmarshal(evs[i].Data, v))
			return true
		}
	}
	return false
}
