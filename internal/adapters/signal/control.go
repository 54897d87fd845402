package signal

import "github.com/dkeye/Huddle/internal/core"

func (ctl *SignalWSController) handlePing(c *WsSignalConn) {
	ctl.sendEvent(c, core.Event{Type: core.EventPong, Data: struct{}{}})
}
