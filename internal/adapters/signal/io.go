package signal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/dkeye/Huddle/internal/core"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	ticker := time.NewTicker(ctl.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("sid", string(c.sid)).Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Debug().Str("module", "signal").Str("sid", string(c.sid)).Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.opts.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Str("sid", string(c.sid)).Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(ctl.opts.WriteWait)); err != nil {
				log.Warn().Err(err).Str("module", "signal").Str("sid", string(c.sid)).Msg("ping failed")
				return
			}
		}
	}
}

// readPump owns the disconnect path: whatever ends it, the session leaves its room.
func (ctl *SignalWSController) readPump(ctx context.Context, cancel context.CancelFunc, c *WsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(c.sid)).Msg("readPump closing")
		ctl.Orch.OnDisconnect(c.sid)
		cancel()
		c.Close()
	}()

	pongWait := ctl.opts.pongWait()
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("sid", string(c.sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				logReadError(c.sid, err)
				return
			}
			_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
			ctl.handleSignal(c, data)
		}
	}
}

func logReadError(sid core.SessionID, err error) {
	switch {
	case errors.Is(err, websocket.ErrReadLimit):
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("frame over read limit")
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway),
		errors.Is(err, io.EOF), errors.Is(err, ErrClosed):
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("client disconnected")
	default:
		log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
	}
}

func (ctl *SignalWSController) handleSignal(c *WsSignalConn, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendError(c, msgBadPayload)
		return
	}

	switch env.Type {
	case "join":
		ctl.handleJoin(c, data)
	case "leave":
		ctl.handleLeave(c, data)
	case "message":
		ctl.handleMessage(c, data)
	case "image":
		ctl.handleImage(c, data)
	case "typing":
		ctl.handleTyping(c, data, core.RoomService.Typing)
	case "stop_typing":
		ctl.handleTyping(c, data, core.RoomService.StopTyping)
	case "clear_chat":
		ctl.handleClearChat(c, data)
	case "shake_room":
		ctl.handleShake(c, data)
	case "change_name":
		ctl.handleRename(c, data)
	case "tic_tac_toe_join":
		ctl.handleGameJoin(c, data)
	case "tic_tac_toe_move":
		ctl.handleGameMove(c, data)
	case "tic_tac_toe_reset":
		ctl.handleGameReset(c, data)
	case "ping":
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown signal")
	}
}

func (ctl *SignalWSController) sendEvent(c *WsSignalConn, ev core.Event) {
	b, err := ev.Encode()
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendEvent marshal")
		return
	}
	if err := c.TrySend(b); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(c.sid)).Msg("reply dropped")
	}
}

func (ctl *SignalWSController) sendError(c *WsSignalConn, msg string) {
	ctl.sendEvent(c, core.ErrorEvent(msg))
}
