package signal

import (
	"errors"

	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) room(code string) (core.RoomService, error) {
	return ctl.Orch.Room(domain.RoomCode(code))
}

func (ctl *SignalWSController) handleJoin(c *WsSignalConn, data []byte) {
	var p joinPayload
	if err := decode(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(c.sid)).Msg("bad join payload")
		ctl.sendError(c, msgInvalidJoin)
		return
	}
	if p.Name == "" {
		p.Name = c.sessionName
	}
	if err := ctl.Orch.Join(c.sid, domain.RoomCode(p.Code), p.Name); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(c.sid)).Str("room", p.Code).Msg("join rejected")
		ctl.sendError(c, msgInvalidJoin)
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(c.sid)).Str("room", p.Code).Msg("join")
}

func (ctl *SignalWSController) handleLeave(c *WsSignalConn, data []byte) {
	var p roomPayload
	if err := decode(data, &p); err != nil {
		return
	}
	if ctl.Orch.Leave(c.sid, domain.RoomCode(p.Code)) {
		log.Info().Str("module", "signal").Str("sid", string(c.sid)).Str("room", p.Code).Msg("leave")
	}
}

func (ctl *SignalWSController) handleMessage(c *WsSignalConn, data []byte) {
	var p messagePayload
	if err := decode(data, &p); err != nil {
		ctl.sendError(c, msgNotInRoom)
		return
	}
	ctl.post(c, p.Code, func(room core.RoomService) error { return room.PostText(c.sid, p.Data) })
}

func (ctl *SignalWSController) handleImage(c *WsSignalConn, data []byte) {
	var p imagePayload
	if err := decode(data, &p); err != nil {
		ctl.sendError(c, msgNotInRoom)
		return
	}
	ctl.post(c, p.Code, func(room core.RoomService) error { return room.PostImage(c.sid, p.Filename) })
}

// post runs a chat write; a missing room reads as not being in it.
func (ctl *SignalWSController) post(c *WsSignalConn, code string, write func(core.RoomService) error) {
	room, err := ctl.room(code)
	if err == nil {
		err = write(room)
	}
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrRoomNotFound) {
		err = domain.ErrNotAMember
	}
	ctl.sendError(c, errorMessage(err))
}

// withRoom runs op for frames whose failures are silent: bad payloads and unknown rooms are dropped.
func (ctl *SignalWSController) withRoom(c *WsSignalConn, data []byte, op func(core.RoomService) bool) {
	var p roomPayload
	if err := decode(data, &p); err != nil {
		return
	}
	room, err := ctl.room(p.Code)
	if err != nil {
		return
	}
	op(room)
}

func (ctl *SignalWSController) handleTyping(c *WsSignalConn, data []byte, notify func(core.RoomService, core.SessionID) bool) {
	ctl.withRoom(c, data, func(room core.RoomService) bool { return notify(room, c.sid) })
}

func (ctl *SignalWSController) handleClearChat(c *WsSignalConn, data []byte) {
	ctl.withRoom(c, data, func(room core.RoomService) bool { return room.ClearChat(c.sid) })
}

func (ctl *SignalWSController) handleShake(c *WsSignalConn, data []byte) {
	ctl.withRoom(c, data, func(room core.RoomService) bool { return room.Shake(c.sid) })
}
