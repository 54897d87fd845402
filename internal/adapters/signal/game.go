package signal

import (
	"errors"

	"github.com/dkeye/Huddle/internal/domain"
	"github.com/rs/zerolog/log"
)

// handleGameJoin hydrates a client with the current board; spectators need not be members.
func (ctl *SignalWSController) handleGameJoin(c *WsSignalConn, data []byte) {
	var p roomPayload
	if err := decode(data, &p); err != nil {
		ctl.sendError(c, msgRoomNotFound)
		return
	}
	room, err := ctl.room(p.Code)
	if err != nil {
		ctl.sendError(c, msgRoomNotFound)
		return
	}
	if err := room.SendGame(c.sid); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(c.sid)).Msg("game state not delivered")
	}
}

func (ctl *SignalWSController) handleGameMove(c *WsSignalConn, data []byte) {
	var p movePayload
	if err := decode(data, &p); err != nil {
		if errors.Is(err, errBadPayload) {
			ctl.sendError(c, msgInvalidMove)
		} else {
			ctl.sendError(c, msgNotInRoom)
		}
		return
	}
	room, err := ctl.room(p.Code)
	if err != nil {
		ctl.sendError(c, msgNotInRoom)
		return
	}
	// a missing position goes through the engine so the finished check still comes first
	pos := -1
	if p.Pos != nil {
		pos = *p.Pos
	}
	if _, err := room.Move(c.sid, pos); err != nil {
		if !errors.Is(err, domain.ErrNotAMember) {
			log.Debug().Err(err).Str("module", "signal").Str("sid", string(c.sid)).Int("pos", pos).Msg("move rejected")
		}
		ctl.sendError(c, errorMessage(err))
	}
}

// handleGameReset is open to anyone who knows the code, members or not.
func (ctl *SignalWSController) handleGameReset(c *WsSignalConn, data []byte) {
	var p roomPayload
	if err := decode(data, &p); err != nil {
		return
	}
	room, err := ctl.room(p.Code)
	if err != nil {
		return
	}
	room.ResetGame()
	log.Info().Str("module", "signal").Str("sid", string(c.sid)).Str("room", p.Code).Msg("game reset")
}
