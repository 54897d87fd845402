package signal

import (
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleRename(c *WsSignalConn, data []byte) {
	var p renamePayload
	if err := decode(data, &p); err != nil {
		return
	}
	room, err := ctl.room(p.Code)
	if err != nil {
		return
	}
	if room.Rename(c.sid, p.NewName) {
		log.Info().Str("module", "signal").Str("sid", string(c.sid)).Str("name", p.NewName).Msg("rename")
	}
}
