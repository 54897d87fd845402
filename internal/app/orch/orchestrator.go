// Package orch ties room membership to live connections: it moves sessions between
// rooms, cleans up after disconnects and evicts rooms.
package orch

import (
	"github.com/dkeye/Huddle/internal/app"
	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/domain"
	"github.com/rs/zerolog/log"
)

type Orchestrator struct {
	Registry *app.Registry
	Rooms    core.RoomManager
}

func New(reg *app.Registry, rooms core.RoomManager) *Orchestrator {
	return &Orchestrator{Registry: reg, Rooms: rooms}
}

func (o *Orchestrator) Room(code domain.RoomCode) (core.RoomService, error) {
	room, ok := o.Rooms.GetRoom(code)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

// OnDisconnect is the transport's hook for a closed connection. Without it the
// member would linger in its room.
func (o *Orchestrator) OnDisconnect(sid core.SessionID) {
	if code, ok := o.Registry.RoomOf(sid); ok {
		if o.Leave(sid, code) {
			log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(code)).Msg("left on disconnect")
		}
	}
	o.Registry.Unbind(sid)
}
