package orch

import (
	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/domain"
	"github.com/rs/zerolog/log"
)

// Join puts sid in the room at code. A session belongs to one room at a time,
// so it first leaves whatever room it was in.
func (o *Orchestrator) Join(sid core.SessionID, code domain.RoomCode, name string) error {
	room, err := o.Room(code)
	if err != nil {
		return err
	}
	if _, err := domain.NormalizeUsername(name); err != nil {
		return err
	}
	if prev, ok := o.Registry.RoomOf(sid); ok && prev != code {
		o.Leave(sid, prev)
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("from_room", string(prev)).Msg("left previous room")
	}
	if err := room.Join(sid, name); err != nil {
		return err
	}
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(code)).Msg("added to room")
	return nil
}

// Leave is a no-op for unknown rooms and non-members.
func (o *Orchestrator) Leave(sid core.SessionID, code domain.RoomCode) bool {
	room, err := o.Room(code)
	if err != nil {
		return false
	}
	return room.Leave(sid)
}

// EvictRoom detaches every member, tells them the room is gone and forgets the room.
func (o *Orchestrator) EvictRoom(code domain.RoomCode) bool {
	room, err := o.Room(code)
	if err != nil {
		return false
	}
	o.Rooms.StopRoom(code)
	for _, sid := range room.Close() {
		if err := o.Registry.Unicast(sid, core.ErrorEvent(domain.ErrRoomNotFound.Error())); err != nil {
			log.Warn().Err(err).Str("module", "orch").Str("sid", string(sid)).Msg("eviction notice not delivered")
		}
	}
	log.Info().Str("module", "orch").Str("room", string(code)).Msg("room evicted")
	return true
}
