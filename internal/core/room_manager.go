package core

import (
	"sync"

	"github.com/dkeye/Huddle/internal/domain"
	"github.com/rs/zerolog/log"
)

// CodeGenerator produces short opaque room codes.
type CodeGenerator func() domain.RoomCode

type roomManager struct {
	mu    sync.RWMutex
	rooms map[domain.RoomCode]RoomService
	codes CodeGenerator
	pub   Publisher
}

func NewRoomManager(codes CodeGenerator, pub Publisher) RoomManager {
	return &roomManager{
		rooms: make(map[domain.RoomCode]RoomService),
		codes: codes,
		pub:   pub,
	}
}

// CreateRoom registers a room under a fresh code. A generated code that is already
// taken is drawn again instead of replacing the live room.
func (m *roomManager) CreateRoom() RoomService {
	m.mu.Lock()
	defer m.mu.Unlock()
	code := m.codes()
	for {
		if _, taken := m.rooms[code]; !taken {
			break
		}
		log.Warn().Str("module", "core.room_manager").Str("room", string(code)).Msg("room code collision, regenerating")
		code = m.codes()
	}
	room := NewRoomService(&domain.Room{Code: code}, m.pub)
	m.rooms[code] = room
	log.Info().Str("module", "core.room_manager").Str("room", string(code)).Int("rooms", len(m.rooms)).Msg("room created")
	return room
}

func (m *roomManager) Exists(code domain.RoomCode) bool {
	_, ok := m.GetRoom(code)
	return ok
}

func (m *roomManager) GetRoom(code domain.RoomCode) (RoomService, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[code]
	return room, ok
}

func (m *roomManager) List() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, MemberCount: r.MemberCount()})
	}
	return out
}

func (m *roomManager) StopRoom(code domain.RoomCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, code)
	log.Info().Str("module", "core.room_manager").Str("room", string(code)).Msg("room stopped")
}
