package core

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dkeye/Huddle/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// roomImpl is a threadsafe in-memory room.
// Fan-out happens under mu so every member sees the room's events in the order they were applied.
// It never closes adapter-owned resources.
type roomImpl struct {
	room *domain.Room
	pub  Publisher

	mu      sync.RWMutex
	members map[SessionID]string
	order   []SessionID
	chat    []domain.ChatMessage
	game    domain.GameState
	closed  bool
}

func NewRoomService(room *domain.Room, pub Publisher) RoomService {
	return &roomImpl{
		room:    room,
		pub:     pub,
		members: make(map[SessionID]string),
		game:    domain.NewGame(),
	}
}

func (r *roomImpl) Room() *domain.Room { return r.room }

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *roomImpl) Usernames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usernames()
}

func (r *roomImpl) usernames() []string {
	return lo.Map(r.order, func(sid SessionID, _ int) string { return r.members[sid] })
}

func (r *roomImpl) IsMember(sid SessionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[sid]
	return ok
}

func (r *roomImpl) History() []domain.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.chat)
}

func (r *roomImpl) Game() domain.GameState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.game
}

func (r *roomImpl) Join(sid SessionID, name string) error {
	name, err := domain.NormalizeUsername(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return domain.ErrRoomNotFound
	}
	if _, ok := r.members[sid]; !ok {
		r.order = append(r.order, sid)
	}
	r.members[sid] = name
	r.pub.Attach(r.room.Code, sid)
	log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Str("sid", string(sid)).Str("name", name).Msg("member joined")

	history := r.chat
	if history == nil {
		history = []domain.ChatMessage{}
	}
	if err := r.pub.Unicast(sid, Event{Type: EventChatHistory, Data: history}); err != nil {
		log.Warn().Err(err).Str("module", "core.room").Str("sid", string(sid)).Msg("chat history not delivered")
	}
	r.announce(fmt.Sprintf("%s joined the room.", name))
	return nil
}

func (r *roomImpl) Leave(sid SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.members[sid]
	if !ok {
		return false
	}
	r.remove(sid)
	log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Str("sid", string(sid)).Msg("member left")
	r.announce(fmt.Sprintf("%s left the room.", name))
	return true
}

// announce posts a system notice and the refreshed user list. Caller holds mu.
func (r *roomImpl) announce(text string) {
	r.pub.FanOut(r.room.Code, MessageEvent(domain.SystemMessage(text)))
	r.pub.FanOut(r.room.Code, Event{Type: EventUserList, Data: r.usernames()})
}

func (r *roomImpl) remove(sid SessionID) {
	delete(r.members, sid)
	r.order = slices.DeleteFunc(r.order, func(s SessionID) bool { return s == sid })
	r.pub.Detach(r.room.Code, sid)
}

func (r *roomImpl) PostText(sid SessionID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.members[sid]
	if !ok {
		return domain.ErrNotAMember
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	r.post(domain.NewTextMessage(name, text))
	return nil
}

func (r *roomImpl) PostImage(sid SessionID, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.members[sid]
	if !ok {
		return domain.ErrNotAMember
	}
	r.post(domain.NewImageMessage(name, ref))
	return nil
}

func (r *roomImpl) post(m domain.ChatMessage) {
	r.chat = append(r.chat, m)
	r.pub.FanOut(r.room.Code, MessageEvent(m))
}

func (r *roomImpl) ClearChat(sid SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.members[sid]
	if !ok {
		return false
	}
	r.chat = nil
	log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Str("sid", string(sid)).Msg("chat cleared")
	r.pub.FanOut(r.room.Code, Event{Type: EventClearChat, Data: NamePayload{Name: name}})
	return true
}

func (r *roomImpl) Rename(sid SessionID, newName string) bool {
	newName, err := domain.NormalizeUsername(newName)
	if err != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.members[sid]
	if !ok {
		return false
	}
	r.members[sid] = newName
	r.pub.FanOut(r.room.Code, Event{Type: EventNameChanged, Data: NameChangedPayload{OldName: old, NewName: newName}})
	return true
}

func (r *roomImpl) Typing(sid SessionID) bool {
	return r.notifyOthers(sid, EventTyping)
}

func (r *roomImpl) StopTyping(sid SessionID) bool {
	return r.notifyOthers(sid, EventStopTyping)
}

func (r *roomImpl) notifyOthers(sid SessionID, eventType string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.members[sid]
	if !ok {
		return false
	}
	r.pub.FanOutExcluding(r.room.Code, Event{Type: eventType, Data: NamePayload{Name: name}}, sid)
	return true
}

func (r *roomImpl) Shake(sid SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.members[sid]
	if !ok {
		return false
	}
	r.pub.FanOut(r.room.Code, Event{Type: EventShake, Data: NamePayload{Name: name}})
	return true
}

// SendGame delivers the current board to one connection, member or not.
func (r *roomImpl) SendGame(sid SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pub.Unicast(sid, GameEvent(r.game))
}

// Move plays pos for whichever side is on turn; seats are not tracked.
func (r *roomImpl) Move(sid SessionID, pos int) (domain.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[sid]; !ok {
		return r.game, domain.ErrNotAMember
	}
	next, err := r.game.ApplyMove(pos)
	if err != nil {
		return r.game, err
	}
	r.game = next
	if next.Finished() {
		log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Str("winner", string(next.Winner)).Msg("game finished")
	}
	r.pub.FanOut(r.room.Code, GameEvent(next))
	return next, nil
}

func (r *roomImpl) ResetGame() domain.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game = domain.NewGame()
	r.pub.FanOut(r.room.Code, GameEvent(r.game))
	return r.game
}

func (r *roomImpl) Close() []SessionID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	sids := slices.Clone(r.order)
	for _, sid := range sids {
		r.remove(sid)
	}
	log.Info().Str("module", "core.room").Str("room", string(r.room.Code)).Int("detached", len(sids)).Msg("room closed")
	return sids
}
