package app

import (
	"context"
	"errors"
	"sync"

	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/domain"
	"github.com/rs/zerolog/log"
)

var ErrUnknownSession = errors.New("unknown session")

type sessionEntry struct {
	Room    domain.RoomCode
	Session core.MemberSession
	Cancel  context.CancelFunc
}

// Registry tracks every live connection and the room it is attached to,
// and delivers events to them. It implements core.Publisher.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*sessionEntry
	rooms    map[domain.RoomCode]map[core.SessionID]struct{}
	policy   Policy
}

var _ core.Publisher = (*Registry)(nil)

func NewRegistry(policy Policy) *Registry {
	return &Registry{
		sessions: make(map[core.SessionID]*sessionEntry),
		rooms:    make(map[domain.RoomCode]map[core.SessionID]struct{}),
		policy:   policy,
	}
}

func (r *Registry) BindSignal(sid core.SessionID, sess core.MemberSession, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sid] = &sessionEntry{Session: sess, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound signal")
}

func (r *Registry) GetSession(sid core.SessionID) (core.MemberSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok {
		return e.Session, true
	}
	return nil, false
}

func (r *Registry) Unbind(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sid]; ok && e.Room != "" {
		r.unindex(e.Room, sid)
	}
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind session")
}

func (r *Registry) RoomOf(sid core.SessionID) (domain.RoomCode, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.sessions[sid]
	if !ok || entry.Room == "" {
		return "", false
	}
	return entry.Room, true
}

// Attach points sid at code. Unbound sessions are ignored: the connection is already gone.
func (r *Registry) Attach(code domain.RoomCode, sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.sessions[sid]
	if !ok {
		log.Warn().Str("module", "app.registry").Str("sid", string(sid)).Str("room", string(code)).Msg("attach for unbound session")
		return
	}
	if entry.Room != "" && entry.Room != code {
		r.unindex(entry.Room, sid)
	}
	entry.Room = code
	members, ok := r.rooms[code]
	if !ok {
		members = make(map[core.SessionID]struct{})
		r.rooms[code] = members
	}
	members[sid] = struct{}{}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("room", string(code)).Msg("attached to room")
}

func (r *Registry) Detach(code domain.RoomCode, sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.sessions[sid]; ok && entry.Room == code {
		entry.Room = ""
	}
	r.unindex(code, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("room", string(code)).Msg("removed room association")
}

func (r *Registry) unindex(code domain.RoomCode, sid core.SessionID) {
	members, ok := r.rooms[code]
	if !ok {
		return
	}
	delete(members, sid)
	if len(members) == 0 {
		delete(r.rooms, code)
	}
}

type regSnap struct {
	SID     core.SessionID
	Session core.MemberSession
}

func (r *Registry) MembersOfRoom(code domain.RoomCode) []regSnap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members := r.rooms[code]
	out := make([]regSnap, 0, len(members))
	for sid := range members {
		if e, ok := r.sessions[sid]; ok {
			out = append(out, regSnap{SID: sid, Session: e.Session})
		}
	}
	return out
}

func (r *Registry) FanOut(code domain.RoomCode, ev core.Event) core.PublishResult {
	return r.FanOutExcluding(code, ev, "")
}

// FanOutExcluding delivers ev to every connection attached to code except exclude.
// The frame is encoded once and queued per connection, which keeps each connection FIFO.
func (r *Registry) FanOutExcluding(code domain.RoomCode, ev core.Event, exclude core.SessionID) core.PublishResult {
	res := core.PublishResult{}
	frame, err := ev.Encode()
	if err != nil {
		log.Error().Err(err).Str("module", "app.registry").Str("type", ev.Type).Msg("encode event")
		return res
	}
	for _, snap := range r.MembersOfRoom(code) {
		if snap.SID == exclude {
			continue
		}
		if err := snap.Session.Signal().TrySend(frame); err != nil {
			// already kicked, its read pump will report the disconnect
			if errors.Is(err, core.ErrSignalClosed) {
				continue
			}
			res.Dropped = append(res.Dropped, snap.Session)
			continue
		}
		res.SendTo++
	}
	log.Debug().Str("module", "app.registry").Str("room", string(code)).Str("type", ev.Type).Int("sent_to", res.SendTo).Int("dropped", len(res.Dropped)).Msg("broadcast result")
	r.applyPolicy(code, res.Dropped)
	return res
}

func (r *Registry) Unicast(sid core.SessionID, ev core.Event) error {
	r.mu.RLock()
	entry, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return ErrUnknownSession
	}
	frame, err := ev.Encode()
	if err != nil {
		return err
	}
	if err := entry.Session.Signal().TrySend(frame); err != nil {
		if errors.Is(err, core.ErrSignalClosed) {
			return err
		}
		r.applyPolicy(entry.Room, []core.MemberSession{entry.Session})
		return err
	}
	return nil
}

func (r *Registry) applyPolicy(code domain.RoomCode, dropped []core.MemberSession) {
	if r.policy == nil {
		return
	}
	for _, slow := range dropped {
		switch r.policy.OnBackPressure(code, slow) {
		case KickMember:
			log.Warn().Str("module", "app.registry").Str("sid", string(slow.SID())).Str("room", string(code)).Msg("kicking slow consumer")
			r.Cancel(slow.SID())
			slow.Signal().Close()
		case DropFrame:
			log.Debug().Str("module", "app.registry").Str("sid", string(slow.SID())).Msg("frame dropped")
		case NoAction:
		}
	}
}

func (r *Registry) Cancel(sid core.SessionID) bool {
	r.mu.RLock()
	e, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("canceled session")
	return true
}

func (r *Registry) SessionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
