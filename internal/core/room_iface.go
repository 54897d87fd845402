package core

import (
	"github.com/dkeye/Huddle/internal/domain"
)

// PublishResult reports delivery stats/backpressure to orchestrator.
type PublishResult struct {
	SendTo  int
	Dropped []MemberSession
}

//go:generate mockgen -destination=mocks/publisher_mock.go -package=mocks github.com/dkeye/Huddle/internal/core Publisher

// Publisher delivers events to the connections attached to a room.
// Rooms call it while holding their own lock, so implementations must not call back into a room.
type Publisher interface {
	Attach(code domain.RoomCode, sid SessionID)
	Detach(code domain.RoomCode, sid SessionID)
	FanOut(code domain.RoomCode, ev Event) PublishResult
	FanOutExcluding(code domain.RoomCode, ev Event, exclude SessionID) PublishResult
	Unicast(sid SessionID, ev Event) error
}

// RoomService is the core-facing API of a room.
// It owns membership, chat history and the game, and serializes every change to them.
// Operations documented as silent report whether they had any effect instead of failing.
type RoomService interface {
	Room() *domain.Room
	MemberCount() int
	Usernames() []string
	IsMember(sid SessionID) bool
	History() []domain.ChatMessage
	Game() domain.GameState

	Join(sid SessionID, name string) error
	Leave(sid SessionID) bool
	PostText(sid SessionID, text string) error
	PostImage(sid SessionID, ref string) error
	ClearChat(sid SessionID) bool
	Rename(sid SessionID, newName string) bool
	Typing(sid SessionID) bool
	StopTyping(sid SessionID) bool
	Shake(sid SessionID) bool

	SendGame(sid SessionID) error
	Move(sid SessionID, pos int) (domain.GameState, error)
	ResetGame() domain.GameState

	// Close detaches every member and rejects later joins.
	Close() []SessionID
}

type RoomInfo struct {
	Code        domain.RoomCode `json:"code"`
	MemberCount int             `json:"client_count"`
}

type RoomManager interface {
	CreateRoom() RoomService
	Exists(code domain.RoomCode) bool
	GetRoom(code domain.RoomCode) (RoomService, bool)
	List() []RoomInfo
	StopRoom(code domain.RoomCode)
}
