package core

import (
	"encoding/json"

	"github.com/dkeye/Huddle/internal/domain"
)

const (
	EventChatHistory = "chat_history"
	EventMessage     = "message"
	EventUserList    = "user_list"
	EventTyping      = "typing"
	EventStopTyping  = "stop_typing"
	EventClearChat   = "clear_chat"
	EventShake       = "shake"
	EventNameChanged = "name_changed"
	EventGameUpdate  = "tic_tac_toe_update"
	EventError       = "error"
	EventPong        = "pong"
)

// Event is the outbound envelope: {"type": ..., "data": ...}.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (e Event) Encode() (Frame, error) {
	return json.Marshal(e)
}

type NamePayload struct {
	Name string `json:"name"`
}

type NameChangedPayload struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

type ErrorPayload struct {
	Msg string `json:"msg"`
}

func MessageEvent(m domain.ChatMessage) Event {
	return Event{Type: EventMessage, Data: m}
}

func GameEvent(g domain.GameState) Event {
	return Event{Type: EventGameUpdate, Data: g}
}

func ErrorEvent(msg string) Event {
	return Event{Type: EventError, Data: ErrorPayload{Msg: msg}}
}
