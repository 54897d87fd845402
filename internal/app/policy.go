package app

import (
	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/domain"
)

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropFrame
	KickMember
)

// Policy decides what happens to a connection whose send queue is full.
type Policy interface {
	OnBackPressure(code domain.RoomCode, member core.MemberSession) BackpressureAction
}

// SimplePolicy disconnects slow consumers; their disconnect hook then leaves the room.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(code domain.RoomCode, member core.MemberSession) BackpressureAction {
	return KickMember
}
