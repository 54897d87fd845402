package domain

// RoomCode identifies a room. It is opaque to the core and produced by a code generator.
type RoomCode string

type Room struct {
	Code RoomCode
}
