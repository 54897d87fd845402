package core

// SessionID identifies one live connection, not a person: two tabs are two sessions.
type SessionID string

// MemberSession binds a session id to its transport endpoint.
// This is what the registry stores and fans out to.
type MemberSession interface {
	SID() SessionID
	Signal() SignalConnection
}
