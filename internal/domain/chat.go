package domain

// SystemAuthor signs the presence notices the server writes into a room.
const SystemAuthor = "System"

type MessageKind string

const (
	KindText  MessageKind = "text"
	KindImage MessageKind = "image"
)

// ChatMessage is immutable once appended to a room's history.
type ChatMessage struct {
	Author  string      `json:"name"`
	Payload string      `json:"message"`
	Kind    MessageKind `json:"type"`
}

func NewTextMessage(author, text string) ChatMessage {
	return ChatMessage{Author: author, Payload: text, Kind: KindText}
}

// NewImageMessage wraps a reference returned by the upload store.
func NewImageMessage(author, ref string) ChatMessage {
	return ChatMessage{Author: author, Payload: ref, Kind: KindImage}
}

func SystemMessage(text string) ChatMessage {
	return NewTextMessage(SystemAuthor, text)
}
