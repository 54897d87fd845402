package signal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkeye/Huddle/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Inbound frames, one struct per type tag. Every frame names the room it targets.
type (
	roomPayload struct {
		Code string `json:"code" validate:"required,max=64"`
	}
	joinPayload struct {
		Code string `json:"code" validate:"required,max=64"`
		Name string `json:"name"`
	}
	messagePayload struct {
		Code string `json:"code" validate:"required,max=64"`
		Data string `json:"data"`
	}
	imagePayload struct {
		Code     string `json:"code" validate:"required,max=64"`
		Filename string `json:"filename"`
	}
	renamePayload struct {
		Code    string `json:"code" validate:"required,max=64"`
		NewName string `json:"new_name"`
	}
	movePayload struct {
		Code string `json:"code" validate:"required,max=64"`
		Pos  *int   `json:"pos"`
	}
)

var errBadPayload = errors.New("bad_payload")

// decode unmarshals a frame into p and checks its tags.
func decode(data []byte, p any) error {
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("%w: %v", errBadPayload, err)
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidationFailed, err)
	}
	return nil
}

const (
	msgBadPayload   = "bad_payload"
	msgInvalidJoin  = "Invalid room or name"
	msgNotInRoom    = "Not in room"
	msgRoomNotFound = "Room does not exist"
	msgGameFinished = "Game already finished"
	msgInvalidMove  = "Invalid move"
	msgCellTaken    = "Cell already taken"
)

// errorMessage turns a core error into the text shown to the initiating client.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrGameFinished):
		return msgGameFinished
	case errors.Is(err, domain.ErrCellTaken):
		return msgCellTaken
	case errors.Is(err, domain.ErrInvalidPosition):
		return msgInvalidMove
	case errors.Is(err, domain.ErrNotAMember):
		return msgNotInRoom
	case errors.Is(err, domain.ErrRoomNotFound):
		return msgRoomNotFound
	default:
		return err.Error()
	}
}
