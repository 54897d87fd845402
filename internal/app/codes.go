package app

import (
	"strings"

	"github.com/dkeye/Huddle/internal/core"
	"github.com/dkeye/Huddle/internal/domain"
	"github.com/google/uuid"
)

const (
	MinCodeLength     = 4
	MaxCodeLength     = 32
	DefaultCodeLength = 8
)

// UUIDCodes returns a generator of lowercase hex room codes cut from a random UUID.
func UUIDCodes(length int) core.CodeGenerator {
	length = min(max(length, MinCodeLength), MaxCodeLength)
	return func() domain.RoomCode {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		return domain.RoomCode(raw[:length])
	}
}
