package text

import (
	"github.com/google/uuid"
	"github.com/therobotinitiative/Halcyon/halcyon/internal/textual"
)

// ToUUID parses the textual form of value as a UUID.
// It returns false when value is absent or not a UUID.
func ToUUID(value any) (uuid.UUID, bool) {
	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	s, ok := textual.Form(value)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// UUIDToString returns the canonical form of *id, or false when id is nil.
func UUIDToString(id *uuid.UUID) (string, bool) {
	if id == nil {
		return "", false
	}

	return id.String(), true
}
