package domain

import (
	"github.com/google/uuid"
)

// canonical 8-4-4-4-12 textual form
const idLength = 36

// ID identifies products and orders. The zero value is not a valid identifier.
type ID struct {
	uuid uuid.UUID
}

// ParseID accepts only the canonical hyphenated form, in any letter case.
func ParseID(raw string) (ID, error) {
	if len(raw) != idLength {
		return ID{}, validationErrorf("Invalid UUID format: %s", raw)
	}

	u, err := uuid.Parse(raw)
	if err != nil {
		return ID{}, validationErrorf("Invalid UUID format: %s", raw)
	}

	return ID{uuid: u}, nil
}

func MustParseID(raw string) ID {
	id, err := ParseID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// NewID returns a random version 4, variant 10 identifier.
func NewID() ID {
	return ID{uuid: uuid.New()}
}

// IDFromUUID wraps a UUID read from storage.
func IDFromUUID(u uuid.UUID) ID {
	return ID{uuid: u}
}

func (id ID) UUID() uuid.UUID {
	return id.uuid
}

// String is always lowercase.
func (id ID) String() string {
	return id.uuid.String()
}

func (id ID) Equals(other ID) bool {
	return id.uuid == other.uuid
}

func (id ID) IsZero() bool {
	return id.uuid == uuid.Nil
}
