package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// SessionID identifies a browser session for click attribution.
	SessionID ID
	// RecordID is an identifier assigned by the external record store.
	RecordID ID
)

func (id SessionID) String() string { return ID(id).String() }
func (id RecordID) String() string  { return ID(id).String() }

// NewSessionID creates a fresh session identifier
func NewSessionID() SessionID {
	return SessionID(NewID())
}

// ParseRecordID parses a string into a RecordID
func ParseRecordID(s string) (RecordID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("record ID cannot be empty")
	}
	return RecordID(s), nil
}
