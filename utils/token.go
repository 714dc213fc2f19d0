package utils

import (
	"github.com/google/uuid"
)

// NewSessionToken returns a fresh opaque session credential. UUIDv4 keeps
// tokens compatible with the session_id values already on disk.
func NewSessionToken() string {
	return uuid.NewString()
}
