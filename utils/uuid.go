package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random identifier for requests and websocket clients
func GenerateID() string {
	return uuid.NewString()
}

// ValidID reports whether id is a well-formed identifier
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}
