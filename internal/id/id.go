package id

import "github.com/google/uuid"

// GenerateID creates a unique identifier for games and stored sessions.
func GenerateID() string {
	return uuid.NewString()
}

// Valid reports whether s looks like an identifier produced by GenerateID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
