package app

import "github.com/google/uuid"

// newGameID returns a random UUIDv4 string.
func newGameID() string {
	return uuid.NewString()
}

// ValidID reports whether id has the shape of a game ID.
func ValidID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.Version() == 4
}
