package model

import (
	"regexp"
	"time"
)

var saveNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// SavedGame is a game stored under a named slot
type SavedGame struct {
	Name    string
	State   *GameState
	SavedAt time.Time
}

// ValidateSaveName checks that a slot name is safe to use as a key or file name
func ValidateSaveName(name string) error {
	if !saveNamePattern.MatchString(name) {
		return ErrInvalidSaveName
	}
	return nil
}
