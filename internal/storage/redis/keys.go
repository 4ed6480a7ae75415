package redis

import (
	"fmt"
)

// Key prefix for all save data
const keyPrefix = "foxhound"

// Hash fields of a save slot
const (
	fieldState   = "state"
	fieldSavedAt = "saved_at"
)

// saveKey returns the Redis key for the HASH of a save slot
func saveKey(name string) string {
	return fmt.Sprintf("%s:save:%s", keyPrefix, name)
}

// savesIndexKey returns the Redis key for the SET of slot names
func savesIndexKey() string {
	return fmt.Sprintf("%s:idx:saves", keyPrefix)
}
