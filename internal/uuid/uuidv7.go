package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7 string. UUIDv7 values sort by creation time,
// which keeps primary keys roughly in insertion order.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the clock or entropy source fails.
		return googleuuid.New().String()
	}
	return id.String()
}
