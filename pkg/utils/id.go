package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewRequestID generates a request correlation id
func NewRequestID() string {
	return uuid.New().String()
}

// NewEntryID generates an id for a manually added case record. Seeded rows
// keep their source row id; manual entries use a millisecond timestamp,
// which stays unique at human data-entry rates.
func NewEntryID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
