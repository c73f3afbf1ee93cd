package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode returns a short booking reference like "BK-3F9A2C41".
// Codes are informational: the ledger is still keyed by guest name, and a
// modification gets a fresh code.
func NewReferenceCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BK-" + id[:8]
}
