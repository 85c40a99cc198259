package common

import (
	"github.com/google/uuid"
)

// NewID generates a unique identifier with the given prefix, for entities
// without a deterministic natural key (e.g. snapshot rows).
// Format: <prefix>_<uuid>
func NewID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}
