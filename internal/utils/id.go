package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateID builds a prefixed public identifier such as txn_9f3a1c2b4d5e.
// The suffix is the first 12 hex characters of a fresh UUID.
func GenerateID(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s", prefix, raw[:12])
}
