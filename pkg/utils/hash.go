package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString returns the hex SHA-256 of the lowercased input, so values
// that only differ in case log under the same key.
func HashString(input string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(input)))
	return hex.EncodeToString(sum[:])
}
