package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the hex-encoded SHA-256 digest of parts joined with a
// NUL separator. It is used to build cache keys from values that must not
// be stored verbatim, such as publishable API key tokens.
func Fingerprint(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
