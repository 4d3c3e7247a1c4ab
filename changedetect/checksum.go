package changedetect

import (
	"crypto/md5" //nolint:gosec // content fingerprint, not a security hash
	"encoding/hex"
)

// Checksum computes the MD5 hex digest of content.
// Returns a lowercase 32-character hex string.
func Checksum(content string) string {
	sum := md5.Sum([]byte(content)) //nolint:gosec // see import note
	return hex.EncodeToString(sum[:])
}
