// Package shared holds small helpers used by both the client and the server:
// random hex strings and wiping of sensitive byte slices.
package shared

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns a random hex string built from size random
// bytes. The resulting string is twice as long as size, since every byte
// encodes to two hex characters. It is used for ephemeral secrets, e.g.
// a JWT signing key when none is configured.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray zeroes the slice in place so passwords do not linger in
// memory after use. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
