package identity

import (
	"crypto/rand"
	"encoding/hex"
)

// newTokenValue returns a 48-char hex credential from 24 random bytes.
func newTokenValue() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
