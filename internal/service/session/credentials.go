package session

import (
	"crypto/rand"
	"encoding/hex"
)

// Credentials is the bearer pair identifying one anonymous cart.
type Credentials struct {
	SessionID string `json:"session_id"`
	Pwd       string `json:"pwd"`
}

// newToken returns 32 hex characters from 16 random bytes. Possession of the
// full (session, pwd) pair is the only access control in the system.
func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
