package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SessionTokenBytes is the number of random bytes in a session or CSRF
// state token. 32 bytes gives 256 bits of entropy.
const SessionTokenBytes = 32

// GenerateToken returns a URL-safe random token built from n bytes read
// from the operating system's CSPRNG. The result uses the unpadded
// base64url alphabet so it can travel in query strings and headers
// without escaping.
//
// Returns an error only if the system entropy source fails.
func GenerateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
