package utils

import (
	"crypto/rand"
	"encoding/base64"
)

const sessionTokenBytes = 32

// GenerateSessionToken returns an unguessable, URL-safe cookie value.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
