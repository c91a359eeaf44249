package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// oauthStateBytes is the entropy of a Google sign-in state value.
const oauthStateBytes = 24

// NewOAuthState returns a random URL-safe value for the OAuth state parameter.
func NewOAuthState() (string, error) {
	b := make([]byte, oauthStateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
