package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// SingleUseTokenBytes is the entropy of verification and reset tokens (64 hex chars).
const SingleUseTokenBytes = 32

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewSingleUseToken returns a fresh verification or password-reset token.
func NewSingleUseToken() (string, error) {
	return GenerateSecureRandomString(SingleUseTokenBytes)
}

// NewUploadFilename names a stored upload "<unixmillis>-<random><ext>", keeping
// the lowercased extension of the client's file name.
func NewUploadFilename(now time.Time, originalName string) (string, error) {
	suffix, err := GenerateSecureRandomString(6)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, ext), nil
}
