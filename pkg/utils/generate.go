package utils

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

func GenerateVerificationToken() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== AVATAR ====================

// GravatarURL builds the default avatar URL for a registered email.
// Gravatar addresses images by the md5 hex digest of the lowercased email.
func GravatarURL(email string) string {
	digest := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=retro", digest)
}
