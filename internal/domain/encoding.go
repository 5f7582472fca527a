package domain

import "encoding/base64"

// EncodeUsername reversibly transforms a username for storage so it is not
// kept in cleartext. This is encoding, not encryption: the original is always
// recoverable for display.
func EncodeUsername(username string) string {
	return base64.StdEncoding.EncodeToString([]byte(username))
}

// DecodeUsername recovers the original username from its stored form.
func DecodeUsername(encoded string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
