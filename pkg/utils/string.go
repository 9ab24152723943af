package utils

import "math/rand"

// EventCodeLength is the length of guest-facing event codes.
const EventCodeLength = 8

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateEventCode returns a random uppercase alphanumeric code. The
// top-level rand functions are safe for concurrent use, so parallel requests
// can draw codes without coordination. Uniqueness is the caller's
// responsibility.
func GenerateEventCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}
