package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	key := GenerateKey("qr_codes", "AB12CD34", "qr.png")

	pattern := regexp.MustCompile(`^qr_codes/AB12CD34/\d{8}_\d{6}_[0-9a-f]{8}\.png$`)
	assert.Regexp(t, pattern, key)
}

func TestGenerateKeyUniqueSuffix(t *testing.T) {
	first := GenerateKey("images", "7", "holiday.jpg")
	second := GenerateKey("images", "7", "holiday.jpg")
	assert.NotEqual(t, first, second)
}

func TestGenerateKeyKeepsExtension(t *testing.T) {
	assert.Regexp(t, `\.webp$`, GenerateKey("images", "7", "shot.webp"))
	assert.Regexp(t, `_[0-9a-f]{8}$`, GenerateKey("images", "7", "noext"))
}
