package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var keyPattern = regexp.MustCompile(`^KH-[0-9A-F]{8}-[0-9A-F]{8}$`)

func TestGenerateKey_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		key := GenerateKey()
		assert.Regexp(t, keyPattern, key)
		assert.Len(t, key, 20)
	}
}

func TestGenerateKey_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := GenerateKey()
		assert.False(t, seen[key], "generated duplicate key %s", key)
		seen[key] = true
	}
}
