package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const keyPrefix = "KH"

// GenerateKey produces a human-typable license key of the form
// KH-XXXXXXXX-XXXXXXXX, the two groups being the first 16 uppercase hex
// characters of a SHA-256 digest over 32 random bytes. Uniqueness is not
// guaranteed here; the registry's unique constraint and retry loop own that.
func GenerateKey() string {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	sum := sha256.Sum256(seed)
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return fmt.Sprintf("%s-%s-%s", keyPrefix, digest[:8], digest[8:16])
}
