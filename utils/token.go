package utils

import (
	"math/rand"
)

const tokenCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomToken builds a short reset code the user types back in.
// Ambiguous characters (0/O, 1/I) are left out of the charset.
func GenerateRandomToken(length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = tokenCharset[rand.Intn(len(tokenCharset))]
	}
	return string(code)
}
