package service

import (
	"crypto/rand"
	"encoding/hex"
)

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func newID() string { return randomHex(16) }

func newFileToken() string { return randomHex(8) }
