// Package util provides utility functions for the storefront system.
package util

import (
	"crypto/rand"
	"encoding/hex"
)

// NewOrderRef returns a short random reference for correlating order log
// lines, formatted as "ord-" followed by 12 hex characters.
func NewOrderRef() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "ord-000000000000"
	}
	return "ord-" + hex.EncodeToString(b)
}
