// Package ident generates the short opaque identifiers used as primary keys
// for users, inventory items, categories and history entries.
package ident

import (
	"crypto/rand"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength = 9
)

// New returns a 9-character lowercase alphanumeric identifier. Uniqueness is
// probabilistic: 36^9 values is plenty for the dataset sizes this system
// tracks, and the store's primary-key constraint is the backstop.
func New() string {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// nothing sensible can be done at this layer.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
