// Package seedphrase converts 16-byte seeds into 15-word human-transcribable
// phrases and back. The first 13 words carry the seed's 128 bits and the last
// 2 carry a SHA-256 derived checksum that lets a human catch transcription
// errors.
package seedphrase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SeedSize is the length of a seed in bytes (128 bits).
const SeedSize = 16

// Seed is 16 bytes of opaque entropy identifying a secret.
type Seed [SeedSize]byte

// RandomSeed generates a new seed from the system entropy source.
func RandomSeed() (Seed, error) {
	var seed Seed
	if _, err := rand.Read(seed[:]); err != nil {
		return Seed{}, fmt.Errorf("read entropy: %w", err)
	}
	return seed, nil
}

// SeedFromBytes copies a byte slice into a Seed.
func SeedFromBytes(b []byte) (Seed, error) {
	if len(b) != SeedSize {
		return Seed{}, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(b))
	}
	var seed Seed
	copy(seed[:], b)
	return seed, nil
}

// SeedFromHex parses a hex-encoded seed.
func SeedFromHex(s string) (Seed, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Seed{}, fmt.Errorf("decode seed hex: %w", err)
	}
	return SeedFromBytes(b)
}

// Hex returns the seed as a lowercase hex string.
func (s Seed) Hex() string {
	return hex.EncodeToString(s[:])
}
