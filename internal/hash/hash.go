// Package hash derives stable 32-bit identities from lead strings. Every
// template-variant choice in the pipeline is keyed off these values, so the
// digest must never change within a deployment: swapping it silently
// reshuffles every lead's selected variants.
package hash

import (
	"crypto/md5" //nolint:gosec // non-cryptographic identity hash
	"encoding/hex"
	"strconv"
)

// Identity hashes a string to a reproducible unsigned 32-bit integer: the
// first 8 hex characters of the MD5 digest, parsed base-16. Deterministic
// across runs and processes; the empty string is valid input.
func Identity(s string) uint32 {
	sum := md5.Sum([]byte(s))
	n, err := strconv.ParseUint(hex.EncodeToString(sum[:4]), 16, 32)
	if err != nil {
		// Unreachable: 8 hex chars always parse.
		return 0
	}
	return uint32(n)
}

// Pick maps a seed string to an index in [0, n). n must be positive.
func Pick(seed string, n int) int {
	return int(Identity(seed) % uint32(n))
}

// Bit returns bit i of the seed's identity hash.
func Bit(seed string, i uint) bool {
	return Identity(seed)>>i&1 == 1
}
