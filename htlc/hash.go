// Package htlc implements the hash-time-lock primitives shared by both
// escrow sides: hashlock computation/verification and the seven-phase
// timelock schedule. Kept free of any balance or state-machine logic so
// that it can be unit tested against a logical clock.
package htlc

import (
	"bytes"

	"github.com/ethereum/go-ethereum/crypto"
)

// ComputeHashLock returns the Keccak-256 digest of the raw preimage bytes.
func ComputeHashLock(secret []byte) [32]byte {
	return crypto.Keccak256Hash(secret)
}

// VerifyHash reports whether secret hashes to lock under Keccak-256.
func VerifyHash(lock [32]byte, secret []byte) bool {
	digest := ComputeHashLock(secret)
	return bytes.Equal(digest[:], lock[:])
}
