package verifier

import (
	"crypto/ed25519"
	"fmt"

	aptoscrypto "github.com/aptos-labs/aptos-go-sdk/crypto"
)

// ValidatorSigner wraps a Chain-S validator's Ed25519 identity the same
// way aptosman.NewAccount wraps a raw key seed for an Aptos account:
// the stake-weighted checkpoint scheme is an Ed25519/BFT scheme native
// to the object-model chain, so its signer construction is grounded on
// the pack's own Aptos SDK rather than on a bespoke signing type.
type ValidatorSigner struct {
	key       aptoscrypto.Ed25519PrivateKey
	publicKey ed25519.PublicKey
}

// NewValidatorSigner builds a ValidatorSigner from a 32-byte Ed25519
// seed, mirroring aptosman.NewAccount's use of
// crypto.Ed25519PrivateKey.FromBytes.
func NewValidatorSigner(seed []byte) (*ValidatorSigner, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("validator signer: seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	key := aptoscrypto.Ed25519PrivateKey{}
	if err := key.FromBytes(seed); err != nil {
		return nil, fmt.Errorf("validator signer: %w", err)
	}

	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	return &ValidatorSigner{key: key, publicKey: pub}, nil
}

// PublicKey returns the validator's Ed25519 public key, suitable for
// ValidatorSignature.PublicKey.
func (s *ValidatorSigner) PublicKey() ed25519.PublicKey { return s.publicKey }

// SignCheckpoint signs a checkpoint hash with the underlying Aptos
// Ed25519 key and returns the raw signature bytes for a
// ValidatorSignature.
func (s *ValidatorSigner) SignCheckpoint(checkpointHash [32]byte) ([]byte, error) {
	sig, err := s.key.SignMessage(checkpointHash[:])
	if err != nil {
		return nil, fmt.Errorf("validator signer: sign: %w", err)
	}
	return sig.Bytes(), nil
}
