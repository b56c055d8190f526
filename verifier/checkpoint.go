// Package verifier implements the Chain-E side view of Chain-S state:
// BFT stake-weighted checkpoint verification, Bitcoin-style sorted-pair
// Merkle inclusion of a transaction within a verified checkpoint, and
// the deterministic one-way address mappings between the two chains'
// address schemes.
package verifier

import (
	"crypto/ed25519"
	"sync"

	"github.com/TEENet-io/atomicswap-core/coordinatormetrics"
	"github.com/ethereum/go-ethereum/crypto"
)

// stakeThresholdNum/Den encode the two-thirds acceptance threshold in
// basis points: signed_stake * 10_000 >= total_stake * 6_667.
const (
	stakeThresholdNum = 10_000
	stakeThresholdDen = 6_667
)

// ValidatorSignature is one validator's attestation to a checkpoint
// hash.
type ValidatorSignature struct {
	PublicKey ed25519.PublicKey
	Signature []byte
	Stake     uint64
}

// Verifier verifies Chain-S checkpoints and the transactions they
// commit to, memoizing both so repeated relay of the same checkpoint
// or tx proof is cheap.
type Verifier struct {
	mu                  sync.Mutex
	verifiedCheckpoints map[[32]byte]bool
	verifiedTxs         map[[32]byte]bool
	metrics             *coordinatormetrics.Registry
}

// NewVerifier builds a Verifier. metrics may be nil, in which case
// checkpoint verification outcomes are simply not reported. Transaction
// verification outcomes are never reported.
func NewVerifier(metrics *coordinatormetrics.Registry) *Verifier {
	return &Verifier{
		verifiedCheckpoints: make(map[[32]byte]bool),
		verifiedTxs:         make(map[[32]byte]bool),
		metrics:             metrics,
	}
}

// VerifyCheckpoint accepts a checkpoint iff the Ed25519-verified stake
// among the presented signatures reaches two thirds of the presented
// total stake. A checkpoint already memoized as verified short-circuits
// to true without re-checking signatures.
func (v *Verifier) VerifyCheckpoint(checkpointHash [32]byte, sigs []ValidatorSignature) bool {
	v.mu.Lock()
	if v.verifiedCheckpoints[checkpointHash] {
		v.mu.Unlock()
		return true
	}
	v.mu.Unlock()

	var totalStake, signedStake uint64
	for _, sig := range sigs {
		totalStake += sig.Stake
		if ed25519.Verify(sig.PublicKey, checkpointHash[:], sig.Signature) {
			signedStake += sig.Stake
		}
	}

	accepted := totalStake > 0 && signedStake*stakeThresholdNum >= totalStake*stakeThresholdDen

	v.mu.Lock()
	if accepted {
		v.verifiedCheckpoints[checkpointHash] = true
	} else {
		// a re-evaluation after a bit flip must observe a fail state,
		// not a stale cached accept.
		delete(v.verifiedCheckpoints, checkpointHash)
	}
	v.mu.Unlock()

	if v.metrics != nil {
		if accepted {
			v.metrics.IncCheckpointVerified("accepted")
		} else {
			v.metrics.IncCheckpointVerified("rejected")
		}
	}

	return accepted
}

// VerifyTransaction requires the checkpoint to already be verified,
// then walks the sorted-pair Merkle path from txHash up to
// checkpointHash: at each step the two 32-byte elements are
// concatenated in sorted (min‖max) order before hashing with
// Keccak-256. This is deliberately a different scheme from the
// index-bit proof used for order partial fills; the two must never be
// unified.
func (v *Verifier) VerifyTransaction(txHash, checkpointHash [32]byte, path [][32]byte, sigs []ValidatorSignature) bool {
	if !v.VerifyCheckpoint(checkpointHash, sigs) {
		return false
	}

	v.mu.Lock()
	if v.verifiedTxs[txHash] {
		v.mu.Unlock()
		return true
	}
	v.mu.Unlock()

	h := txHash
	for _, sib := range path {
		h = sortedPairHash(h, sib)
	}

	accepted := h == checkpointHash

	v.mu.Lock()
	if accepted {
		v.verifiedTxs[txHash] = true
	}
	v.mu.Unlock()

	return accepted
}

func sortedPairHash(a, b [32]byte) [32]byte {
	if lessBytes(b, a) {
		a, b = b, a
	}
	return [32]byte(crypto.Keccak256Hash(a[:], b[:]))
}

func lessBytes(a, b [32]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
