package order

import (
	"fmt"

	"github.com/TEENet-io/atomicswap-core/escrow"
	"github.com/ethereum/go-ethereum/crypto"
)

const basisPointsScale = 10_000

// PartialFillExecuted is emitted by ExecutePartialFill.
type PartialFillExecuted struct {
	OrderHash  [32]byte
	Index      uint64
	FillBp     uint64
	FillAmount uint64
	Executor   escrow.Address
}

func (ev *PartialFillExecuted) String() string { return fmt.Sprintf("%+v", *ev) }

// ValidatePartialFill requires partial fills to be enabled on the
// order, the fill to be within [0, 10_000] bp, the secret index to be
// in bounds, and the supplied secret/proof/index to verify against the
// order's merkle root via the index-bit scheme.
func ValidatePartialFill(o *PartialFillOrder, secret []byte, proof [][32]byte, idx, fillBp uint64) error {
	if !o.AllowPartialFills {
		return orderErrors.PartialFillsNotAllowed(o.Hash())
	}
	if fillBp > basisPointsScale {
		return orderErrors.InvalidFillPercentage(fillBp)
	}
	if idx >= o.TotalSecrets {
		return orderErrors.SecretIndexOutOfBounds(idx, o.TotalSecrets)
	}

	leaf := [32]byte(crypto.Keccak256Hash(secret))
	if !VerifyMerkleProof(leaf, proof, o.MerkleRoot, idx) {
		return orderErrors.InvalidMerkleProof(idx)
	}
	return nil
}

// ExecutePartialFill validates the fill, then computes fill_amount =
// making_amount * fill_bp / 10_000 and accumulates fill_percentage on
// the order. No guard currently rejects the accumulated percentage
// exceeding 10_000 - this mirrors the spec's documented open question
// rather than a bug: overfill is possible and is the caller's
// responsibility to avoid by checking FillPercentage beforehand.
func ExecutePartialFill(o *PartialFillOrder, secret []byte, proof [][32]byte, idx, fillBp uint64, executor escrow.Address) (*PartialFillExecuted, error) {
	if err := ValidatePartialFill(o, secret, proof, idx, fillBp); err != nil {
		return nil, err
	}

	fillAmount := o.MakingAmount * fillBp / basisPointsScale
	o.FillPercentage += fillBp

	return &PartialFillExecuted{
		OrderHash:  o.Hash(),
		Index:      idx,
		FillBp:     fillBp,
		FillAmount: fillAmount,
		Executor:   executor,
	}, nil
}
