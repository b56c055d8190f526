// Package order implements the canonical order model shared by both
// chains' escrow factories: order hashing and the Merkle-tree-of-
// secrets partial-fill scheme. The Merkle scheme here is index-bit
// (order-by-index at each proof step) and is intentionally a distinct
// implementation from the sorted-pair scheme in package verifier -
// they verify proofs produced by different upstream systems and must
// never be unified.
package order

import (
	"math/big"

	atomiccommon "github.com/TEENet-io/atomicswap-core/common"
	"github.com/TEENet-io/atomicswap-core/escrow"
	"github.com/ethereum/go-ethereum/crypto"
)

// Order is the canonical limit-order shape common to both chains.
type Order struct {
	Salt         [32]byte
	Maker        escrow.Address
	Receiver     escrow.Address
	MakerAsset   escrow.Address
	TakerAsset   escrow.Address
	MakingAmount uint64
	TakingAmount uint64
	MakerTraits  [32]byte
}

// Hash returns the canonical order hash: Keccak-256 of salt followed by
// the field-wise encoding of maker, receiver, making_amount,
// taking_amount in that fixed order. Field-wise packing reuses the
// teacher's EncodePacked rather than a bespoke encoder.
func (o *Order) Hash() [32]byte {
	packed := atomiccommon.EncodePacked(
		o.Salt,
		[]byte(o.Maker),
		[]byte(o.Receiver),
		new(big.Int).SetUint64(o.MakingAmount),
		new(big.Int).SetUint64(o.TakingAmount),
	)
	return [32]byte(crypto.Keccak256Hash(packed))
}

// PartialFillOrder extends Order with the Merkle-tree-of-secrets
// partial-fill machinery. FillPercentage accumulates in basis points
// across successful ExecutePartialFill calls.
type PartialFillOrder struct {
	Order
	MerkleRoot        [32]byte
	FillPercentage    uint64
	SecretIndex       uint64
	AllowPartialFills bool
	TotalSecrets      uint64
}

// Hash incorporates MerkleRoot and TotalSecrets on top of the base
// order encoding, per spec.
func (o *PartialFillOrder) Hash() [32]byte {
	packed := atomiccommon.EncodePacked(
		o.Salt,
		[]byte(o.Maker),
		[]byte(o.Receiver),
		new(big.Int).SetUint64(o.MakingAmount),
		new(big.Int).SetUint64(o.TakingAmount),
		o.MerkleRoot,
		new(big.Int).SetUint64(o.TotalSecrets),
	)
	return [32]byte(crypto.Keccak256Hash(packed))
}
