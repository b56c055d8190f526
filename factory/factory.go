// Package factory implements the Factory/Resolver policy layer (spec
// component C3): the Factory owns creation of escrows and emits the
// deployment events the other chain observes; the Resolver additionally
// gates deposit/withdrawal-adjacent calls behind a single designated
// owner identity.
package factory

import (
	"github.com/TEENet-io/atomicswap-core/escrow"
	"github.com/TEENet-io/atomicswap-core/htlc"
	ethcommon "github.com/ethereum/go-ethereum/common"
	logger "github.com/sirupsen/logrus"
)

// Factory creates escrows and emits the mandatory deployment events.
// It holds no state of its own beyond its identifier - anyone may call
// Create*, same as the underlying escrow.Create primitive; authorisation
// lives one layer up, in the Resolver.
type Factory[T escrow.Token] struct {
	id ethcommon.Hash
}

func NewFactory[T escrow.Token](id ethcommon.Hash) *Factory[T] {
	return &Factory[T]{id: id}
}

func (f *Factory[T]) Id() ethcommon.Hash { return f.id }

// CreateSrcEscrow creates a source-side escrow and returns the
// SrcEscrowCreated event mandated by spec.md §4.3.
func (f *Factory[T]) CreateSrcEscrow(
	escrowId ethcommon.Hash, imm escrow.Immutables, now uint64, creator escrow.Address,
) (*escrow.Escrow[T], *SrcEscrowCreated, error) {
	e, _, err := escrow.Create[T](escrowId, imm, htlc.Src, now)
	if err != nil {
		return nil, nil, err
	}

	logger.WithFields(logger.Fields{
		"factory_id": f.id.Hex(),
		"escrow_id":  escrowId.Hex(),
	}).Info("src escrow created")

	return e, &SrcEscrowCreated{
		FactoryId:  f.id,
		EscrowId:   escrowId,
		Immutables: imm,
		Creator:    creator,
	}, nil
}

// CreateDstEscrow creates a destination-side escrow and returns the
// DstEscrowCreated event, carrying the source escrow's cancellation
// timestamp for the counter-party's safety bound.
func (f *Factory[T]) CreateDstEscrow(
	escrowId ethcommon.Hash, imm escrow.Immutables, now uint64, creator escrow.Address, srcCancellationTimestamp uint64,
) (*escrow.Escrow[T], *DstEscrowCreated, error) {
	e, _, err := escrow.Create[T](escrowId, imm, htlc.Dst, now)
	if err != nil {
		return nil, nil, err
	}

	logger.WithFields(logger.Fields{
		"factory_id": f.id.Hex(),
		"escrow_id":  escrowId.Hex(),
	}).Info("dst escrow created")

	return e, &DstEscrowCreated{
		FactoryId:                f.id,
		EscrowId:                 escrowId,
		Immutables:               imm,
		Creator:                  creator,
		SrcCancellationTimestamp: srcCancellationTimestamp,
	}, nil
}
