package factory

import (
	"github.com/TEENet-io/atomicswap-core/escrow"
	ethcommon "github.com/ethereum/go-ethereum/common"
	logger "github.com/sirupsen/logrus"
)

// Resolver records a designated owner identity that is the sole party
// allowed to deploy-and-fund escrows or deposit into them on its own
// behalf. Anyone holding the secret may still withdraw once the
// timelock opens - the Resolver never gates Escrow.Withdraw.
type Resolver[T escrow.Token] struct {
	id      ethcommon.Hash
	owner   escrow.Address
	factory *Factory[T]
}

func NewResolver[T escrow.Token](id ethcommon.Hash, owner escrow.Address, f *Factory[T]) *Resolver[T] {
	return &Resolver[T]{id: id, owner: owner, factory: f}
}

func (r *Resolver[T]) Id() ethcommon.Hash      { return r.id }
func (r *Resolver[T]) Owner() escrow.Address   { return r.owner }

// DeploySrcWithDeposit creates a source-side escrow and immediately funds
// it in one call, on behalf of the resolver's owner. Only the owner may
// call this.
func (r *Resolver[T]) DeploySrcWithDeposit(
	caller escrow.Address,
	escrowId ethcommon.Hash,
	imm escrow.Immutables,
	now uint64,
	principal escrow.Balance[T],
	safety escrow.Balance[escrow.Native],
) (*escrow.Escrow[T], *SrcEscrowDeployed, error) {
	if !caller.Equal(r.owner) {
		return nil, nil, factoryErrors.Unauthorized(caller)
	}

	e, _, err := r.factory.CreateSrcEscrow(escrowId, imm, now, caller)
	if err != nil {
		return nil, nil, err
	}

	if _, err := e.Deposit(imm.Taker, principal, safety); err != nil {
		return nil, nil, err
	}

	logger.WithFields(logger.Fields{
		"resolver_id": r.id.Hex(),
		"escrow_id":   escrowId.Hex(),
	}).Info("src escrow deployed with deposit")

	return e, &SrcEscrowDeployed{
		ResolverId:       r.id,
		EscrowId:         escrowId,
		Immutables:       imm,
		Deployer:         caller,
		ForeignOrderHash: imm.ForeignOrderHash,
	}, nil
}

// DeployDstWithDeposit mirrors DeploySrcWithDeposit for the destination
// side.
func (r *Resolver[T]) DeployDstWithDeposit(
	caller escrow.Address,
	escrowId ethcommon.Hash,
	imm escrow.Immutables,
	now uint64,
	srcCancellationTimestamp uint64,
	principal escrow.Balance[T],
	safety escrow.Balance[escrow.Native],
) (*escrow.Escrow[T], *DstEscrowCreated, error) {
	if !caller.Equal(r.owner) {
		return nil, nil, factoryErrors.Unauthorized(caller)
	}

	e, ev, err := r.factory.CreateDstEscrow(escrowId, imm, now, caller, srcCancellationTimestamp)
	if err != nil {
		return nil, nil, err
	}

	if _, err := e.Deposit(imm.Taker, principal, safety); err != nil {
		return nil, nil, err
	}

	return e, ev, nil
}

// DepositToEscrow lets the owner fund an already-created escrow.
func (r *Resolver[T]) DepositToEscrow(
	caller escrow.Address, e *escrow.Escrow[T], principal escrow.Balance[T], safety escrow.Balance[escrow.Native],
) (*escrow.Deposited, error) {
	if !caller.Equal(r.owner) {
		return nil, factoryErrors.Unauthorized(caller)
	}

	return e.Deposit(e.Immutables().Taker, principal, safety)
}

// TransferOwnership is the only mutating operation on the Resolver
// itself; it is gated by the current owner.
func (r *Resolver[T]) TransferOwnership(caller, newOwner escrow.Address) error {
	if !caller.Equal(r.owner) {
		return factoryErrors.Unauthorized(caller)
	}

	logger.WithFields(logger.Fields{
		"resolver_id": r.id.Hex(),
		"old_owner":   r.owner.Hex(),
		"new_owner":   newOwner.Hex(),
	}).Info("resolver ownership transferred")

	r.owner = newOwner
	return nil
}
