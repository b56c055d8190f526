package factory

import (
	"fmt"

	"github.com/TEENet-io/atomicswap-core/escrow"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// SrcEscrowCreated is emitted by the Factory whenever a source-side
// escrow is created. Cross-chain observers watch for this event.
type SrcEscrowCreated struct {
	FactoryId  ethcommon.Hash
	EscrowId   ethcommon.Hash
	Immutables escrow.Immutables
	Creator    escrow.Address
}

func (ev *SrcEscrowCreated) String() string { return fmt.Sprintf("%+v", *ev) }

// DstEscrowCreated is emitted by the Factory whenever a destination-side
// escrow is created. It additionally carries the source escrow's
// cancellation timestamp so the destination side's counter-party can
// bound how long it is safe to wait before the src escrow becomes
// cancellable.
type DstEscrowCreated struct {
	FactoryId               ethcommon.Hash
	EscrowId                ethcommon.Hash
	Immutables              escrow.Immutables
	Creator                 escrow.Address
	SrcCancellationTimestamp uint64
}

func (ev *DstEscrowCreated) String() string { return fmt.Sprintf("%+v", *ev) }

// SrcEscrowDeployed is emitted by the Resolver whenever it deploys and
// funds a source-side escrow on behalf of its owner in one call.
type SrcEscrowDeployed struct {
	ResolverId       ethcommon.Hash
	EscrowId         ethcommon.Hash
	Immutables       escrow.Immutables
	Deployer         escrow.Address
	ForeignOrderHash ethcommon.Hash
}

func (ev *SrcEscrowDeployed) String() string { return fmt.Sprintf("%+v", *ev) }
