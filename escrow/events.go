package escrow

import (
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// EscrowCreated is emitted once per escrow, at creation.
type EscrowCreated struct {
	EscrowId         ethcommon.Hash
	Maker            Address
	Taker            Address
	Amount           uint64
	HashLock         ethcommon.Hash
	ForeignOrderHash ethcommon.Hash
}

func (ev *EscrowCreated) String() string { return fmt.Sprintf("%+v", *ev) }

// Deposited is emitted once the taker funds the escrow's two balances.
type Deposited struct {
	EscrowId       ethcommon.Hash
	Depositor      Address
	Amount         uint64
	SafetyDeposit  uint64
}

func (ev *Deposited) String() string { return fmt.Sprintf("%+v", *ev) }

// WithdrawnEvent is emitted on a successful withdraw. Secret carries the raw
// preimage bytes - this is the cross-chain side-channel relayers depend
// on, and must never be hashed or otherwise post-processed before being
// placed here.
type WithdrawnEvent struct {
	EscrowId ethcommon.Hash
	Secret   []byte
	To       Address
	Amount   uint64
}

func (ev *WithdrawnEvent) String() string { return fmt.Sprintf("%+v", *ev) }

// CancelledEvent is emitted on a successful cancel.
type CancelledEvent struct {
	EscrowId ethcommon.Hash
	To       Address
	Amount   uint64
}

func (ev *CancelledEvent) String() string { return fmt.Sprintf("%+v", *ev) }
