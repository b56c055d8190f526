package escrow

import (
	"github.com/TEENet-io/atomicswap-core/htlc"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Address is a ledger-native address. It is kept as raw bytes rather than
// a fixed-size array because the two ledgers this core bridges use
// different widths: 20 bytes on the EVM-family chain, 32 bytes on the
// object-model chain.
type Address []byte

func (a Address) Hex() string {
	return ethcommon.Bytes2Hex(a)
}

func (a Address) Equal(other Address) bool {
	if len(a) != len(other) {
		return false
	}
	for i := range a {
		if a[i] != other[i] {
			return false
		}
	}
	return true
}

// Immutables are the fixed parameters of one escrow, set at creation and
// never mutated afterwards.
type Immutables struct {
	OrderHash        ethcommon.Hash // identifies the parent order
	HashLock         ethcommon.Hash // Keccak-256(secret)
	Maker            Address
	Taker            Address
	TokenType        Address // ledger-native token identifier
	Amount           uint64  // principal
	SafetyDeposit    uint64  // paid in the native gas token
	TimeLocks        htlc.TimeLocks
	ForeignOrderHash ethcommon.Hash // the peer chain's order identifier
}

// State is the lifecycle state of one Escrow.
type State int

const (
	Created State = iota
	Funded
	Withdrawn
	Cancelled
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Funded:
		return "funded"
	case Withdrawn:
		return "withdrawn"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s State) IsTerminal() bool {
	return s == Withdrawn || s == Cancelled
}
