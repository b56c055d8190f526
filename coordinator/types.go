package coordinator

import (
	"fmt"

	"github.com/TEENet-io/atomicswap-core/escrow"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// StatusTag is the closed set of coordination states a foreign escrow id
// can carry (spec.md §4.4).
type StatusTag string

const (
	StatusSecretCoordinated       StatusTag = "SECRET_COORDINATED"
	StatusSecretAvailableCrossCh  StatusTag = "SECRET_AVAILABLE_CROSS_CHAIN"
	StatusMappingRegistered       StatusTag = "MAPPING_REGISTERED"
	StatusLocalWithdrawalComplete StatusTag = "LOCAL_WITHDRAWAL_COMPLETE"
	StatusCancelled               StatusTag = "CANCELLED"
	StatusEmergencyReset          StatusTag = "EMERGENCY_RESET"
	StatusBidirectionalCompleted  StatusTag = "BIDIRECTIONAL_COMPLETED"
	StatusForeignEscrowInitiated  StatusTag = "FOREIGN_ESCROW_INITIATED"
)

// CoordinatorEntry is one row of the relayed-secret registry, keyed by
// foreign escrow id.
type CoordinatorEntry struct {
	Secret          ethcommon.Hash
	CoordinatedAt   uint64
	CoordinatorAddr escrow.Address
	Status          StatusTag
	Consumed        bool
}

// EthereumEscrowData is the reverse-direction (E->S) mirror row recorded
// by InitiateLocalToForeignSwap.
type EthereumEscrowData struct {
	OrderHash       ethcommon.Hash
	SecretHash      ethcommon.Hash
	Maker           escrow.Address
	Taker           escrow.Address
	Token           escrow.Address
	Amount          uint64
	SafetyDeposit   uint64
	ForeignEscrowId ethcommon.Hash
	SecretPreimage  []byte
	Active          bool
}

// SecretCoordinated is emitted by CoordinateSecretFromForeign.
type SecretCoordinated struct {
	ForeignEscrowId ethcommon.Hash
	LocalOrderHash  ethcommon.Hash
	Secret          ethcommon.Hash
	Coordinator     escrow.Address
	Timestamp       uint64
}

func (ev *SecretCoordinated) String() string { return fmt.Sprintf("%+v", *ev) }

// CrossChainSwapCompleted is emitted by WithdrawWithCoordinatedSecret.
type CrossChainSwapCompleted struct {
	OrderHash ethcommon.Hash
	SrcChain  string
	DstChain  string
	SrcAmount uint64
	DstAmount uint64
}

func (ev *CrossChainSwapCompleted) String() string { return fmt.Sprintf("%+v", *ev) }
