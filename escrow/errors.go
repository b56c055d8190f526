package escrow

import (
	"errors"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Sentinel error kinds, compared with errors.Is. Each is fatal to its
// call and non-retryable - see spec.md §7.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEscrowCompleted    = errors.New("escrow completed")
	ErrInvalidSecret      = errors.New("invalid secret")
	ErrTimeLockNotExpired = errors.New("time lock not expired")
	ErrNotFunded          = errors.New("escrow not funded")
	ErrAlreadyFunded      = errors.New("escrow already funded")
)

// EscrowError builds context-carrying errors that wrap one of the
// sentinels above, so callers can both errors.Is() against the kind and
// log/print the offending escrow id.
type EscrowError struct{}

func (e *EscrowError) Unauthorized(escrowId ethcommon.Hash, caller Address) error {
	return fmt.Errorf("%w: escrow=%s caller=%s", ErrUnauthorized, escrowId, caller.Hex())
}

func (e *EscrowError) EscrowCompleted(escrowId ethcommon.Hash, state State) error {
	return fmt.Errorf("%w: escrow=%s state=%s", ErrEscrowCompleted, escrowId, state)
}

func (e *EscrowError) InvalidSecret(escrowId ethcommon.Hash) error {
	return fmt.Errorf("%w: escrow=%s", ErrInvalidSecret, escrowId)
}

func (e *EscrowError) TimeLockNotExpired(escrowId ethcommon.Hash, phase fmt.Stringer) error {
	return fmt.Errorf("%w: escrow=%s phase=%s", ErrTimeLockNotExpired, escrowId, phase)
}

func (e *EscrowError) NotFunded(escrowId ethcommon.Hash) error {
	return fmt.Errorf("%w: escrow=%s", ErrNotFunded, escrowId)
}

func (e *EscrowError) AlreadyFunded(escrowId ethcommon.Hash) error {
	return fmt.Errorf("%w: escrow=%s", ErrAlreadyFunded, escrowId)
}

var escrowErrors EscrowError
