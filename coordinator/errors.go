package coordinator

import (
	"errors"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

var (
	ErrSecretAlreadyCoordinated = errors.New("secret already coordinated")
	ErrSecretAlreadyUsed        = errors.New("secret already used")
	ErrUnknownForeignEscrow     = errors.New("unknown foreign escrow")
	ErrMappingConflict          = errors.New("mapping conflict")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrResetTooEarly            = errors.New("emergency reset attempted before coordination timeout")
	ErrInvalidSecret            = errors.New("invalid secret")
)

type CoordinatorError struct{}

func (e *CoordinatorError) SecretAlreadyCoordinated(secret ethcommon.Hash) error {
	return fmt.Errorf("%w: secret=%s", ErrSecretAlreadyCoordinated, secret.Hex())
}

func (e *CoordinatorError) SecretAlreadyUsed(secret ethcommon.Hash) error {
	return fmt.Errorf("%w: secret=%s", ErrSecretAlreadyUsed, secret.Hex())
}

func (e *CoordinatorError) UnknownForeignEscrow(foreignEscrowId ethcommon.Hash) error {
	return fmt.Errorf("%w: foreign_escrow_id=%s", ErrUnknownForeignEscrow, foreignEscrowId.Hex())
}

func (e *CoordinatorError) MappingConflict(foreignEscrowId, localOrderHash ethcommon.Hash) error {
	return fmt.Errorf("%w: foreign_escrow_id=%s local_order_hash=%s", ErrMappingConflict, foreignEscrowId.Hex(), localOrderHash.Hex())
}

func (e *CoordinatorError) ResetTooEarly(foreignEscrowId ethcommon.Hash) error {
	return fmt.Errorf("%w: foreign_escrow_id=%s", ErrResetTooEarly, foreignEscrowId.Hex())
}

var coordinatorErrors CoordinatorError
