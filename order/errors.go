package order

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMerkleProof    = errors.New("invalid merkle proof")
	ErrPartialFillsNotAllowed = errors.New("partial fills not allowed")
	ErrInvalidFillPercentage = errors.New("invalid fill percentage")
	ErrSecretIndexOutOfBounds = errors.New("secret index out of bounds")
	ErrInvalidOrderHash      = errors.New("invalid order hash")
)

type OrderError struct{}

func (e *OrderError) InvalidMerkleProof(idx uint64) error {
	return fmt.Errorf("%w: idx=%d", ErrInvalidMerkleProof, idx)
}

func (e *OrderError) PartialFillsNotAllowed(orderHash [32]byte) error {
	return fmt.Errorf("%w: order=%x", ErrPartialFillsNotAllowed, orderHash)
}

func (e *OrderError) InvalidFillPercentage(fillBp uint64) error {
	return fmt.Errorf("%w: fill_bp=%d", ErrInvalidFillPercentage, fillBp)
}

func (e *OrderError) SecretIndexOutOfBounds(idx, total uint64) error {
	return fmt.Errorf("%w: idx=%d total=%d", ErrSecretIndexOutOfBounds, idx, total)
}

var orderErrors OrderError
