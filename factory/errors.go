package factory

import (
	"errors"
	"fmt"

	"github.com/TEENet-io/atomicswap-core/escrow"
)

var ErrUnauthorized = errors.New("unauthorized")

type FactoryError struct{}

func (e *FactoryError) Unauthorized(caller escrow.Address) error {
	return fmt.Errorf("%w: caller=%s", ErrUnauthorized, caller.Hex())
}

var factoryErrors FactoryError
