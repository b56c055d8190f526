package verifier

import "errors"

var (
	ErrCheckpointNotVerified = errors.New("checkpoint not verified")
	ErrInsufficientStake     = errors.New("insufficient signed stake")
	ErrInvalidMerklePath     = errors.New("invalid merkle path")
)
