package coordinator

import (
	"github.com/TEENet-io/atomicswap-core/escrow"
	"github.com/TEENet-io/atomicswap-core/htlc"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// InitiateLocalToForeignSwap records the Ethereum-side escrow data for
// an E->S swap before the matching foreign escrow exists. This is the
// mirror of CoordinateSecretFromForeign: here the secret hash is known
// up front (the maker committed to it locally) and the foreign escrow
// id arrives later via LinkLocalOrderToForeignEscrow.
func (c *Coordinator) InitiateLocalToForeignSwap(orderHash, secretHash ethcommon.Hash, maker, taker, token escrow.Address, amount, safetyDeposit uint64) error {
	return c.store.insertEthereumEscrowData(EthereumEscrowData{
		OrderHash:     orderHash,
		SecretHash:    secretHash,
		Maker:         maker,
		Taker:         taker,
		Token:         token,
		Amount:        amount,
		SafetyDeposit: safetyDeposit,
		Active:        true,
	})
}

// LinkLocalOrderToForeignEscrow attaches the foreign escrow id created
// on Chain-S to a previously-initiated local order, and registers the
// forward mapping so both directions resolve through the same
// bijection.
func (c *Coordinator) LinkLocalOrderToForeignEscrow(orderHash, foreignEscrowId ethcommon.Hash) error {
	row, ok, err := c.store.getEthereumEscrowData(orderHash)
	if err != nil {
		return err
	}
	if !ok {
		return coordinatorErrors.UnknownForeignEscrow(foreignEscrowId)
	}
	if row.ForeignEscrowId != (ethcommon.Hash{}) && row.ForeignEscrowId != foreignEscrowId {
		return coordinatorErrors.MappingConflict(foreignEscrowId, orderHash)
	}

	if err := c.store.linkForeignEscrow(orderHash, foreignEscrowId); err != nil {
		return err
	}
	return c.RegisterMapping(foreignEscrowId, orderHash)
}

// RevealLocalSecret records the preimage the maker revealed while
// withdrawing on the local (Chain-E) side, for cross-chain relay to
// the foreign escrow. Revealing a secret that hashes to something
// other than the committed secretHash is rejected.
func (c *Coordinator) RevealLocalSecret(orderHash ethcommon.Hash, secret []byte) error {
	row, ok, err := c.store.getEthereumEscrowData(orderHash)
	if err != nil {
		return err
	}
	if !ok {
		return coordinatorErrors.UnknownForeignEscrow(orderHash)
	}
	if !htlc.VerifyHash([32]byte(row.SecretHash), secret) {
		return coordinatorErrors.UnknownForeignEscrow(orderHash)
	}

	return c.store.storePreimage(orderHash, secret)
}

// CompleteForeignWithdrawalFromLocalSecret consumes a locally revealed
// secret to settle the mirrored foreign-chain escrow, recording the
// consumption under directionLocalToForeign so
// WithdrawWithCoordinatedSecret can never also spend it.
func (c *Coordinator) CompleteForeignWithdrawalFromLocalSecret(orderHash ethcommon.Hash) ([]byte, error) {
	row, ok, err := c.store.getEthereumEscrowData(orderHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, coordinatorErrors.UnknownForeignEscrow(orderHash)
	}
	if !row.Active {
		return nil, coordinatorErrors.SecretAlreadyUsed(row.SecretHash)
	}
	if len(row.SecretPreimage) == 0 {
		return nil, coordinatorErrors.UnknownForeignEscrow(orderHash)
	}

	if direction, used, err := c.store.preimageDirection(row.SecretHash); err != nil {
		return nil, err
	} else if used && direction != directionLocalToForeign {
		return nil, coordinatorErrors.SecretAlreadyUsed(row.SecretHash)
	} else if !used {
		if err := c.store.recordPreimageConsumption(row.SecretHash, directionLocalToForeign); err != nil {
			return nil, err
		}
	}

	if err := c.store.deactivate(orderHash); err != nil {
		return nil, err
	}

	c.log.WithField("order_hash", orderHash.Hex()).Info("foreign withdrawal completed from local secret")
	if c.metrics != nil {
		c.metrics.IncSecretConsumed(directionLocalToForeign)
	}
	return row.SecretPreimage, nil
}
