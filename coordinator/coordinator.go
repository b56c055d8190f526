package coordinator

import (
	"fmt"

	"github.com/TEENet-io/atomicswap-core/coordinatormetrics"
	"github.com/TEENet-io/atomicswap-core/escrow"
	"github.com/TEENet-io/atomicswap-core/htlc"
	ethcommon "github.com/ethereum/go-ethereum/common"
	logrus "github.com/sirupsen/logrus"
)

// CoordinationTimeout is the minimum age a coordinated-but-unconsumed
// secret must reach before EmergencyReset is allowed to drop it.
const CoordinationTimeout = 3600

// Coordinator is the cross-chain relay point (C4): it is the only
// component that ever sees a revealed secret from both chains at once,
// and it is responsible for keeping the foreign-escrow-id <-> local-
// order-hash bijection consistent and for never letting the same
// preimage settle both directions of a swap.
type Coordinator struct {
	store   *Store
	log     *logrus.Entry
	metrics *coordinatormetrics.Registry
}

// NewCoordinator builds a Coordinator over store. metrics may be nil, in
// which case every state transition simply skips reporting.
func NewCoordinator(store *Store, metrics *coordinatormetrics.Registry) *Coordinator {
	return &Coordinator{
		store:   store,
		log:     logrus.WithField("component", "coordinator"),
		metrics: metrics,
	}
}

// reportPendingSecrets refreshes the coordinator backlog gauge from the
// store's own count, so it never drifts from an in-memory tally.
func (c *Coordinator) reportPendingSecrets() {
	if c.metrics == nil {
		return
	}
	if n, err := c.store.countPendingSecrets(); err == nil {
		c.metrics.SetPendingSecrets(n)
	}
}

// CoordinateSecretFromForeign records a secret observed on the foreign
// chain (Chain-S) against its escrow id. Only the secret's Keccak-256
// hash is stored (as CoordinatorEntry.Secret); the raw preimage is not
// kept. Coordinating the same secret twice, under any foreign escrow
// id, is rejected: a secret is a one-shot artifact once it has entered
// this ledger.
func (c *Coordinator) CoordinateSecretFromForeign(foreignEscrowId ethcommon.Hash, secret []byte, now uint64, caller escrow.Address) (*SecretCoordinated, error) {
	if foreignEscrowId == (ethcommon.Hash{}) || len(secret) == 0 {
		if c.metrics != nil {
			c.metrics.IncSecretCoordinated("rejected_invalid_input")
		}
		return nil, coordinatorErrors.UnknownForeignEscrow(foreignEscrowId)
	}
	secretHash := ethcommon.Hash(htlc.ComputeHashLock(secret))

	alreadyCoordinated, err := c.store.secretIsCoordinated(secretHash)
	if err != nil {
		return nil, err
	}
	if alreadyCoordinated {
		if c.metrics != nil {
			c.metrics.IncSecretCoordinated("rejected_already_coordinated")
		}
		return nil, coordinatorErrors.SecretAlreadyCoordinated(secretHash)
	}

	used, err := c.secretUsedOnEitherDirection(secretHash)
	if err != nil {
		return nil, err
	}
	if used {
		if c.metrics != nil {
			c.metrics.IncSecretCoordinated("rejected_already_used")
		}
		return nil, coordinatorErrors.SecretAlreadyUsed(secretHash)
	}

	entry := CoordinatorEntry{
		Secret:          secretHash,
		CoordinatedAt:   now,
		CoordinatorAddr: caller,
		Status:          StatusSecretCoordinated,
		Consumed:        false,
	}
	if err := c.store.upsertSecret(foreignEscrowId, entry); err != nil {
		return nil, err
	}

	localOrderHash, _, _ := c.store.getMappingByForeign(foreignEscrowId)

	ev := &SecretCoordinated{
		ForeignEscrowId: foreignEscrowId,
		LocalOrderHash:  localOrderHash,
		Secret:          secretHash,
		Coordinator:     caller,
		Timestamp:       now,
	}
	c.log.WithFields(logrus.Fields{
		"foreign_escrow_id": foreignEscrowId.Hex(),
		"secret_hash":       secretHash.Hex(),
	}).Info("secret coordinated from foreign chain")

	if c.metrics != nil {
		c.metrics.IncSecretCoordinated("success")
	}
	c.reportPendingSecrets()
	return ev, nil
}

// RegisterMapping links a foreign escrow id to the local order hash it
// corresponds to. The mapping is a bijection: once set, neither side
// may be rebound to a different counterpart.
func (c *Coordinator) RegisterMapping(foreignEscrowId, localOrderHash ethcommon.Hash) error {
	if existingLocal, ok, err := c.store.getMappingByForeign(foreignEscrowId); err != nil {
		return err
	} else if ok {
		if existingLocal != localOrderHash {
			return coordinatorErrors.MappingConflict(foreignEscrowId, localOrderHash)
		}
		return nil
	}

	if existingForeign, ok, err := c.store.getMappingByLocal(localOrderHash); err != nil {
		return err
	} else if ok && existingForeign != foreignEscrowId {
		return coordinatorErrors.MappingConflict(foreignEscrowId, localOrderHash)
	}

	return c.store.insertMapping(foreignEscrowId, localOrderHash)
}

// GetCoordinatedSecret returns the coordination entry registered for a
// foreign escrow id, if any. The entry carries the Keccak-256 hash of
// the relayed secret, not the secret itself.
func (c *Coordinator) GetCoordinatedSecret(foreignEscrowId ethcommon.Hash) (CoordinatorEntry, bool, error) {
	return c.store.getSecretByForeignId(foreignEscrowId)
}

// WithdrawWithCoordinatedSecret marks a coordinated secret as consumed
// on the local (Chain-E) side and records it in the cross-direction
// ledger under directionForeignToLocal, so the mirrored
// CompleteForeignWithdrawalFromLocalSecret can never also spend it.
func (c *Coordinator) WithdrawWithCoordinatedSecret(foreignEscrowId ethcommon.Hash, srcChain, dstChain string, srcAmount, dstAmount uint64) (*CrossChainSwapCompleted, error) {
	entry, ok, err := c.store.getSecretByForeignId(foreignEscrowId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, coordinatorErrors.UnknownForeignEscrow(foreignEscrowId)
	}
	if entry.Consumed {
		return nil, coordinatorErrors.SecretAlreadyUsed(entry.Secret)
	}

	if direction, used, err := c.store.preimageDirection(entry.Secret); err != nil {
		return nil, err
	} else if used && direction != directionForeignToLocal {
		return nil, coordinatorErrors.SecretAlreadyUsed(entry.Secret)
	} else if !used {
		if err := c.store.recordPreimageConsumption(entry.Secret, directionForeignToLocal); err != nil {
			return nil, err
		}
	}

	if err := c.store.markConsumedByForeignId(foreignEscrowId); err != nil {
		return nil, err
	}

	localOrderHash, _, _ := c.store.getMappingByForeign(foreignEscrowId)
	c.log.WithFields(logrus.Fields{
		"foreign_escrow_id": foreignEscrowId.Hex(),
		"local_order_hash":  localOrderHash.Hex(),
	}).Info("cross-chain swap completed")

	if c.metrics != nil {
		c.metrics.IncSecretConsumed(directionForeignToLocal)
	}
	c.reportPendingSecrets()

	return &CrossChainSwapCompleted{
		OrderHash: localOrderHash,
		SrcChain:  srcChain,
		DstChain:  dstChain,
		SrcAmount: srcAmount,
		DstAmount: dstAmount,
	}, nil
}

// BatchCoordinateSecrets applies CoordinateSecretFromForeign to a set
// of (foreignEscrowId, secret) pairs, continuing past individual
// failures and returning one error per input in order, so a checkpoint
// sync covering many escrows does not abort on its first rejection.
func (c *Coordinator) BatchCoordinateSecrets(foreignEscrowIds []ethcommon.Hash, secrets [][]byte, now uint64, caller escrow.Address) ([]*SecretCoordinated, []error) {
	events := make([]*SecretCoordinated, len(foreignEscrowIds))
	errs := make([]error, len(foreignEscrowIds))

	if len(foreignEscrowIds) != len(secrets) {
		err := fmt.Errorf("batch coordinate: mismatched lengths ids=%d secrets=%d", len(foreignEscrowIds), len(secrets))
		for i := range errs {
			errs[i] = err
		}
		return events, errs
	}

	for i, id := range foreignEscrowIds {
		ev, err := c.CoordinateSecretFromForeign(id, secrets[i], now, caller)
		events[i] = ev
		errs[i] = err
	}
	return events, errs
}

// EmergencyReset drops a coordinated-but-unconsumed secret once it has
// aged past CoordinationTimeout, releasing the foreign escrow id for
// re-coordination. It never touches a consumed entry.
func (c *Coordinator) EmergencyReset(foreignEscrowId ethcommon.Hash, now uint64) error {
	entry, ok, err := c.store.getSecretByForeignId(foreignEscrowId)
	if err != nil {
		return err
	}
	if !ok {
		return coordinatorErrors.UnknownForeignEscrow(foreignEscrowId)
	}
	if entry.Consumed {
		return coordinatorErrors.SecretAlreadyUsed(entry.Secret)
	}
	if now < entry.CoordinatedAt+CoordinationTimeout {
		return coordinatorErrors.ResetTooEarly(foreignEscrowId)
	}

	c.log.WithField("foreign_escrow_id", foreignEscrowId.Hex()).Warn("emergency reset")
	if err := c.store.deleteSecret(foreignEscrowId); err != nil {
		return err
	}
	c.reportPendingSecrets()
	return nil
}

func (c *Coordinator) secretUsedOnEitherDirection(secretHash ethcommon.Hash) (bool, error) {
	_, used, err := c.store.preimageDirection(secretHash)
	return used, err
}
