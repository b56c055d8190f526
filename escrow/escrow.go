// Package escrow implements the per-side HTLC escrow state machine (spec
// component C2): holds deposited principal and safety deposit, enforces
// the Created -> Funded -> {Withdrawn|Cancelled} lifecycle, and emits the
// lifecycle events the Factory/Resolver and cross-chain Coordinator
// depend on.
package escrow

import (
	"github.com/TEENet-io/atomicswap-core/htlc"
	ethcommon "github.com/ethereum/go-ethereum/common"
	logger "github.com/sirupsen/logrus"
)

// Escrow is generic over its principal token kind T, so that mixing two
// token kinds inside one escrow is rejected at compile time rather than
// through a runtime tag.
type Escrow[T Token] struct {
	id         ethcommon.Hash
	immutables Immutables
	side       htlc.Side

	deposited Balance[T]
	safety    Balance[Native]
	state     State
	t0        uint64
}

// Create allocates a new escrow in the Created state. now is the host
// ledger's creation timestamp (unix seconds) - the spec requires this to
// be a deterministic, injectable clock so the state machine can be tested
// against a logical clock rather than wall time.
func Create[T Token](id ethcommon.Hash, immutables Immutables, side htlc.Side, now uint64) (*Escrow[T], *EscrowCreated, error) {
	if id == (ethcommon.Hash{}) {
		return nil, nil, escrowErrors.Unauthorized(id, immutables.Taker)
	}
	if immutables.Amount == 0 {
		return nil, nil, escrowErrors.NotFunded(id)
	}
	if immutables.HashLock == (ethcommon.Hash{}) {
		return nil, nil, escrowErrors.InvalidSecret(id)
	}

	e := &Escrow[T]{
		id:         id,
		immutables: immutables,
		side:       side,
		state:      Created,
		t0:         now,
	}

	ev := &EscrowCreated{
		EscrowId:         id,
		Maker:            immutables.Maker,
		Taker:            immutables.Taker,
		Amount:           immutables.Amount,
		HashLock:         immutables.HashLock,
		ForeignOrderHash: immutables.ForeignOrderHash,
	}

	logger.WithFields(logger.Fields{
		"escrow_id": id.Hex(),
		"side":      side.String(),
	}).Debug("escrow created")

	return e, ev, nil
}

func (e *Escrow[T]) Id() ethcommon.Hash       { return e.id }
func (e *Escrow[T]) State() State             { return e.state }
func (e *Escrow[T]) Immutables() Immutables   { return e.immutables }
func (e *Escrow[T]) Side() htlc.Side          { return e.side }
func (e *Escrow[T]) Deposited() Balance[T]    { return e.deposited }
func (e *Escrow[T]) Safety() Balance[Native]  { return e.safety }

// Phase reports the current timelock phase for this escrow's side.
func (e *Escrow[T]) Phase(now uint64) htlc.Phase {
	return htlc.PhaseAt(now, e.t0, e.immutables.TimeLocks, e.side)
}

// Deposit funds the escrow. Only the designated taker may call it, and
// only once, while the escrow is still Created.
func (e *Escrow[T]) Deposit(caller Address, principal Balance[T], safety Balance[Native]) (*Deposited, error) {
	if e.state.IsTerminal() {
		return nil, escrowErrors.EscrowCompleted(e.id, e.state)
	}
	if e.state == Funded {
		return nil, escrowErrors.AlreadyFunded(e.id)
	}
	if !caller.Equal(e.immutables.Taker) {
		return nil, escrowErrors.Unauthorized(e.id, caller)
	}
	if principal.Value() != e.immutables.Amount {
		return nil, escrowErrors.NotFunded(e.id)
	}
	if safety.Value() != e.immutables.SafetyDeposit {
		return nil, escrowErrors.NotFunded(e.id)
	}

	e.deposited = e.deposited.Join(principal)
	e.safety = e.safety.Join(safety)
	e.state = Funded

	logger.WithFields(logger.Fields{
		"escrow_id": e.id.Hex(),
		"depositor": caller.Hex(),
	}).Debug("escrow funded")

	return &Deposited{
		EscrowId:      e.id,
		Depositor:     caller,
		Amount:        principal.Value(),
		SafetyDeposit: safety.Value(),
	}, nil
}

// withdrawThresholds returns the (private, public) phase thresholds that
// gate withdrawal on this escrow's side.
func (e *Escrow[T]) withdrawThresholds() (private, public htlc.Phase) {
	if e.side == htlc.Src {
		return htlc.SrcPrivateWithdraw, htlc.SrcPublicWithdraw
	}
	return htlc.DstPrivateWithdraw, htlc.DstPublicWithdraw
}

// Withdraw releases the two balances once the correct secret is
// presented in the right timelock window. The recipient split is fixed
// per side: on the src escrow the principal goes to the maker, on the
// dst escrow it goes to the taker; the safety deposit always goes to
// whichever address called Withdraw, rewarding liveness (spec.md §9,
// open question 3 - documented in DESIGN.md).
func (e *Escrow[T]) Withdraw(caller Address, secret []byte, now uint64) (Balance[T], Balance[Native], *WithdrawnEvent, error) {
	var zero Balance[T]
	var zeroSafety Balance[Native]

	if e.state.IsTerminal() {
		return zero, zeroSafety, nil, escrowErrors.EscrowCompleted(e.id, e.state)
	}
	if e.state != Funded {
		return zero, zeroSafety, nil, escrowErrors.NotFunded(e.id)
	}
	if !htlc.VerifyHash(e.immutables.HashLock, secret) {
		return zero, zeroSafety, nil, escrowErrors.InvalidSecret(e.id)
	}

	phase := e.Phase(now)
	private, public := e.withdrawThresholds()

	isTaker := caller.Equal(e.immutables.Taker)
	if isTaker {
		if phase < private {
			return zero, zeroSafety, nil, escrowErrors.TimeLockNotExpired(e.id, phase)
		}
	} else {
		if phase < public {
			return zero, zeroSafety, nil, escrowErrors.TimeLockNotExpired(e.id, phase)
		}
	}

	principal := e.deposited
	safety := e.safety

	recipient := e.immutables.Taker
	if e.side == htlc.Src {
		recipient = e.immutables.Maker
	}

	e.deposited = Balance[T]{}
	e.safety = Balance[Native]{}
	e.state = Withdrawn

	logger.WithFields(logger.Fields{
		"escrow_id": e.id.Hex(),
		"caller":    caller.Hex(),
		"to":        recipient.Hex(),
	}).Debug("escrow withdrawn")

	return principal, safety, &WithdrawnEvent{
		EscrowId: e.id,
		Secret:   secret,
		To:       recipient,
		Amount:   principal.Value(),
	}, nil
}

// cancelThresholds returns the (private, public) phase thresholds that
// gate cancellation. On the dst side there is no separate public-cancel
// tier - anyone may cancel once DstCancellation elapses.
func (e *Escrow[T]) cancelThresholds() (private, public htlc.Phase) {
	if e.side == htlc.Src {
		return htlc.SrcCancel, htlc.SrcPublicCancel
	}
	return htlc.DstCancel, htlc.DstCancel
}

// Cancel refunds the principal once the cancellation window has opened
// and no withdrawal has executed. Principal returns to the maker on the
// src side, to the taker on the dst side; the safety deposit always goes
// to the caller.
func (e *Escrow[T]) Cancel(caller Address, now uint64) (Balance[T], Balance[Native], *CancelledEvent, error) {
	var zero Balance[T]
	var zeroSafety Balance[Native]

	if e.state.IsTerminal() {
		return zero, zeroSafety, nil, escrowErrors.EscrowCompleted(e.id, e.state)
	}
	if e.state != Funded {
		return zero, zeroSafety, nil, escrowErrors.NotFunded(e.id)
	}

	phase := e.Phase(now)
	private, public := e.cancelThresholds()

	isTaker := caller.Equal(e.immutables.Taker)
	if isTaker {
		if phase < private {
			return zero, zeroSafety, nil, escrowErrors.TimeLockNotExpired(e.id, phase)
		}
	} else {
		if phase < public {
			return zero, zeroSafety, nil, escrowErrors.TimeLockNotExpired(e.id, phase)
		}
	}

	principal := e.deposited
	safety := e.safety

	recipient := e.immutables.Taker
	if e.side == htlc.Src {
		recipient = e.immutables.Maker
	}

	e.deposited = Balance[T]{}
	e.safety = Balance[Native]{}
	e.state = Cancelled

	logger.WithFields(logger.Fields{
		"escrow_id": e.id.Hex(),
		"caller":    caller.Hex(),
		"to":        recipient.Hex(),
	}).Debug("escrow cancelled")

	return principal, safety, &CancelledEvent{
		EscrowId: e.id,
		To:       recipient,
		Amount:   principal.Value(),
	}, nil
}
