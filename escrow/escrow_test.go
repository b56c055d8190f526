package escrow

import (
	"testing"

	"github.com/TEENet-io/atomicswap-core/htlc"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestToken struct{}

func (TestToken) TokenName() string { return "test" }

func newTestImmutables(t *testing.T) Immutables {
	locks, err := htlc.ConstructTimeLocks(15, 60, 120, 180, 15, 60, 120)
	require.NoError(t, err)

	secret := []byte("working_real_1754151588608")
	lock := htlc.ComputeHashLock(secret)

	return Immutables{
		OrderHash:        ethcommon.HexToHash("0x01"),
		HashLock:         lock,
		Maker:            Address(ethcommon.HexToAddress("0xaaaa").Bytes()),
		Taker:            Address(ethcommon.HexToAddress("0xbbbb").Bytes()),
		TokenType:        Address(ethcommon.HexToAddress("0xcccc").Bytes()),
		Amount:           20_000_000,
		SafetyDeposit:    1_000,
		TimeLocks:        locks,
		ForeignOrderHash: ethcommon.HexToHash("0x02"),
	}
}

// TestHappyPathSrcWithdraw implements spec.md §8 S1 for the src side.
func TestHappyPathSrcWithdraw(t *testing.T) {
	imm := newTestImmutables(t)
	secret := []byte("working_real_1754151588608")

	e, createdEv, err := Create[TestToken](ethcommon.HexToHash("0xe1"), imm, htlc.Src, 1000)
	require.NoError(t, err)
	assert.Equal(t, imm.HashLock, createdEv.HashLock)
	assert.Equal(t, Created, e.State())

	_, err = e.Deposit(imm.Taker, NewBalance[TestToken](imm.Amount), NewBalance[Native](imm.SafetyDeposit))
	require.NoError(t, err)
	assert.Equal(t, Funded, e.State())

	// Before src_withdrawal elapses, even the taker cannot withdraw.
	_, _, _, err = e.Withdraw(imm.Taker, secret, 1005)
	assert.ErrorIs(t, err, ErrTimeLockNotExpired)

	principal, safety, ev, err := e.Withdraw(imm.Taker, secret, 1020)
	require.NoError(t, err)
	assert.Equal(t, imm.Amount, principal.Value())
	assert.Equal(t, imm.SafetyDeposit, safety.Value())
	assert.Equal(t, secret, ev.Secret)
	assert.True(t, Address(ev.To).Equal(imm.Maker))
	assert.Equal(t, Withdrawn, e.State())

	// Terminal: further operations are rejected.
	_, _, _, err = e.Withdraw(imm.Taker, secret, 1020)
	assert.ErrorIs(t, err, ErrEscrowCompleted)
}

// TestCancellationPath implements spec.md §8 S2.
func TestCancellationPath(t *testing.T) {
	imm := newTestImmutables(t)

	e, _, err := Create[TestToken](ethcommon.HexToHash("0xe2"), imm, htlc.Src, 1000)
	require.NoError(t, err)

	_, err = e.Deposit(imm.Taker, NewBalance[TestToken](imm.Amount), NewBalance[Native](imm.SafetyDeposit))
	require.NoError(t, err)

	stranger := Address(ethcommon.HexToAddress("0xdddd").Bytes())

	// Past src_cancellation(120) but before src_public_cancellation(180):
	// non-taker cancel fails.
	_, _, _, err = e.Cancel(stranger, 1130)
	assert.ErrorIs(t, err, ErrTimeLockNotExpired)

	// Taker may cancel once past src_cancellation.
	principal, safety, ev, err := e.Cancel(imm.Taker, 1130)
	require.NoError(t, err)
	assert.Equal(t, imm.Amount, principal.Value())
	assert.Equal(t, imm.SafetyDeposit, safety.Value())
	assert.True(t, Address(ev.To).Equal(imm.Maker))
	assert.Equal(t, Cancelled, e.State())
}

// TestCancellationPublicAfterThreshold extends S2: a stranger may cancel
// once src_public_cancellation elapses, and keeps the safety deposit.
func TestCancellationPublicAfterThreshold(t *testing.T) {
	imm := newTestImmutables(t)

	e, _, err := Create[TestToken](ethcommon.HexToHash("0xe3"), imm, htlc.Src, 1000)
	require.NoError(t, err)
	_, err = e.Deposit(imm.Taker, NewBalance[TestToken](imm.Amount), NewBalance[Native](imm.SafetyDeposit))
	require.NoError(t, err)

	stranger := Address(ethcommon.HexToAddress("0xdddd").Bytes())
	_, safety, ev, err := e.Cancel(stranger, 1180)
	require.NoError(t, err)
	assert.True(t, Address(ev.To).Equal(imm.Maker))
	assert.Equal(t, imm.SafetyDeposit, safety.Value())
}

// TestBadSecret implements spec.md §8 S3: no balance moves on a bad
// secret, and the escrow remains Funded.
func TestBadSecret(t *testing.T) {
	imm := newTestImmutables(t)

	e, _, err := Create[TestToken](ethcommon.HexToHash("0xe4"), imm, htlc.Src, 1000)
	require.NoError(t, err)
	_, err = e.Deposit(imm.Taker, NewBalance[TestToken](imm.Amount), NewBalance[Native](imm.SafetyDeposit))
	require.NoError(t, err)

	_, _, _, err = e.Withdraw(imm.Taker, []byte("not the secret"), 1020)
	assert.ErrorIs(t, err, ErrInvalidSecret)
	assert.Equal(t, Funded, e.State())
	assert.Equal(t, imm.Amount, e.Deposited().Value())
}

func TestDstWithdrawRecipientIsTaker(t *testing.T) {
	imm := newTestImmutables(t)
	secret := []byte("working_real_1754151588608")

	e, _, err := Create[TestToken](ethcommon.HexToHash("0xe5"), imm, htlc.Dst, 1000)
	require.NoError(t, err)
	_, err = e.Deposit(imm.Taker, NewBalance[TestToken](imm.Amount), NewBalance[Native](imm.SafetyDeposit))
	require.NoError(t, err)

	_, _, ev, err := e.Withdraw(imm.Taker, secret, 1020)
	require.NoError(t, err)
	assert.True(t, Address(ev.To).Equal(imm.Taker))
}

func TestDepositUnauthorized(t *testing.T) {
	imm := newTestImmutables(t)
	e, _, err := Create[TestToken](ethcommon.HexToHash("0xe6"), imm, htlc.Src, 1000)
	require.NoError(t, err)

	stranger := Address(ethcommon.HexToAddress("0xdddd").Bytes())
	_, err = e.Deposit(stranger, NewBalance[TestToken](imm.Amount), NewBalance[Native](imm.SafetyDeposit))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDepositOnlyOnce(t *testing.T) {
	imm := newTestImmutables(t)
	e, _, err := Create[TestToken](ethcommon.HexToHash("0xe7"), imm, htlc.Src, 1000)
	require.NoError(t, err)

	_, err = e.Deposit(imm.Taker, NewBalance[TestToken](imm.Amount), NewBalance[Native](imm.SafetyDeposit))
	require.NoError(t, err)

	_, err = e.Deposit(imm.Taker, NewBalance[TestToken](imm.Amount), NewBalance[Native](imm.SafetyDeposit))
	assert.ErrorIs(t, err, ErrAlreadyFunded)
}
