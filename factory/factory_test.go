package factory

import (
	"testing"

	"github.com/TEENet-io/atomicswap-core/escrow"
	"github.com/TEENet-io/atomicswap-core/htlc"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testToken struct{}

func (testToken) TokenName() string { return "test" }

func testImmutables(t *testing.T, taker escrow.Address) escrow.Immutables {
	locks, err := htlc.ConstructTimeLocks(15, 60, 120, 180, 15, 60, 120)
	require.NoError(t, err)

	return escrow.Immutables{
		OrderHash:     ethcommon.HexToHash("0x01"),
		HashLock:      htlc.ComputeHashLock([]byte("s")),
		Maker:         escrow.Address(ethcommon.HexToAddress("0xaaaa").Bytes()),
		Taker:         taker,
		TokenType:     escrow.Address(ethcommon.HexToAddress("0xcccc").Bytes()),
		Amount:        100,
		SafetyDeposit: 10,
		TimeLocks:     locks,
	}
}

func TestResolverDeploySrcWithDepositRequiresOwner(t *testing.T) {
	owner := escrow.Address(ethcommon.HexToAddress("0xfeed").Bytes())
	f := NewFactory[testToken](ethcommon.HexToHash("0xf1"))
	r := NewResolver[testToken](ethcommon.HexToHash("0xr1"), owner, f)

	imm := testImmutables(t, owner)

	stranger := escrow.Address(ethcommon.HexToAddress("0xbad0").Bytes())
	_, _, err := r.DeploySrcWithDeposit(stranger, ethcommon.HexToHash("0xe1"), imm, 1000,
		escrow.NewBalance[testToken](imm.Amount), escrow.NewBalance[escrow.Native](imm.SafetyDeposit))
	assert.ErrorIs(t, err, ErrUnauthorized)

	e, ev, err := r.DeploySrcWithDeposit(owner, ethcommon.HexToHash("0xe1"), imm, 1000,
		escrow.NewBalance[testToken](imm.Amount), escrow.NewBalance[escrow.Native](imm.SafetyDeposit))
	require.NoError(t, err)
	assert.Equal(t, escrow.Funded, e.State())
	assert.Equal(t, imm.ForeignOrderHash, ev.ForeignOrderHash)
}

func TestResolverTransferOwnership(t *testing.T) {
	owner := escrow.Address(ethcommon.HexToAddress("0xfeed").Bytes())
	f := NewFactory[testToken](ethcommon.HexToHash("0xf1"))
	r := NewResolver[testToken](ethcommon.HexToHash("0xr1"), owner, f)

	newOwner := escrow.Address(ethcommon.HexToAddress("0xface").Bytes())
	stranger := escrow.Address(ethcommon.HexToAddress("0xbad0").Bytes())

	assert.ErrorIs(t, r.TransferOwnership(stranger, newOwner), ErrUnauthorized)

	require.NoError(t, r.TransferOwnership(owner, newOwner))
	assert.True(t, r.Owner().Equal(newOwner))

	// old owner can no longer act
	imm := testImmutables(t, newOwner)
	_, _, err := r.DeploySrcWithDeposit(owner, ethcommon.HexToHash("0xe2"), imm, 1000,
		escrow.NewBalance[testToken](imm.Amount), escrow.NewBalance[escrow.Native](imm.SafetyDeposit))
	assert.ErrorIs(t, err, ErrUnauthorized)
}
