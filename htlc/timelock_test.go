package htlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustLocks(t *testing.T) TimeLocks {
	locks, err := ConstructTimeLocks(15, 60, 120, 180, 15, 60, 120)
	assert.NoError(t, err)
	return locks
}

func TestConstructTimeLocksInvalidOrdering(t *testing.T) {
	cases := []struct {
		name string
		args [7]uint64
	}{
		{"src_withdrawal_not_less_than_public", [7]uint64{60, 60, 120, 180, 15, 60, 120}},
		{"src_cancellation_before_public_withdrawal", [7]uint64{15, 120, 100, 180, 15, 60, 120}},
		{"src_public_cancellation_not_last", [7]uint64{15, 60, 120, 100, 15, 60, 120}},
		{"dst_withdrawal_not_less_than_public", [7]uint64{15, 60, 120, 180, 60, 60, 120}},
		{"dst_cancellation_before_public_withdrawal", [7]uint64{15, 60, 120, 180, 15, 120, 100}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := c.args
			_, err := ConstructTimeLocks(a[0], a[1], a[2], a[3], a[4], a[5], a[6])
			assert.ErrorIs(t, err, ErrInvalidTimeLocks)
		})
	}
}

func TestPhaseAtSrcSchedule(t *testing.T) {
	locks := mustLocks(t)
	t0 := uint64(1000)

	cases := []struct {
		now   uint64
		phase Phase
	}{
		{t0, PhaseNone},
		{t0 + 10, PhaseNone},
		{t0 + 15, SrcPrivateWithdraw},
		{t0 + 59, SrcPrivateWithdraw},
		{t0 + 60, SrcPublicWithdraw},
		{t0 + 119, SrcPublicWithdraw},
		{t0 + 120, SrcCancel},
		{t0 + 179, SrcCancel},
		{t0 + 180, SrcPublicCancel},
		{t0 + 10_000, SrcPublicCancel},
	}

	for _, c := range cases {
		assert.Equal(t, c.phase, PhaseAt(c.now, t0, locks, Src), "now=%d", c.now)
	}
}

func TestPhaseAtDstSchedule(t *testing.T) {
	locks := mustLocks(t)
	t0 := uint64(500)

	cases := []struct {
		now   uint64
		phase Phase
	}{
		{t0, PhaseNone},
		{t0 + 14, PhaseNone},
		{t0 + 15, DstPrivateWithdraw},
		{t0 + 59, DstPrivateWithdraw},
		{t0 + 60, DstPublicWithdraw},
		{t0 + 119, DstPublicWithdraw},
		{t0 + 120, DstCancel},
		{t0 + 10_000, DstCancel},
	}

	for _, c := range cases {
		assert.Equal(t, c.phase, PhaseAt(c.now, t0, locks, Dst), "now=%d", c.now)
	}
}

func TestPhaseAtNowBeforeT0(t *testing.T) {
	locks := mustLocks(t)
	assert.Equal(t, PhaseNone, PhaseAt(5, 1000, locks, Src))
}
