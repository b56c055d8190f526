package htlc

import "fmt"

// TimeLocks holds the seven monotone offsets (in seconds, relative to an
// escrow's own creation time t0) that gate withdrawal and cancellation on
// each side of a swap. The src chain of offsets and the dst chain of
// offsets are independent: each is only required to be internally
// increasing, because the two escrows of one swap are created on two
// different ledgers at two different times and each reads only its own
// half of this struct relative to its own t0.
type TimeLocks struct {
	SrcWithdrawal         uint64
	SrcPublicWithdrawal   uint64
	SrcCancellation       uint64
	SrcPublicCancellation uint64
	DstWithdrawal         uint64
	DstPublicWithdrawal   uint64
	DstCancellation       uint64
}

// Side picks which half of TimeLocks a caller is gating against.
type Side int

const (
	Src Side = iota
	Dst
)

func (s Side) String() string {
	if s == Src {
		return "src"
	}
	return "dst"
}

// Phase is the position of "now" within one side's timelock schedule.
// The zero value, PhaseNone, means no threshold has been crossed yet and
// is deliberately not part of the spec's named phase set - it is what
// PhaseAt returns between t0 and the first offset of the requested side.
type Phase int

const (
	PhaseNone Phase = iota
	SrcPrivateWithdraw
	SrcPublicWithdraw
	SrcCancel
	SrcPublicCancel
	DstPrivateWithdraw
	DstPublicWithdraw
	DstCancel
	Expired
)

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case SrcPrivateWithdraw:
		return "src_private_withdraw"
	case SrcPublicWithdraw:
		return "src_public_withdraw"
	case SrcCancel:
		return "src_cancel"
	case SrcPublicCancel:
		return "src_public_cancel"
	case DstPrivateWithdraw:
		return "dst_private_withdraw"
	case DstPublicWithdraw:
		return "dst_public_withdraw"
	case DstCancel:
		return "dst_cancel"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ErrInvalidTimeLocks is returned by ConstructTimeLocks when the strict
// ordering required by each chain of offsets is violated.
var ErrInvalidTimeLocks = fmt.Errorf("invalid time locks: ordering violated")

// ConstructTimeLocks validates the seven offsets and returns a TimeLocks.
// src_withdrawal < src_public_withdrawal < src_cancellation < src_public_cancellation
// dst_withdrawal < dst_public_withdrawal < dst_cancellation
func ConstructTimeLocks(
	srcWithdrawal, srcPublicWithdrawal, srcCancellation, srcPublicCancellation,
	dstWithdrawal, dstPublicWithdrawal, dstCancellation uint64,
) (TimeLocks, error) {
	if !(srcWithdrawal < srcPublicWithdrawal &&
		srcPublicWithdrawal < srcCancellation &&
		srcCancellation < srcPublicCancellation) {
		return TimeLocks{}, ErrInvalidTimeLocks
	}

	if !(dstWithdrawal < dstPublicWithdrawal && dstPublicWithdrawal < dstCancellation) {
		return TimeLocks{}, ErrInvalidTimeLocks
	}

	return TimeLocks{
		SrcWithdrawal:         srcWithdrawal,
		SrcPublicWithdrawal:   srcPublicWithdrawal,
		SrcCancellation:       srcCancellation,
		SrcPublicCancellation: srcPublicCancellation,
		DstWithdrawal:         dstWithdrawal,
		DstPublicWithdrawal:   dstPublicWithdrawal,
		DstCancellation:       dstCancellation,
	}, nil
}

// PhaseAt computes the phase of the given side's schedule at time now,
// anchored at the escrow's creation time t0. Offsets are half-open
// intervals [threshold, infinity) once crossed - a timelock never
// invalidates a later withdrawal, it only opens the next gate.
func PhaseAt(now, t0 uint64, locks TimeLocks, side Side) Phase {
	var elapsed uint64
	if now > t0 {
		elapsed = now - t0
	}

	switch side {
	case Src:
		switch {
		case elapsed < locks.SrcWithdrawal:
			return PhaseNone
		case elapsed < locks.SrcPublicWithdrawal:
			return SrcPrivateWithdraw
		case elapsed < locks.SrcCancellation:
			return SrcPublicWithdraw
		case elapsed < locks.SrcPublicCancellation:
			return SrcCancel
		default:
			return SrcPublicCancel
		}
	case Dst:
		switch {
		case elapsed < locks.DstWithdrawal:
			return PhaseNone
		case elapsed < locks.DstPublicWithdrawal:
			return DstPrivateWithdraw
		case elapsed < locks.DstCancellation:
			return DstPublicWithdraw
		default:
			return DstCancel
		}
	default:
		return Expired
	}
}
