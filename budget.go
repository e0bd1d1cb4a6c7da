package binpack

import "math/bits"

// The length budget tracks how many input bytes are not yet spoken for,
// either by a pending container claim or by bytes actually read. A
// length-prefixed container claims count*perElem up front, before allocating
// anything, so a hostile length field can never force an allocation larger
// than the input that could possibly back it. As each element is decoded its
// share is released again, because from that point the element's real bytes
// are debited by Read; without the release the same bytes would be counted
// twice and valid input would be rejected.

// ClaimContainer reserves a conservative estimate of count elements of
// perElem bytes each. It must be called before allocating the container's
// backing storage.
func (d *Decoder) ClaimContainer(count, perElem int) error {
	if !d.limited {
		return nil
	}
	hi, total := bits.Mul64(uint64(count), uint64(perElem))
	if hi != 0 || total > d.budget {
		if hi != 0 {
			total = ^uint64(0)
		}
		return &LimitError{Claimed: total, Remaining: d.budget}
	}
	d.budget -= total
	return nil
}

// Unclaim releases n bytes of a prior claim, immediately before the element
// they estimated is actually decoded.
func (d *Decoder) Unclaim(n int) {
	if d.limited {
		d.budget += uint64(n)
	}
}

// ensure fails if n bytes could not possibly be read, without reserving them.
func (d *Decoder) ensure(n uint64) error {
	if d.limited && n > d.budget {
		return &LimitError{Claimed: n, Remaining: d.budget}
	}
	return nil
}

// Descend enters one level of container or sum-type nesting. The budget
// bounds total input, but crafted deeply-nested input could exhaust the call
// stack long before it runs the budget dry, so nesting is capped separately.
func (d *Decoder) Descend() error {
	d.depth++
	if max := d.cfg.maxDepth(); d.depth > max {
		return &DepthError{MaxDepth: max}
	}
	return nil
}

// Ascend leaves one level of nesting. Callers pair it with Descend on every
// path, typically via defer.
func (d *Decoder) Ascend() {
	if d.depth > 0 {
		d.depth--
	}
}
