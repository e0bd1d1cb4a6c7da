package binpack

// LEB128/SLEB128: seven value bits per byte, low-order group first, high bit
// set on every group except the last. The widest supported value is 128 bits,
// so no valid varint has more than 19 groups.

const maxVarintLen = 19

func appendUleb128(buf []byte, v Uint128) []byte {
	for {
		b := byte(v.Lo & 0x7F)
		v = v.shr7()
		if v.IsZero() {
			return append(buf, b)
		}
		buf = append(buf, b|0x80)
	}
}

// appendSleb128 terminates on the group that fully carries the remaining
// sign-extended value: bit 6 of the final group must agree with the sign of
// what is left (value 0 with bit 6 clear, value -1 with bit 6 set).
func appendSleb128(buf []byte, v Int128) []byte {
	for {
		b := byte(v.Lo & 0x7F)
		v = v.sar7()
		if (v.IsZero() && b&0x40 == 0) || (v.isMinusOne() && b&0x40 != 0) {
			return append(buf, b)
		}
		buf = append(buf, b|0x80)
	}
}

func (d *Decoder) readUleb128() (Uint128, error) {
	var res Uint128
	shift := uint(0)
	for {
		b, err := d.readByte()
		if err != nil {
			return Uint128{}, err
		}
		res = res.orShifted(b&0x7F, shift)
		if b&0x80 == 0 {
			return res, nil
		}
		shift += 7
		if shift >= 128 {
			return Uint128{}, &VarintError{Bits: 128}
		}
	}
}

func (d *Decoder) readSleb128() (Int128, error) {
	var res Int128
	shift := uint(0)
	var b byte
	for {
		var err error
		b, err = d.readByte()
		if err != nil {
			return Int128{}, err
		}
		res = res.orShifted(b&0x7F, shift)
		shift += 7
		if b&0x80 == 0 {
			break
		}
		if shift >= 128 {
			return Int128{}, &VarintError{Bits: 128}
		}
	}
	if shift < 128 && b&0x40 != 0 {
		res = res.signExtend(shift)
	}
	return res, nil
}
