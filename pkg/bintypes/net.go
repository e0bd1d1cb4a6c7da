package bintypes

import (
	"net/netip"

	"github.com/binpack-go/binpack"
)

// Network addresses encode as a discriminant selecting the family (0 = IPv4,
// 1 = IPv6) followed by the raw octets, so both families share one wire type.

const (
	addrTagV4 = 0
	addrTagV6 = 1
)

// Addr serializes a netip.Addr.
type Addr struct {
	netip.Addr
}

func (a Addr) EncodeBin(e *binpack.Encoder) error {
	switch {
	case a.Is4() || a.Is4In6():
		if err := e.WriteDiscriminant(addrTagV4); err != nil {
			return err
		}
		o := a.Unmap().As4()
		return e.Write(o[:])
	case a.Is6():
		if err := e.WriteDiscriminant(addrTagV6); err != nil {
			return err
		}
		o := a.As16()
		return e.Write(o[:])
	default:
		return ErrZeroAddr
	}
}

func (a *Addr) DecodeBin(d *binpack.Decoder) error {
	tag, err := d.ReadDiscriminant("netip.Addr", binpack.AllowedRange(addrTagV4, addrTagV6))
	if err != nil {
		return err
	}
	if tag == addrTagV4 {
		var o [4]byte
		if err := d.Read(o[:]); err != nil {
			return err
		}
		a.Addr = netip.AddrFrom4(o)
		return nil
	}
	var o [16]byte
	if err := d.Read(o[:]); err != nil {
		return err
	}
	a.Addr = netip.AddrFrom16(o)
	return nil
}

func (a *Addr) BorrowDecodeBin(d *binpack.Decoder) error { return a.DecodeBin(d) }

// AddrPort serializes a netip.AddrPort as its address followed by a u16 port.
type AddrPort struct {
	netip.AddrPort
}

func (a AddrPort) EncodeBin(e *binpack.Encoder) error {
	if err := (Addr{a.Addr()}).EncodeBin(e); err != nil {
		return err
	}
	return e.WriteU16(a.Port())
}

func (a *AddrPort) DecodeBin(d *binpack.Decoder) error {
	var addr Addr
	if err := addr.DecodeBin(d); err != nil {
		return err
	}
	port, err := d.ReadU16()
	if err != nil {
		return err
	}
	a.AddrPort = netip.AddrPortFrom(addr.Addr, port)
	return nil
}

func (a *AddrPort) BorrowDecodeBin(d *binpack.Decoder) error { return a.DecodeBin(d) }
