package bintypes

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/binpack-go/binpack"
)

// CString is a byte string with no interior NUL, for exchange with formats
// and systems that treat the payload as null-terminated. The terminator is
// not part of the wire encoding; the absence of interior NULs is checked on
// both encode and decode.
type CString string

func (s CString) EncodeBin(e *binpack.Encoder) error {
	if i := strings.IndexByte(string(s), 0); i >= 0 {
		return &NulError{Position: i}
	}
	return e.WriteBytes([]byte(s))
}

func (s *CString) DecodeBin(d *binpack.Decoder) error {
	p, err := d.ReadBytes()
	if err != nil {
		return err
	}
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return &NulError{Position: i}
	}
	*s = CString(p)
	return nil
}

func (s *CString) BorrowDecodeBin(d *binpack.Decoder) error { return s.DecodeBin(d) }

// Path is a filesystem path. Paths must be valid UTF-8 to have a portable
// wire representation; anything else is an encode error.
type Path string

func (p Path) EncodeBin(e *binpack.Encoder) error {
	if !utf8.ValidString(string(p)) {
		return ErrPathNotUTF8
	}
	return e.WriteString(string(p))
}

func (p *Path) DecodeBin(d *binpack.Decoder) error {
	s, err := d.ReadString()
	if err != nil {
		return err
	}
	*p = Path(s)
	return nil
}

// BorrowDecodeBin decodes a path aliasing the input buffer.
func (p *Path) BorrowDecodeBin(d *binpack.Decoder) error {
	s, err := d.BorrowString()
	if err != nil {
		return err
	}
	*p = Path(s)
	return nil
}
