package bintypes

import (
	"github.com/gofrs/uuid"

	"github.com/binpack-go/binpack"
)

// UUID serializes a uuid.UUID as its 16 raw bytes.
type UUID struct {
	uuid.UUID
}

func (u UUID) EncodeBin(e *binpack.Encoder) error {
	return e.Write(u.Bytes())
}

func (u *UUID) DecodeBin(d *binpack.Decoder) error {
	var b [16]byte
	if err := d.Read(b[:]); err != nil {
		return err
	}
	u.UUID = uuid.UUID(b)
	return nil
}

func (u *UUID) BorrowDecodeBin(d *binpack.Decoder) error { return u.DecodeBin(d) }
