package binpack

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

type benchRecord struct {
	ID    uint64   `cbor:"1,keyasint"`
	Name  string   `cbor:"2,keyasint"`
	Score float64  `cbor:"3,keyasint"`
	Tags  []uint32 `cbor:"4,keyasint"`
	OK    bool     `cbor:"5,keyasint"`
}

func (r benchRecord) EncodeBin(e *Encoder) error {
	if err := e.WriteU64(r.ID); err != nil {
		return err
	}
	if err := e.WriteString(r.Name); err != nil {
		return err
	}
	if err := e.WriteF64(r.Score); err != nil {
		return err
	}
	if err := EncodeSlice(e, r.Tags, (*Encoder).WriteU32); err != nil {
		return err
	}
	return e.WriteBool(r.OK)
}

func (r *benchRecord) DecodeBin(d *Decoder) error {
	var err error
	if r.ID, err = d.ReadU64(); err != nil {
		return err
	}
	if r.Name, err = d.ReadString(); err != nil {
		return err
	}
	if r.Score, err = d.ReadF64(); err != nil {
		return err
	}
	if r.Tags, err = DecodeSlice(d, (*Decoder).ReadU32); err != nil {
		return err
	}
	r.OK, err = d.ReadBool()
	return err
}

var benchValue = benchRecord{
	ID:    123456789,
	Name:  "benchmark record with a moderately long name",
	Score: 3.14159,
	Tags:  []uint32{1, 10, 100, 1000, 10000, 100000},
	OK:    true,
}

func BenchmarkMarshal(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(benchValue); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	data, err := Marshal(benchValue)
	require.NoError(b, err)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var got benchRecord
		if err := Unmarshal(data, &got); err != nil {
			b.Fatal(err)
		}
	}
}

// The CBOR pair gives a baseline against a reflection-driven self-describing
// codec on the same value.
func BenchmarkMarshal_cbor(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.Marshal(benchValue); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal_cbor(b *testing.B) {
	data, err := cbor.Marshal(benchValue)
	require.NoError(b, err)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var got benchRecord
		if err := cbor.Unmarshal(data, &got); err != nil {
			b.Fatal(err)
		}
	}
}
