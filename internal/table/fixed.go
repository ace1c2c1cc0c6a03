package table

import "github.com/cockroachdb/errors"

const (
	// DefaultBits gives the 10.10 format used by the integer lane pipeline.
	DefaultBits = 10

	// MaxBits is the largest scale for which 1.0 still fits in an int16.
	MaxBits = 14
)

// Fixed is a quantized copy of a Table.
type Fixed struct {
	Bits uint
	Sin  []int16
	Cos  []int16
}

// Quantize converts t to fixed point with the given number of fraction bits.
func Quantize(t *Table, bits uint) (*Fixed, error) {
	if bits > MaxBits {
		return nil, errors.Wrapf(ErrInvalidBits, "bits %d (max %d)", bits, MaxBits)
	}

	f := &Fixed{
		Bits: bits,
		Sin:  make([]int16, t.Resolution),
		Cos:  make([]int16, t.Resolution),
	}

	scale := float32(int(1) << bits)
	for i := 0; i < t.Resolution; i++ {
		f.Sin[i] = quantize(t.Sin[i], scale)
		f.Cos[i] = quantize(t.Cos[i], scale)
	}

	return f, nil
}

// quantize narrows to float32 before scaling, then truncates toward zero.
func quantize(v float64, scale float32) int16 {
	q := float32(v) * scale
	return int16(q)
}

// Float returns the value represented by a quantized entry.
func (f *Fixed) Float(q int16) float64 {
	return float64(q) / float64(int(1)<<f.Bits)
}
