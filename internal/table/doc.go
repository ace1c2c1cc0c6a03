// Package table computes half-circle sine/cosine lookup tables.
//
// A table of resolution n samples the angles
//
//	angle(i) = π·i/n,  i ∈ [0, n)
//
// and stores sin and cos of each in float64. Tables are computed once by
// [Generate] and never mutated afterwards; formatting them for a consumer
// is the job of package emit.
//
// # Fixed point
//
// [Quantize] converts a [Table] into the integer form used by fixed-point
// consumers: each value is narrowed to float32, scaled by 2^bits in single
// precision and truncated toward zero. With the default 10 bits the
// result is the 10.10 format (1.0 == 0x400).
//
// # Example
//
//	t, err := table.Generate(table.DefaultResolution)
//	if err != nil {
//		return err
//	}
//	fx, _ := table.Quantize(t, table.DefaultBits)
package table
