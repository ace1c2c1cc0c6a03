package table

import "math"

// DefaultResolution is the sample count the Hough accumulator is sized for.
const DefaultResolution = 180

// Table holds precomputed sin/cos values over the half-circle.
type Table struct {
	Resolution int
	Sin        []float64
	Cos        []float64
}

// Angle returns the i-th sample angle in radians for a table of n samples.
func Angle(i, n int) float64 {
	return math.Pi * float64(i) / float64(n)
}

// Generate computes a table with n samples over [0, π).
// It fails with ErrInvalidResolution when n <= 0.
func Generate(n int) (*Table, error) {
	if err := CheckResolution(n); err != nil {
		return nil, err
	}

	t := &Table{
		Resolution: n,
		Sin:        make([]float64, n),
		Cos:        make([]float64, n),
	}

	for i := 0; i < n; i++ {
		angle := Angle(i, n)
		t.Sin[i] = math.Sin(angle)
		t.Cos[i] = math.Cos(angle)
	}

	return t, nil
}

// Degrees returns the i-th sample angle in degrees.
func (t *Table) Degrees(i int) float64 {
	return 180 * float64(i) / float64(t.Resolution)
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return t.Resolution
}
