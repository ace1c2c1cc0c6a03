// Package emit formats lookup tables as source-language literals.
package emit

import (
	"bytes"
	"io"
	"regexp"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/san-kum/trigtab/internal/table"
)

const (
	FormatC   = "c"
	FormatQ16 = "q16"
	FormatGo  = "go"
)

const (
	DefaultPrecision   = 15
	DefaultElementType = "float"
	DefaultSinName     = "sinvals"
	DefaultCosName     = "cosvals"
	DefaultPackage     = "trig"

	// MaxPrecision is enough digits to round-trip any float64 in [-1, 1].
	MaxPrecision = 17
)

var (
	ErrUnknownFormat    = errors.New("emit: unknown format")
	ErrInvalidPrecision = errors.New("emit: precision out of range")
	ErrInvalidName      = errors.New("emit: invalid identifier")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options selects the output language and its knobs. The zero value is
// not usable; start from DefaultOptions.
type Options struct {
	Format      string
	Precision   int
	ElementType string
	SinName     string
	CosName     string
	Bits        uint
	Package     string
}

// DefaultOptions reproduces the float literal the lane detector includes.
func DefaultOptions() Options {
	return Options{
		Format:      FormatC,
		Precision:   DefaultPrecision,
		ElementType: DefaultElementType,
		SinName:     DefaultSinName,
		CosName:     DefaultCosName,
		Bits:        table.DefaultBits,
		Package:     DefaultPackage,
	}
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatC, FormatQ16, FormatGo}
}

func (o Options) Validate() error {
	switch o.Format {
	case FormatC, FormatQ16, FormatGo:
	default:
		return errors.WithHintf(
			errors.Wrapf(ErrUnknownFormat, "%q", o.Format),
			"supported formats: %v", Formats(),
		)
	}
	if o.Precision < 0 || o.Precision > MaxPrecision {
		return errors.Wrapf(ErrInvalidPrecision, "precision %d (want 0..%d)", o.Precision, MaxPrecision)
	}
	if o.Format == FormatC {
		if err := checkIdent("sin name", o.SinName); err != nil {
			return err
		}
		if err := checkIdent("cos name", o.CosName); err != nil {
			return err
		}
		if o.ElementType == "" {
			return errors.Wrap(ErrInvalidName, "element type is empty")
		}
	}
	if o.Format == FormatGo {
		if err := checkIdent("package", o.Package); err != nil {
			return err
		}
		if err := checkIdent("sin name", o.SinName); err != nil {
			return err
		}
		if err := checkIdent("cos name", o.CosName); err != nil {
			return err
		}
	}
	return nil
}

func checkIdent(what, s string) error {
	if identRe.MatchString(s) {
		return nil
	}
	return errors.Wrapf(ErrInvalidName, "%s %q", what, s)
}

// Render formats t into a complete document. Nothing is returned on error.
func Render(t *table.Table, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.Wrap(table.ErrInvalidResolution, "nil table")
	}
	if err := table.CheckResolution(t.Resolution); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var err error
	switch opts.Format {
	case FormatC:
		renderC(&buf, t, opts)
	case FormatQ16:
		err = renderQ16(&buf, t, opts)
	case FormatGo:
		err = renderGo(&buf, t, opts)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders t and writes it to w in one call, so a rendering
// failure leaves w untouched.
func Write(w io.Writer, t *table.Table, opts Options) error {
	out, err := Render(t, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return errors.Wrap(err, "write table")
}

// FormatFloat prints v in fixed-point notation with prec fraction digits,
// using the shortest correctly rounded digits for the value's own width.
func FormatFloat[T constraints.Float](v T, prec int) string {
	bitSize := 64
	if _, ok := any(v).(float32); ok {
		bitSize = 32
	}
	return strconv.FormatFloat(float64(v), 'f', prec, bitSize)
}

func joinFloats[T constraints.Float](buf *bytes.Buffer, vals []T, prec int, sep string) {
	for i, v := range vals {
		if i > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(FormatFloat(v, prec))
	}
}
