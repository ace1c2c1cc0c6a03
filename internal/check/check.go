// Package check reads a float lookup-table literal back and verifies the
// properties every generated table must satisfy.
package check

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/trigtab/internal/emit"
)

// Tolerance is the floor for the unit-circle and endpoint checks. Tables
// printed with fewer digits are held to the rounding error of their text.
const Tolerance = 1e-9

var ErrMalformed = errors.New("check: malformed table literal")

var headerRe = regexp.MustCompile(`^static const ([A-Za-z_][A-Za-z0-9_ ]*) ([A-Za-z_][A-Za-z0-9_]*)\[(\d+)\] = \{$`)

// Block is one parsed array literal.
type Block struct {
	Line     int
	Type     string
	Name     string
	Declared int
	Tokens   []string
	Values   []float64
}

// Parse reads every block from r. Blank lines between blocks are ignored;
// anything else out of place is ErrMalformed.
func Parse(r io.Reader) ([]Block, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var blocks []Block
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return sc.Text(), true
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.Wrapf(ErrMalformed, "line %d: expected declaration, got %q", lineNo, truncate(line))
		}
		declared, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "line %d: array length %q", lineNo, m[3])
		}
		b := Block{Line: lineNo, Type: m[1], Name: m[2], Declared: declared}

		row, ok := next()
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "line %d: %s has no values", lineNo, b.Name)
		}
		if row != "" {
			b.Tokens = strings.Split(row, ", ")
		}
		b.Values = make([]float64, len(b.Tokens))
		for i, tok := range b.Tokens {
			v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformed, "line %d: %s[%d] = %q", lineNo, b.Name, i, tok)
			}
			b.Values[i] = v
		}

		closing, ok := next()
		if !ok || closing != "};" {
			return nil, errors.Wrapf(ErrMalformed, "line %d: %s is not closed", lineNo, b.Name)
		}

		blocks = append(blocks, b)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read table literal")
	}
	if len(blocks) == 0 {
		return nil, errors.Wrap(ErrMalformed, "no tables found")
	}
	return blocks, nil
}

func truncate(s string) string {
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}

// Options names the blocks to pair up and the expected digit count.
type Options struct {
	SinName   string
	CosName   string
	Precision int
}

func DefaultOptions() Options {
	return Options{SinName: "sinvals", CosName: "cosvals", Precision: 15}
}

// Violation is a single failed property.
type Violation struct {
	Block  string
	Index  int // -1 when the violation concerns the whole block
	Rule   string
	Detail string
}

func (v Violation) String() string {
	if v.Index < 0 {
		return fmt.Sprintf("%s: %s: %s", v.Block, v.Rule, v.Detail)
	}
	return fmt.Sprintf("%s[%d]: %s: %s", v.Block, v.Index, v.Rule, v.Detail)
}

type Report struct {
	Blocks     []Block
	Violations []Violation
}

func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

func (r *Report) add(block string, idx int, rule, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		Block:  block,
		Index:  idx,
		Rule:   rule,
		Detail: fmt.Sprintf(format, args...),
	})
}

// ToleranceFor returns the numeric slack allowed for a table printed with
// prec fraction digits.
func ToleranceFor(prec int) float64 {
	return max(Tolerance, 2*math.Pow10(-prec))
}

func tokenPattern(prec int) (*regexp.Regexp, error) {
	if prec < 0 || prec > emit.MaxPrecision {
		return nil, errors.WithHint(
			errors.Wrapf(emit.ErrInvalidPrecision, "precision %d", prec),
			fmt.Sprintf("precision must be between 0 and %d", emit.MaxPrecision),
		)
	}
	if prec == 0 {
		return regexp.Compile(`^-?\d+$`)
	}
	return regexp.Compile(fmt.Sprintf(`^-?\d+\.\d{%d}$`, prec))
}

// Verify checks the structural and numeric invariants of sin/cos blocks.
// It fails only when opts cannot describe a generated table.
func Verify(blocks []Block, opts Options) (*Report, error) {
	tokenRe, err := tokenPattern(opts.Precision)
	if err != nil {
		return nil, err
	}
	tol := ToleranceFor(opts.Precision)
	rep := &Report{Blocks: blocks}

	var sin, cos *Block
	for i := range blocks {
		b := &blocks[i]
		switch b.Name {
		case opts.SinName:
			sin = b
		case opts.CosName:
			cos = b
		}

		if b.Declared <= 0 {
			rep.add(b.Name, -1, "length", "declared length %d is not positive", b.Declared)
		}
		if len(b.Tokens) != b.Declared {
			rep.add(b.Name, -1, "length", "declared %d, found %d values", b.Declared, len(b.Tokens))
		}
		for j, tok := range b.Tokens {
			if !tokenRe.MatchString(tok) {
				rep.add(b.Name, j, "format", "%q does not have %d fraction digits", tok, opts.Precision)
			}
			if v := b.Values[j]; v < -1 || v > 1 {
				rep.add(b.Name, j, "range", "%v outside [-1, 1]", v)
			}
		}
	}

	if sin == nil {
		rep.add(opts.SinName, -1, "missing", "no sine table")
	} else {
		n := len(sin.Values)
		if n > 0 && sin.Values[0] != 0 {
			rep.add(sin.Name, 0, "endpoint", "sin(0) = %v, want 0", sin.Values[0])
		}
		if n > 0 && n%2 == 0 {
			if v := sin.Values[n/2]; math.Abs(v-1) > tol {
				rep.add(sin.Name, n/2, "endpoint", "sin(π/2) = %v, want 1", v)
			}
		}
	}

	if cos == nil {
		rep.add(opts.CosName, -1, "missing", "no cosine table")
	} else {
		n := len(cos.Values)
		if n > 0 && cos.Values[0] != 1 {
			rep.add(cos.Name, 0, "endpoint", "cos(0) = %v, want 1", cos.Values[0])
		}
		if n > 0 && n%2 == 0 {
			if v := cos.Values[n/2]; math.Abs(v) > tol {
				rep.add(cos.Name, n/2, "endpoint", "cos(π/2) = %v, want 0", v)
			}
		}
	}

	if sin != nil && cos != nil {
		if len(sin.Values) != len(cos.Values) {
			rep.add(cos.Name, -1, "pairing", "%d sine values vs %d cosine values", len(sin.Values), len(cos.Values))
		} else {
			for i := range sin.Values {
				s, c := sin.Values[i], cos.Values[i]
				if d := math.Abs(s*s + c*c - 1); d > tol {
					rep.add(sin.Name+"/"+cos.Name, i, "identity", "sin²+cos² off by %.3g", d)
				}
			}
		}
	}

	return rep, nil
}
