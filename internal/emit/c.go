package emit

import (
	"bytes"
	"fmt"

	"github.com/san-kum/trigtab/internal/table"
)

// renderC writes the two float blocks. Values are computed in float64 and
// printed past float precision; the consumer declares them float on purpose.
func renderC(buf *bytes.Buffer, t *table.Table, opts Options) {
	writeCBlock(buf, opts.ElementType, opts.SinName, t.Sin, opts.Precision)
	buf.WriteString("\n")
	writeCBlock(buf, opts.ElementType, opts.CosName, t.Cos, opts.Precision)
}

func writeCBlock(buf *bytes.Buffer, typ, name string, vals []float64, prec int) {
	fmt.Fprintf(buf, "static const %s %s[%d] = {\n", typ, name, len(vals))
	joinFloats(buf, vals, prec, ", ")
	buf.WriteString("\n};\n")
}
