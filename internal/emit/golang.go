package emit

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/trigtab/internal/table"
)

const goValuesPerLine = 6

func renderGo(buf *bytes.Buffer, t *table.Table, opts Options) error {
	var src bytes.Buffer
	src.WriteString("// Code generated by trigtab. DO NOT EDIT.\n\n")
	fmt.Fprintf(&src, "package %s\n\n", opts.Package)
	fmt.Fprintf(&src, "// Resolution is the number of samples in each table.\nconst Resolution = %d\n\n", t.Resolution)
	writeGoArray(&src, opts.SinName, "sin", t.Sin, opts.Precision)
	src.WriteString("\n")
	writeGoArray(&src, opts.CosName, "cos", t.Cos, opts.Precision)

	out, err := format.Source(src.Bytes())
	if err != nil {
		return errors.Wrap(err, "gofmt generated source")
	}
	buf.Write(out)
	return nil
}

func writeGoArray(buf *bytes.Buffer, name, fn string, vals []float64, prec int) {
	fmt.Fprintf(buf, "// %s holds %s(π·i/%d).\n", name, fn, len(vals))
	fmt.Fprintf(buf, "var %s = [%d]float32{\n", name, len(vals))
	for i := 0; i < len(vals); i += goValuesPerLine {
		end := min(i+goValuesPerLine, len(vals))
		buf.WriteString("\t")
		joinFloats(buf, vals[i:end], prec, ", ")
		buf.WriteString(",\n")
	}
	buf.WriteString("}\n")
}
