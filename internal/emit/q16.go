package emit

import (
	"bytes"
	"fmt"

	"github.com/san-kum/trigtab/internal/table"
)

const (
	q16SinName = "SIN_TABLE"
	q16CosName = "COS_TABLE"
)

// renderQ16 writes the fixed-point tables as int16_t hex literals, one
// line each, negative entries as their 16-bit two's complement pattern.
func renderQ16(buf *bytes.Buffer, t *table.Table, opts Options) error {
	f, err := table.Quantize(t, opts.Bits)
	if err != nil {
		return err
	}
	writeQ16Line(buf, q16SinName, f.Sin)
	writeQ16Line(buf, q16CosName, f.Cos)
	return nil
}

func writeQ16Line(buf *bytes.Buffer, name string, vals []int16) {
	fmt.Fprintf(buf, "static const int16_t %s[%d] = {", name, len(vals))
	for i, v := range vals {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%#x", uint16(v))
	}
	buf.WriteString("};\n")
}
