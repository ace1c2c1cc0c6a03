package export

import (
	"strings"
	"testing"

	"github.com/san-kum/trigtab/internal/table"
)

func TestTableToSVG(t *testing.T) {
	tb, err := table.Generate(4)
	if err != nil {
		t.Fatal(err)
	}

	svg := TableToSVG(tb, 200, 100)
	if !strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("missing xml header")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("svg not closed")
	}
	if n := strings.Count(svg, "<path "); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}

	// sin starts on the zero line, cos at the top of the padded area
	if !strings.Contains(svg, `d="M20.0,50.0 L60.0,`) {
		t.Error("unexpected sine path start")
	}
	if !strings.Contains(svg, `d="M20.0,10.0 L60.0,`) {
		t.Error("unexpected cosine path start")
	}
	if !strings.Contains(svg, `y1="50.0"`) {
		t.Error("missing zero line")
	}
}

func TestTableToSVGEmpty(t *testing.T) {
	if TableToSVG(nil, 10, 10) != "" {
		t.Error("expected empty output for nil table")
	}
	if TableToSVG(&table.Table{}, 10, 10) != "" {
		t.Error("expected empty output for empty table")
	}
}
