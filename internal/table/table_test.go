package table_test

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trigtab/internal/table"
)

var _ = Describe("Generate", func() {
	It("samples the half-circle at the requested resolution", func() {
		t, err := table.Generate(table.DefaultResolution)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Resolution).To(Equal(180))
		Expect(t.Sin).To(HaveLen(180))
		Expect(t.Cos).To(HaveLen(180))

		for i := range t.Sin {
			angle := math.Pi * float64(i) / 180
			Expect(t.Sin[i]).To(Equal(math.Sin(angle)))
			Expect(t.Cos[i]).To(Equal(math.Cos(angle)))
		}
	})

	It("starts at angle zero", func() {
		t, err := table.Generate(7)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Sin[0]).To(Equal(0.0))
		Expect(t.Cos[0]).To(Equal(1.0))
	})

	It("hits π/2 at the midpoint of an even table", func() {
		t, err := table.Generate(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Sin[2]).To(BeNumerically("~", 1.0, 1e-15))
		Expect(t.Cos[2]).To(BeNumerically("~", 0.0, 1e-15))
		Expect(t.Cos[3]).To(BeNumerically("~", -math.Sqrt2/2, 1e-15))
	})

	DescribeTable("stays within one ulp of a correctly rounded reference",
		func(i int, wantSin, wantCos float64) {
			t, err := table.Generate(table.DefaultResolution)
			Expect(err).NotTo(HaveOccurred())

			for _, c := range []struct{ got, want float64 }{{t.Sin[i], wantSin}, {t.Cos[i], wantCos}} {
				ulp := math.Nextafter(math.Abs(c.want), math.Inf(1)) - math.Abs(c.want)
				Expect(math.Abs(c.got-c.want)).To(BeNumerically("<=", ulp))

				// at 15 digits the two may round to neighbouring tokens
				got, _ := strconv.ParseFloat(strconv.FormatFloat(c.got, 'f', 15, 64), 64)
				want, _ := strconv.ParseFloat(strconv.FormatFloat(c.want, 'f', 15, 64), 64)
				Expect(got).To(BeNumerically("~", want, 1.5e-15))
			}
		},
		Entry("1°", 1, 0.01745240643728351, 0.9998476951563913),
		Entry("30°", 30, 0.49999999999999994, 0.8660254037844387),
		Entry("43°", 43, 0.6819983600624985, 0.7313537016191706),
		Entry("45°", 45, 0.7071067811865475, 0.7071067811865476),
		Entry("60°", 60, 0.8660254037844386, 0.5000000000000001),
		Entry("85°", 85, 0.9961946980917455, 0.08715574274765814),
		Entry("89°", 89, 0.9998476951563913, 0.017452406437283376),
		Entry("120°", 120, 0.8660254037844387, -0.4999999999999998),
		Entry("179°", 179, 0.01745240643728344, -0.9998476951563913),
	)

	It("keeps every entry on the unit circle", func() {
		t, err := table.Generate(361)
		Expect(err).NotTo(HaveOccurred())
		for i := range t.Sin {
			Expect(t.Sin[i]).To(BeNumerically(">=", -1))
			Expect(t.Sin[i]).To(BeNumerically("<=", 1))
			Expect(t.Cos[i]).To(BeNumerically(">=", -1))
			Expect(t.Cos[i]).To(BeNumerically("<=", 1))
			Expect(t.Sin[i]*t.Sin[i] + t.Cos[i]*t.Cos[i]).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("is deterministic", func() {
		a, _ := table.Generate(180)
		b, _ := table.Generate(180)
		Expect(a).To(Equal(b))
	})

	DescribeTable("rejects non-positive resolutions",
		func(n int) {
			t, err := table.Generate(n)
			Expect(t).To(BeNil())
			Expect(errors.Is(err, table.ErrInvalidResolution)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("resolution"))
			Expect(errors.FlattenHints(err)).NotTo(BeEmpty())
		},
		Entry("zero", 0),
		Entry("negative", -1),
		Entry("very negative", math.MinInt32),
	)
})

var _ = Describe("Degrees", func() {
	It("maps indices onto [0, 180)", func() {
		t, _ := table.Generate(360)
		Expect(t.Degrees(0)).To(Equal(0.0))
		Expect(t.Degrees(90)).To(Equal(45.0))
		Expect(t.Degrees(359)).To(Equal(179.5))
		Expect(t.Len()).To(Equal(360))
	})
})

var _ = Describe("Quantize", func() {
	var t *table.Table

	BeforeEach(func() {
		var err error
		t, err = table.Generate(180)
		Expect(err).NotTo(HaveOccurred())
	})

	It("matches the committed 10.10 tables of the lane detector", func() {
		f, err := table.Quantize(t, table.DefaultBits)
		Expect(err).NotTo(HaveOccurred())

		Expect(uint16(f.Sin[0])).To(Equal(uint16(0x0)))
		Expect(uint16(f.Sin[1])).To(Equal(uint16(0x11)))
		Expect(uint16(f.Sin[30])).To(Equal(uint16(0x200)))
		Expect(uint16(f.Sin[90])).To(Equal(uint16(0x400)))
		Expect(uint16(f.Sin[179])).To(Equal(uint16(0x11)))

		Expect(uint16(f.Cos[0])).To(Equal(uint16(0x400)))
		Expect(uint16(f.Cos[1])).To(Equal(uint16(0x3ff)))
		Expect(uint16(f.Cos[90])).To(Equal(uint16(0x0)))
		Expect(uint16(f.Cos[91])).To(Equal(uint16(0xffef)))
		Expect(uint16(f.Cos[179])).To(Equal(uint16(0xfc01)))
	})

	It("truncates toward zero", func() {
		f, err := table.Quantize(t, table.DefaultBits)
		Expect(err).NotTo(HaveOccurred())
		for i := range t.Cos {
			Expect(math.Abs(f.Float(f.Cos[i]))).To(BeNumerically("<=", math.Abs(t.Cos[i])+1e-6))
		}
	})

	It("accepts the widest scale that still fits int16", func() {
		f, err := table.Quantize(t, table.MaxBits)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Cos[0]).To(Equal(int16(1 << table.MaxBits)))
	})

	It("rejects scales that overflow int16", func() {
		_, err := table.Quantize(t, table.MaxBits+1)
		Expect(errors.Is(err, table.ErrInvalidBits)).To(BeTrue())
	})
})
