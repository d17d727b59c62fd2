package growth_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bactogrowth/internal/growth"
)

var _ = Describe("Model", func() {
	var m *growth.Model

	BeforeEach(func() {
		m = growth.Default()
	})

	DescribeTable("population follows p * 2^(t/i)",
		func(elapsed, interval, initial float64) {
			res, err := m.ComputeGrowth(elapsed, interval, initial)
			Expect(err).NotTo(HaveOccurred())

			want := initial * math.Pow(2, elapsed/interval)
			Expect(math.Abs(res.FinalPopulation-want) / want).To(BeNumerically("<", 1e-9))
			Expect(res.TotalMassKg).To(BeNumerically("~", res.FinalPopulation*m.UnitMassKg(), want*1e-25))
		},
		Entry("classroom day", 1440.0, 20.0, 1.0),
		Entry("lab sample", 300.0, 30.0, 7.0),
		Entry("partial doubling", 10.0, 20.0, 1.0),
		Entry("shrinking", -60.0, 20.0, 64.0),
	)

	It("fails with a division error when the interval is zero", func() {
		_, err := m.ComputeGrowth(60, 0, 1)
		Expect(err).To(MatchError(growth.ErrDivision))
	})

	Context("when comparing against the Earth", func() {
		It("reports equal masses as at the reference", func() {
			c, err := growth.CompareToReference(growth.EarthMassKg, growth.EarthMassKg)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.AtOrAbove).To(BeTrue())
			Expect(c.Ratio).To(Equal(1.0))
		})

		It("needs roughly 8.5e39 bacteria to match it", func() {
			Expect(m.PopulationToMatch(growth.EarthMassKg)).To(BeNumerically("~", 8.531e39, 1e36))
		})
	})

	Describe("series", func() {
		It("is reproducible and ordered", func() {
			a, err := m.GenerateSeries(600, 20, 1, 30)
			Expect(err).NotTo(HaveOccurred())
			b, err := m.GenerateSeries(600, 20, 1, 30)
			Expect(err).NotTo(HaveOccurred())

			Expect(a).To(Equal(b))
			Expect(a).To(HaveLen(31))
			for i := 1; i < len(a); i++ {
				Expect(a[i].ElapsedMinutes).To(BeNumerically(">", a[i-1].ElapsedMinutes))
			}
		})
	})
})
