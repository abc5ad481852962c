package analysis

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

var _ = Describe("SensitivityAnalyzer", func() {
	newBaseline := func() *SensitivityAnalyzer {
		analyzer, err := NewSensitivityAnalyzer(
			carbon.DefaultPredictor(), carbon.DefaultFeedstock(), carbon.DefaultConditions())
		Expect(err).NotTo(HaveOccurred())
		return analyzer
	}

	It("rejects a nil predictor", func() {
		_, err := NewSensitivityAnalyzer(nil, carbon.DefaultFeedstock(), carbon.DefaultConditions())
		Expect(err).To(HaveOccurred())
	})

	It("rejects an invalid base case", func() {
		feed := carbon.DefaultFeedstock()
		feed.SulfurWtPct = 12
		_, err := NewSensitivityAnalyzer(carbon.DefaultPredictor(), feed, carbon.DefaultConditions())
		Expect(err).To(HaveOccurred())
	})

	It("caches the base-case spacing at construction", func() {
		analyzer := newBaseline()
		want := carbon.DefaultPredictor().PredictD002(carbon.DefaultFeedstock(), carbon.DefaultConditions())
		Expect(analyzer.BaseD002()).To(Equal(want))
	})

	Describe("Analyze", func() {
		It("ranks the baseline parameters by impact", func() {
			entries, err := newBaseline().Analyze(20)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(4))

			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Parameter)
			}
			Expect(names).To(Equal([]string{"Sulfur", "Temperature", "Hold Time", "Heating Rate"}))

			Expect(entries[0].Impact).To(BeNumerically("~", 0.0168, 1e-9))
			Expect(entries[1].Impact).To(BeNumerically("~", 0.0154, 1e-9))
			Expect(entries[2].Impact).To(BeNumerically("~", 0.0032, 1e-9))
			Expect(entries[3].Impact).To(BeNumerically("~", 0.0012, 1e-9))

			for i := 1; i < len(entries); i++ {
				Expect(entries[i].Impact).To(BeNumerically("<=", entries[i-1].Impact))
			}
		})

		It("records opposite-signed deltas for temperature", func() {
			entries, err := newBaseline().Analyze(20)
			Expect(err).NotTo(HaveOccurred())

			var temp SensitivityEntry
			for _, e := range entries {
				if e.Parameter == "Temperature" {
					temp = e
				}
			}
			Expect(temp.LowDelta).To(BeNumerically(">", 0))
			Expect(temp.HighDelta).To(BeNumerically("<", 0))
		})

		It("clamps the heating-rate perturbation to its physical ceiling", func() {
			base, err := carbon.NewProcessConditions(1100, 18, 2, "")
			Expect(err).NotTo(HaveOccurred())
			analyzer, err := NewSensitivityAnalyzer(carbon.DefaultPredictor(), carbon.DefaultFeedstock(), base)
			Expect(err).NotTo(HaveOccurred())

			entries, err := analyzer.Analyze(20)
			Expect(err).NotTo(HaveOccurred())

			for _, e := range entries {
				if e.Parameter == "Heating Rate" {
					// +20% of 18 would be 21.6; the ceiling caps it at 20.
					Expect(e.HighDelta).To(BeNumerically("~", 0.0006*2, 1e-9))
				}
			}
		})

		It("falls back to the default perturbation for non-positive pct", func() {
			defaulted, err := newBaseline().Analyze(0)
			Expect(err).NotTo(HaveOccurred())
			explicit, err := newBaseline().Analyze(DefaultPerturbationPct)
			Expect(err).NotTo(HaveOccurred())
			Expect(defaulted).To(Equal(explicit))
		})

		It("propagates validation errors for unclamped temperature excursions", func() {
			base, err := carbon.NewProcessConditions(1500, 5, 2, "")
			Expect(err).NotTo(HaveOccurred())
			analyzer, err := NewSensitivityAnalyzer(carbon.DefaultPredictor(), carbon.DefaultFeedstock(), base)
			Expect(err).NotTo(HaveOccurred())

			_, err = analyzer.Analyze(20)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Temperature"))
		})
	})
})
