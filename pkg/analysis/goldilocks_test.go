package analysis

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

var _ = Describe("GoldilocksAnalyzer", func() {
	var analyzer *GoldilocksAnalyzer

	BeforeEach(func() {
		var err error
		analyzer, err = NewGoldilocksAnalyzer(carbon.DefaultPredictor())
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a nil predictor", func() {
		_, err := NewGoldilocksAnalyzer(nil)
		Expect(err).To(HaveOccurred())
	})

	Describe("Diagnose", func() {
		It("returns one advisory per criterion in fixed order", func() {
			res := carbon.DefaultPredictor().Predict(carbon.DefaultFeedstock(), carbon.DefaultConditions())
			recs := analyzer.Diagnose(res)

			Expect(recs).To(HaveLen(3))
			Expect(recs[0]).To(ContainSubstring("in Goldilocks window"))
			Expect(recs[1]).To(ContainSubstring("capacity adequate"))
			Expect(recs[2]).To(ContainSubstring("ICE low"))
		})

		It("flags under-expanded spacing with corrective directions", func() {
			res := carbon.NewHardCarbonResult(0.35, 150, 80, 10, 40)
			recs := analyzer.Diagnose(res)

			Expect(recs[0]).To(ContainSubstring("d002 too low"))
			Expect(recs[0]).To(ContainSubstring("lower temperature"))
			Expect(recs[1]).To(ContainSubstring("capacity low"))
			Expect(recs[2]).To(ContainSubstring("ICE adequate"))
		})

		It("flags over-expanded spacing with corrective directions", func() {
			res := carbon.NewHardCarbonResult(0.41, 250, 60, 30, 40)
			recs := analyzer.Diagnose(res)

			Expect(recs[0]).To(ContainSubstring("d002 too high"))
			Expect(recs[0]).To(ContainSubstring("raise temperature"))
		})
	})

	Describe("FindTempWindow", func() {
		It("finds the feasible window for the default feed", func() {
			window, err := analyzer.FindTempWindow(carbon.DefaultFeedstock(), 5, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(window.MinTempC).To(HaveValue(Equal(850)))
			Expect(window.MaxTempC).To(HaveValue(Equal(1220)))
			Expect(window.OptimalTempC).To(HaveValue(Equal(1035)))
			Expect(window.WindowWidthC).To(Equal(370))
		})

		It("reports an empty window for a feed with no feasible temperature", func() {
			feed, err := carbon.NewFeedstock(8, 1.0, 85, 22, "high-sulfur residue")
			Expect(err).NotTo(HaveOccurred())

			window, err := analyzer.FindTempWindow(feed, 5, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(window.MinTempC).To(BeNil())
			Expect(window.MaxTempC).To(BeNil())
			Expect(window.OptimalTempC).To(BeNil())
			Expect(window.WindowWidthC).To(BeZero())
		})

		It("rejects out-of-range heating rates", func() {
			_, err := analyzer.FindTempWindow(carbon.DefaultFeedstock(), 100, 2)
			Expect(err).To(HaveOccurred())
		})
	})
})
