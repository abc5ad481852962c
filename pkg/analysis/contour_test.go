package analysis

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

var _ = Describe("GenerateContourData", func() {
	It("produces an n by n grid over the default ranges", func() {
		data, err := GenerateContourData(carbon.DefaultPredictor(), carbon.DefaultFeedstock(),
			DefaultContourTempRange, DefaultContourSulfurRange, 10)
		Expect(err).NotTo(HaveOccurred())

		Expect(data.Temps).To(HaveLen(10))
		Expect(data.Sulfurs).To(HaveLen(10))
		Expect(data.Temps[0]).To(Equal(900.0))
		Expect(data.Temps[9]).To(Equal(1300.0))
		Expect(data.Sulfurs[0]).To(Equal(1.0))
		Expect(data.Sulfurs[9]).To(Equal(6.0))

		rows, cols := data.D002.Dims()
		Expect(rows).To(Equal(10))
		Expect(cols).To(Equal(10))
		rows, cols = data.Capacity.Dims()
		Expect(rows).To(Equal(10))
		Expect(cols).To(Equal(10))
	})

	It("keeps every spacing inside the physical clamps", func() {
		data, err := GenerateContourData(carbon.DefaultPredictor(), carbon.DefaultFeedstock(),
			DefaultContourTempRange, DefaultContourSulfurRange, 10)
		Expect(err).NotTo(HaveOccurred())

		inWindow := 0
		for i := 0; i < 10; i++ {
			for j := 0; j < 10; j++ {
				d002 := data.D002.At(i, j)
				Expect(d002).To(BeNumerically(">=", 0.335))
				Expect(d002).To(BeNumerically("<=", 0.42))
				if d002 >= carbon.GoldilocksMinNM && d002 <= carbon.GoldilocksMaxNM {
					inWindow++
				}
				Expect(data.Capacity.At(i, j)).To(BeNumerically(">", 0))
			}
		}
		Expect(inWindow).To(BeNumerically(">", 0))
	})

	It("rejects degenerate inputs", func() {
		_, err := GenerateContourData(nil, carbon.DefaultFeedstock(),
			DefaultContourTempRange, DefaultContourSulfurRange, 10)
		Expect(err).To(HaveOccurred())

		_, err = GenerateContourData(carbon.DefaultPredictor(), carbon.DefaultFeedstock(),
			DefaultContourTempRange, DefaultContourSulfurRange, 1)
		Expect(err).To(HaveOccurred())

		_, err = GenerateContourData(carbon.DefaultPredictor(), carbon.DefaultFeedstock(),
			r1.Interval{Min: 1300, Max: 900}, DefaultContourSulfurRange, 10)
		Expect(err).To(HaveOccurred())
	})
})
