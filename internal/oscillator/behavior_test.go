package oscillator_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/oscsim/internal/oscillator"
)

var _ = Describe("Axis", func() {
	var (
		extent  oscillator.ExtentConfig[float64]
		elastic oscillator.ElasticConfig
	)

	BeforeEach(func() {
		extent = oscillator.ExtentConfig[float64]{MinStretch: -1, MaxStretch: 1}
		elastic = oscillator.ElasticConfig{
			Mass: 1, HandK: 10, EndK: 5, SnapK: 0, SnapRadius: 1, Drag: 1,
		}
	})

	Context("with constant forcing and no snap features", func() {
		It("converges to the forcing value with zero velocity", func() {
			a, err := oscillator.NewAxis(0, 0, extent, elastic)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 5000; i++ {
				a.Step(0.5, 0.01)
			}

			Expect(a.Value()).To(BeNumerically("~", 0.5, 1e-3))
			Expect(a.Velocity()).To(BeNumerically("~", 0, 1e-3))
		})

		It("approaches a target at the cap without escaping it", func() {
			// mass=1 handK=10 endK=5 drag=1, forcing=1 at the upper cap.
			a, err := oscillator.NewAxis(0, 0, extent, elastic)
			Expect(err).NotTo(HaveOccurred())

			worst := 0.0
			for i := 0; i < 100; i++ {
				v := a.Step(1.0, 0.1)
				if over := v - extent.MaxStretch; over > worst {
					worst = over
				}
			}

			// Underdamped springs may briefly overshoot; the end cap must
			// keep pulling the value back toward the bound.
			Expect(a.Value()).To(BeNumerically("~", 1.0, 0.3))
			Expect(worst).To(BeNumerically("<", 1.0))
		})
	})

	Context("starting far outside the extent", func() {
		It("is pulled back toward the boundary", func() {
			a, err := oscillator.NewAxis(5.0, 0, extent, elastic)
			Expect(err).NotTo(HaveOccurred())

			overshoot := func() float64 {
				return math.Max(0, a.Value()-extent.MaxStretch)
			}

			initial := overshoot()
			for i := 0; i < 3000; i++ {
				a.Step(0.0, 0.005)
			}

			Expect(overshoot()).To(BeNumerically("<", initial/10))
		})
	})

	Context("with snap points", func() {
		It("settles onto a nearby snap point when the hand lets go", func() {
			extent.SnapPoints = []float64{0.5}
			elastic.SnapK = 10
			elastic.SnapRadius = 0.5
			elastic.HandK = 0
			elastic.Drag = 2

			a, err := oscillator.NewAxis(0.62, 0, extent, elastic)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 4000; i++ {
				a.Step(a.Value(), 0.005)
			}

			Expect(a.Value()).To(BeNumerically("~", 0.5, 1e-3))
		})
	})

	Context("with snap-to-end enabled", func() {
		It("magnetizes toward the cap once within the snap radius", func() {
			extent.SnapToEnd = true
			elastic.HandK = 0
			elastic.Drag = 2
			elastic.SnapRadius = 0.5

			a, err := oscillator.NewAxis(0.7, 0, extent, elastic)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 4000; i++ {
				a.Step(a.Value(), 0.005)
			}

			Expect(a.Value()).To(BeNumerically("~", 1.0, 0.02))
		})
	})
})
