package solver_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qwave/internal/analysis"
	"github.com/san-kum/qwave/internal/potential"
	"github.com/san-kum/qwave/internal/quantum"
	"github.com/san-kum/qwave/internal/solver"
	"github.com/san-kum/qwave/internal/waves"
)

var _ = Describe("Evolution", func() {
	var s *solver.Solver

	BeforeEach(func() {
		s = solver.New(1, 1)
	})

	Describe("norm conservation", func() {
		It("holds for a free packet", func() {
			g, err := quantum.NewGrid(-30, 30, 1201)
			Expect(err).NotTo(HaveOccurred())
			psi, err := waves.WavePacket{X0: 0, K0: 3, Sigma: 1.5}.Build(g)
			Expect(err).NotTo(HaveOccurred())

			res, err := s.Evolve(psi, potential.NewFree(), 2, 0.01, 20)
			Expect(err).NotTo(HaveOccurred())

			for _, norm := range analysis.NormHistory(res) {
				Expect(norm).To(BeNumerically("~", 1, 1e-6))
			}
		})

		It("holds across a potential step", func() {
			g, err := quantum.NewGrid(-40, 40, 1601)
			Expect(err).NotTo(HaveOccurred())
			psi, err := waves.WavePacket{X0: -15, K0: 4, Sigma: 2}.Build(g)
			Expect(err).NotTo(HaveOccurred())

			res, err := s.Evolve(psi, potential.NewStep(0, 5), 4, 0.01, 50)
			Expect(err).NotTo(HaveOccurred())

			for _, norm := range analysis.NormHistory(res) {
				Expect(norm).To(BeNumerically("~", 1, 1e-6))
			}
		})

		It("holds inside an infinite well", func() {
			g, err := quantum.NewGrid(-1, 1, 201)
			Expect(err).NotTo(HaveOccurred())
			psi, err := waves.WellMode{A: -1, B: 1, N: 3}.Build(g)
			Expect(err).NotTo(HaveOccurred())
			well, err := potential.NewInfiniteWell(-1, 1)
			Expect(err).NotTo(HaveOccurred())

			res, err := s.Evolve(psi, well, 2, 0.001, 100)
			Expect(err).NotTo(HaveOccurred())

			for _, norm := range analysis.NormHistory(res) {
				Expect(norm).To(BeNumerically("~", 1, 1e-6))
			}
		})
	})

	Describe("free-particle dispersion", func() {
		It("spreads a stationary packet at the analytic rate", func() {
			g, err := quantum.NewGrid(-20, 20, 801)
			Expect(err).NotTo(HaveOccurred())
			psi, err := waves.WavePacket{X0: 0, K0: 0, Sigma: 1}.Build(g)
			Expect(err).NotTo(HaveOccurred())

			res, err := s.Evolve(psi, potential.NewFree(), 2, 0.01, 200)
			Expect(err).NotTo(HaveOccurred())

			// σ(t) = σ0·sqrt(1 + (ħt/(2mσ0²))²); at t=2 with σ0=1 the
			// width is sqrt(2).
			final := res.Snapshot(res.Len() - 1)
			Expect(analysis.Width(final)).To(BeNumerically("~", math.Sqrt2, 0.02*math.Sqrt2))
			Expect(analysis.Center(final)).To(BeNumerically("~", 0, 0.01))
		})

		It("transports a moving packet at the group velocity", func() {
			g, err := quantum.NewGrid(-50, 50, 2001)
			Expect(err).NotTo(HaveOccurred())
			psi, err := waves.WavePacket{X0: -20, K0: 5, Sigma: 2}.Build(g)
			Expect(err).NotTo(HaveOccurred())

			res, err := s.Evolve(psi, potential.NewFree(), 10, 0.01, 100)
			Expect(err).NotTo(HaveOccurred())

			// v_g = ħk0/m = 5, so the center moves from -20 to about 30.
			// The three-point stencil underestimates slightly at this dx.
			final := res.Snapshot(res.Len() - 1)
			Expect(analysis.Center(final)).To(BeNumerically("~", 30, 1.0))
		})
	})

	Describe("infinite well", func() {
		It("keeps a stationary mode's density stationary", func() {
			g, err := quantum.NewGrid(-1, 1, 201)
			Expect(err).NotTo(HaveOccurred())
			psi, err := waves.WellMode{A: -1, B: 1, N: 1}.Build(g)
			Expect(err).NotTo(HaveOccurred())
			well, err := potential.NewInfiniteWell(-1, 1)
			Expect(err).NotTo(HaveOccurred())

			res, err := s.Evolve(psi, well, 2, 0.001, 500)
			Expect(err).NotTo(HaveOccurred())

			initial := res.ProbabilityDensity(0)
			final := res.ProbabilityDensity(res.Len() - 1)
			for i := range initial {
				Expect(final[i]).To(BeNumerically("~", initial[i], 1e-6))
			}
		})
	})

	Describe("step scattering", func() {
		It("splits the packet into reflected and transmitted parts", func() {
			g, err := quantum.NewGrid(-60, 60, 2401)
			Expect(err).NotTo(HaveOccurred())
			psi, err := waves.WavePacket{X0: -20, K0: 5, Sigma: 2}.Build(g)
			Expect(err).NotTo(HaveOccurred())

			res, err := s.Evolve(psi, potential.NewStep(0, 10), 8, 0.005, 200)
			Expect(err).NotTo(HaveOccurred())

			reflected, transmitted := res.TransmissionReflection(0)
			Expect(reflected + transmitted).To(BeNumerically("~", 1, 1e-6))

			// E = k0²/2 = 12.5 above V0 = 10: mostly transmitted, with
			// the plane-wave coefficient near 0.85.
			Expect(transmitted).To(BeNumerically(">", 0.7))
			Expect(transmitted).To(BeNumerically("<", 0.95))
			Expect(reflected).To(BeNumerically(">", 0.05))
		})
	})
})
