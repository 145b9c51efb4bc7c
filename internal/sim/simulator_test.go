package sim_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/swirlsim/internal/filament"
	"github.com/san-kum/swirlsim/internal/sim"
	"github.com/san-kum/swirlsim/internal/vec"
)

// drift moves every point by a constant velocity.
type drift struct{ v vec.Vec3 }

func (d drift) Name() string { return "drift" }

func (d drift) Step(s sim.State, t, dt float64) (sim.State, error) {
	out := s.Clone()
	for i := range out.Positions {
		out.Positions[i] = r3.Add(out.Positions[i], r3.Scale(dt, d.v))
	}
	return out, nil
}

type poison struct{ after int }

func (p *poison) Name() string { return "poison" }

func (p *poison) Step(s sim.State, t, dt float64) (sim.State, error) {
	out := s.Clone()
	p.after--
	if p.after < 0 {
		out.Positions[0].X = math.NaN()
	}
	return out, nil
}

type failing struct{}

func (failing) Name() string { return "failing" }

func (failing) Step(sim.State, float64, float64) (sim.State, error) {
	return sim.State{}, errors.New("boom")
}

type zHeight struct{ last float64 }

func (m *zHeight) Name() string { return "z" }
func (m *zHeight) Observe(s sim.State, t float64) {
	m.last = filament.Curve(s.Positions).Centroid().Z
}
func (m *zHeight) Value() float64 { return m.last }
func (m *zHeight) Reset()         { m.last = 0 }

type counter struct{ calls int }

func (c *counter) OnStep(sim.State, float64) { c.calls++ }

func ringState() sim.State {
	ring, err := filament.Ring(1, 32, vec.Vec3{})
	Expect(err).NotTo(HaveOccurred())
	return sim.State{Positions: ring, Tangents: filament.Tangents(ring)}
}

var _ = Describe("Simulator", func() {
	var (
		ctx context.Context
		cfg sim.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = sim.Config{Dt: 0.1, Steps: 10, RecordEvery: 5, RefreshTangents: true, ValidateState: true}
	})

	It("advances time and records every n-th state", func() {
		s := sim.New(drift{v: vec.Vec3{Z: 1}})
		res, err := s.Run(ctx, ringState(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.StepsTaken).To(Equal(10))
		Expect(res.States).To(HaveLen(3))
		Expect(res.Times).To(HaveLen(3))
		Expect(res.Times[2]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(res.Final().Positions[0].Z).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("does not modify the initial state", func() {
		x0 := ringState()
		before := x0.Clone()
		_, err := sim.New(drift{v: vec.Vec3{X: 1}}).Run(ctx, x0, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(x0.Positions).To(Equal(before.Positions))
	})

	It("feeds metrics and observers once per step plus the final state", func() {
		m := &zHeight{}
		obs := &counter{}
		s := sim.New(drift{v: vec.Vec3{Z: 2}})
		s.AddMetric(m)
		s.AddObserver(obs)

		res, err := s.Run(ctx, ringState(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(obs.calls).To(Equal(11))
		Expect(res.History["z"]).To(HaveLen(11))
		Expect(res.Metrics["z"]).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("refreshes tangents after each step", func() {
		res, err := sim.New(drift{v: vec.Vec3{Y: 1}}).Run(ctx, ringState(), cfg)
		Expect(err).NotTo(HaveOccurred())
		final := res.Final()
		want := filament.Tangents(final.Positions)
		for i := range want {
			Expect(r3.Norm(r3.Sub(final.Tangents[i], want[i]))).To(BeNumerically("<", 1e-12))
		}
	})

	It("reports the step at which a state went invalid", func() {
		_, err := sim.New(&poison{after: 3}).Run(ctx, ringState(), cfg)
		Expect(err).To(MatchError(sim.ErrInvalidState))

		var simErr *sim.SimulationError
		Expect(errors.As(err, &simErr)).To(BeTrue())
		Expect(simErr.Step).To(Equal(3))
	})

	It("wraps stepper failures", func() {
		_, err := sim.New(failing{}).Run(ctx, ringState(), cfg)
		var simErr *sim.SimulationError
		Expect(errors.As(err, &simErr)).To(BeTrue())
		Expect(simErr.Step).To(Equal(0))
		Expect(err.Error()).To(Equal("boom"))
	})

	It("rejects an invalid initial state", func() {
		x0 := ringState()
		x0.Tangents = x0.Tangents[:4]
		_, err := sim.New(drift{}).Run(ctx, x0, cfg)
		Expect(errors.Is(err, sim.ErrInvalidState)).To(BeTrue())
	})

	DescribeTable("rejects invalid configurations",
		func(mutate func(*sim.Config)) {
			mutate(&cfg)
			_, err := sim.New(drift{}).Run(ctx, ringState(), cfg)
			Expect(errors.Is(err, sim.ErrInvalidConfig)).To(BeTrue())
		},
		Entry("negative dt", func(c *sim.Config) { c.Dt = -1 }),
		Entry("negative steps", func(c *sim.Config) { c.Steps = -1 }),
		Entry("negative record interval", func(c *sim.Config) { c.RecordEvery = -2 }),
	)

	It("stops when the context is cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		res, err := sim.New(drift{}).Run(cctx, ringState(), cfg)
		Expect(err).To(MatchError(context.Canceled))
		Expect(res.StepsTaken).To(Equal(0))
	})
})

var _ = Describe("Sweep", func() {
	It("runs independent jobs and keeps their order", func() {
		cfg := sim.Config{Dt: 0.1, Steps: 10}
		jobs := make([]sim.Job, 4)
		for i := range jobs {
			jobs[i] = sim.Job{
				Name:   "job",
				Sim:    sim.New(drift{v: vec.Vec3{Z: float64(i)}}),
				Init:   ringState(),
				Config: cfg,
			}
		}

		results, err := sim.Sweep(context.Background(), jobs, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		for i, res := range results {
			Expect(res.Final().Positions[0].Z).To(BeNumerically("~", float64(i), 1e-12))
		}
	})

	It("returns the first failure", func() {
		jobs := []sim.Job{
			{Sim: sim.New(drift{}), Init: ringState(), Config: sim.Config{Dt: 0.1, Steps: 5}},
			{Sim: sim.New(failing{}), Init: ringState(), Config: sim.Config{Dt: 0.1, Steps: 5}},
		}
		_, err := sim.Sweep(context.Background(), jobs, 0)
		Expect(err).To(HaveOccurred())
	})
})
