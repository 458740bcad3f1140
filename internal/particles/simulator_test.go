package particles

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator() *Simulator {
	return NewSimulator(rand.New(rand.NewPCG(1, 2)))
}

func TestPointerMovedSpawnsParticles(t *testing.T) {
	sim := newTestSimulator()

	sim.PointerMoved(100, 50)

	particles := sim.Particles()
	require.Len(t, particles, SpawnPerMove)
	for _, p := range particles {
		assert.Equal(t, 100.0, p.X)
		assert.Equal(t, 50.0, p.Y)
		assert.Equal(t, InitialLife, p.Life)
		assert.GreaterOrEqual(t, p.Radius, 2.0)
		assert.Less(t, p.Radius, 6.0)
		assert.Less(t, p.VX*p.VX+p.VY*p.VY, 4.0)
	}
}

func TestStepAdvancesHueAndColorsDiscs(t *testing.T) {
	sim := newTestSimulator()
	sim.Resize(640, 480)
	sim.PointerMoved(10, 10)

	frame := sim.Step()

	assert.Equal(t, 1, sim.Hue())
	assert.Equal(t, 640.0, frame.Width)
	assert.Equal(t, 480.0, frame.Height)
	require.Len(t, frame.Discs, SpawnPerMove)
	for i, disc := range frame.Discs {
		assert.Equal(t, (1+HueStep*i)%360, disc.Hue)
	}
}

func TestHueWrapsAt360(t *testing.T) {
	sim := newTestSimulator()

	for range 360 {
		sim.Step()
	}

	assert.Equal(t, 0, sim.Hue())
}

func TestParticlesExpire(t *testing.T) {
	sim := newTestSimulator()
	sim.PointerMoved(0, 0)

	for range InitialLife {
		sim.Step()
	}

	assert.Empty(t, sim.Particles())
	assert.Empty(t, sim.Step().Discs)
}

func TestParticlesNearPointerShrink(t *testing.T) {
	sim := NewSimulator(nil)
	sim.particles = []Particle{{X: 5, Y: 0, Radius: 4, Life: InitialLife}}

	sim.Step()

	particles := sim.Particles()
	require.Len(t, particles, 1)
	assert.InDelta(t, 4*ShrinkFactor, particles[0].Radius, 1e-9)
	assert.InDelta(t, -Acceleration, particles[0].VX, 1e-9)
	assert.Equal(t, InitialLife-1, particles[0].Life)
}

func TestParticlesFarFromPointerKeepRadius(t *testing.T) {
	sim := NewSimulator(nil)
	sim.particles = []Particle{{X: 100, Y: 0, Radius: 4, Life: InitialLife}}

	sim.Step()

	assert.Equal(t, 4.0, sim.Particles()[0].Radius)
}

func TestTinyParticlesAreRemoved(t *testing.T) {
	sim := NewSimulator(nil)
	sim.particles = []Particle{{X: 1, Y: 1, Radius: 0.51, Life: InitialLife}}

	frame := sim.Step()

	assert.Len(t, frame.Discs, 1)
	assert.Empty(t, sim.Particles())
}

func TestResizeLeavesParticlesUntouched(t *testing.T) {
	sim := newTestSimulator()
	sim.PointerMoved(3, 4)
	before := sim.Particles()

	sim.Resize(10, 20)

	assert.Equal(t, before, sim.Particles())
	w, h := sim.Size()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 20.0, h)
}
