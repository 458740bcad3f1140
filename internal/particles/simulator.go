// Package particles simulates a field of discs drifting toward the pointer.
package particles

import (
	"math"
	"math/rand/v2"
)

const (
	SpawnPerMove   = 4
	InitialLife    = 100
	Acceleration   = 0.1
	ShrinkDistance = 20.0
	ShrinkFactor   = 0.95
	MinRadius      = 0.5
	HueStep        = 15
)

type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Life   int
}

// Disc is one particle as drawn on a frame; Hue is in degrees.
type Disc struct {
	X, Y   float64
	Radius float64
	Hue    int
}

// Frame is a cleared surface of Width x Height with the discs to draw on it.
type Frame struct {
	Width, Height float64
	Discs         []Disc
}

type Simulator struct {
	rng       *rand.Rand
	particles []Particle
	pointerX  float64
	pointerY  float64
	hue       int
	width     float64
	height    float64
}

// NewSimulator returns a simulator drawing randomness from rng; a nil rng
// uses a randomly seeded source.
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Simulator{rng: rng}
}

func (s *Simulator) PointerMoved(x, y float64) {
	s.pointerX = x
	s.pointerY = y

	for range SpawnPerMove {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.rng.Float64() * 2
		s.particles = append(s.particles, Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: 2 + s.rng.Float64()*4,
			Life:   InitialLife,
		})
	}
}

func (s *Simulator) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Step advances every particle by one tick and returns the frame to draw.
func (s *Simulator) Step() Frame {
	s.hue = (s.hue + 1) % 360

	frame := Frame{Width: s.width, Height: s.height}
	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]

		dx := s.pointerX - p.X
		dy := s.pointerY - p.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			p.VX += dx / dist * Acceleration
			p.VY += dy / dist * Acceleration
		}
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if dist < ShrinkDistance {
			p.Radius *= ShrinkFactor
		}

		frame.Discs = append(frame.Discs, Disc{
			X:      p.X,
			Y:      p.Y,
			Radius: p.Radius,
			Hue:    (s.hue + HueStep*i) % 360,
		})

		if p.Life > 0 && p.Radius >= MinRadius {
			alive = append(alive, p)
		}
	}
	clear(s.particles[len(alive):])
	s.particles = alive

	return frame
}

// Particles returns a copy of the live particles.
func (s *Simulator) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

func (s *Simulator) Hue() int {
	return s.hue
}

func (s *Simulator) Size() (float64, float64) {
	return s.width, s.height
}
