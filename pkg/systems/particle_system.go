package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/stroll/pkg/config"
)

// Particle is one slot in the pooled buffer. Visual only; particles never
// affect gameplay state.
type Particle struct {
	X, Y    float64
	VX, VY  float64 // pixels per second
	Life    float64 // remaining seconds; <= 0 means the slot is free
	MaxLife float64
	Size    float64
	Color   color.RGBA
	Gravity float64 // downward acceleration, pixels per second squared
}

// ParticleSystem owns a fixed-size particle pool. Slots are reused
// round-robin, so sustained play allocates nothing per frame. Bursts are
// spawned on pickups, dust while the player runs on the ground.
type ParticleSystem struct {
	pool   []Particle
	cursor int

	dustCooldown float64
}

// NewParticleSystem creates the system with its pool preallocated.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{
		pool: make([]Particle, config.MaxParticles),
	}
}

// Update ages and moves every live particle.
func (ps *ParticleSystem) Update(deltaTime float64) {
	if ps.dustCooldown > 0 {
		ps.dustCooldown -= deltaTime
	}
	for i := range ps.pool {
		p := &ps.pool[i]
		if p.Life <= 0 {
			continue
		}
		p.Life -= deltaTime
		p.VY += p.Gravity * deltaTime
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
	}
}

// EmitBurst spawns a radial burst at (x, y), used on collectible pickup.
func (ps *ParticleSystem) EmitBurst(x, y float64, clr color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := 60 + rand.Float64()*80
		life := 0.5 + rand.Float64()*0.4
		ps.spawn(Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - 40,
			Life:    life,
			MaxLife: life,
			Size:    2 + rand.Float64()*3,
			Color:   clr,
			Gravity: 160,
		})
	}
}

// EmitDust spawns a small puff at the player's feet. Rate limited so a
// running player leaves a trail instead of a cloud.
func (ps *ParticleSystem) EmitDust(x, y float64) {
	if ps.dustCooldown > 0 {
		return
	}
	ps.dustCooldown = 0.08

	for i := 0; i < 2; i++ {
		life := 0.25 + rand.Float64()*0.2
		ps.spawn(Particle{
			X:       x + rand.Float64()*8 - 4,
			Y:       y,
			VX:      rand.Float64()*30 - 15,
			VY:      -10 - rand.Float64()*20,
			Life:    life,
			MaxLife: life,
			Size:    1.5 + rand.Float64()*2,
			Color:   color.RGBA{R: 170, G: 155, B: 130, A: 255},
		})
	}
}

// Particles returns the pool for the render pass. Callers must treat it as
// read-only and skip slots with Life <= 0.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.pool
}

// ActiveCount returns how many slots are currently live.
func (ps *ParticleSystem) ActiveCount() int {
	n := 0
	for i := range ps.pool {
		if ps.pool[i].Life > 0 {
			n++
		}
	}
	return n
}

// Reset clears every slot; called on session restart.
func (ps *ParticleSystem) Reset() {
	for i := range ps.pool {
		ps.pool[i].Life = 0
	}
	ps.cursor = 0
	ps.dustCooldown = 0
}

// spawn writes into the next slot, overwriting the oldest particle when the
// pool is full.
func (ps *ParticleSystem) spawn(p Particle) {
	ps.pool[ps.cursor] = p
	ps.cursor = (ps.cursor + 1) % len(ps.pool)
}
