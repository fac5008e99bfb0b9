package graphics

import (
	"errors"
	"math"

	"github.com/LukeMS/love2d/mathx"
)

// Particle system errors.
var (
	// ErrInvalidBufferSize is returned for a zero, negative or
	// over-limit particle buffer size.
	ErrInvalidBufferSize = errors.New("graphics: invalid particle buffer size")

	// ErrInvalidEmissionRate is returned for a negative emission rate.
	// The previous rate is kept.
	ErrInvalidEmissionRate = errors.New("graphics: invalid emission rate")
)

// MaxParticles is the hard upper limit on a particle buffer.
const MaxParticles = math.MaxInt32 / 4

// InsertMode selects where newly spawned particles enter the active
// list, which controls their draw order.
type InsertMode int

const (
	// InsertModeTop appends new particles after the tail.
	InsertModeTop InsertMode = iota
	// InsertModeBottom prepends new particles before the head.
	InsertModeBottom
	// InsertModeRandom splices new particles in at a random position.
	InsertModeRandom
)

// AreaSpreadDistribution selects how spawn positions scatter around the
// emitter.
type AreaSpreadDistribution int

const (
	// DistributionNone spawns exactly at the emitter position.
	DistributionNone AreaSpreadDistribution = iota
	// DistributionUniform scatters uniformly in a rectangle.
	DistributionUniform
	// DistributionNormal scatters normally, per axis.
	DistributionNormal
)

// ParticleSystem simulates and draws a pool of particles. All methods
// mutate in place; callers must serialize access per instance.
type ParticleSystem struct {
	pool  []particle
	verts []Vertex
	free  int
	head  int
	tail  int

	rng     *mathx.RandomGenerator
	texture Texture

	active          bool
	insertMode      InsertMode
	maxParticles    int
	activeParticles int

	emissionRate float64
	emitCounter  float64

	position     Vec2
	prevPosition Vec2

	areaSpreadDistribution AreaSpreadDistribution
	areaSpread             Vec2

	lifetime float64
	life     float64

	particleLifeMin float64
	particleLifeMax float64

	direction float64
	spread    float64

	speedMin float64
	speedMax float64

	linearAccelerationMin Vec2
	linearAccelerationMax Vec2

	radialAccelerationMin     float64
	radialAccelerationMax     float64
	tangentialAccelerationMin float64
	tangentialAccelerationMax float64

	linearDampingMin float64
	linearDampingMax float64

	sizes         []float64
	sizeVariation float64

	rotationMin   float64
	rotationMax   float64
	spinStart     float64
	spinEnd       float64
	spinVariation float64

	offsetX float64
	offsetY float64

	colors []Color
	quads  []*Quad

	relativeRotation bool
}

// NewParticleSystem creates a particle system drawing the given texture
// with a buffer of size particles. The texture reference is non-owning;
// the system must not outlive it.
func NewParticleSystem(texture Texture, size int) (*ParticleSystem, error) {
	ps := &ParticleSystem{
		rng:      mathx.NewRandomGenerator(),
		texture:  texture,
		active:   true,
		lifetime: -1,
		sizes:    []float64{1},
		colors:   []Color{White},
	}
	if texture != nil {
		ps.offsetX = float64(texture.Width()) * 0.5
		ps.offsetY = float64(texture.Height()) * 0.5
	}
	if err := ps.SetBufferSize(size); err != nil {
		return nil, err
	}
	return ps, nil
}

// Clone returns a system with the same configuration and an empty pool
// of the same size.
func (ps *ParticleSystem) Clone() *ParticleSystem {
	c := &ParticleSystem{
		rng:                       mathx.NewRandomGenerator(),
		texture:                   ps.texture,
		active:                    ps.active,
		insertMode:                ps.insertMode,
		emissionRate:              ps.emissionRate,
		position:                  ps.position,
		prevPosition:              ps.prevPosition,
		areaSpreadDistribution:    ps.areaSpreadDistribution,
		areaSpread:                ps.areaSpread,
		lifetime:                  ps.lifetime,
		life:                      ps.lifetime,
		particleLifeMin:           ps.particleLifeMin,
		particleLifeMax:           ps.particleLifeMax,
		direction:                 ps.direction,
		spread:                    ps.spread,
		speedMin:                  ps.speedMin,
		speedMax:                  ps.speedMax,
		linearAccelerationMin:     ps.linearAccelerationMin,
		linearAccelerationMax:     ps.linearAccelerationMax,
		radialAccelerationMin:     ps.radialAccelerationMin,
		radialAccelerationMax:     ps.radialAccelerationMax,
		tangentialAccelerationMin: ps.tangentialAccelerationMin,
		tangentialAccelerationMax: ps.tangentialAccelerationMax,
		linearDampingMin:          ps.linearDampingMin,
		linearDampingMax:          ps.linearDampingMax,
		sizes:                     append([]float64(nil), ps.sizes...),
		sizeVariation:             ps.sizeVariation,
		rotationMin:               ps.rotationMin,
		rotationMax:               ps.rotationMax,
		spinStart:                 ps.spinStart,
		spinEnd:                   ps.spinEnd,
		spinVariation:             ps.spinVariation,
		offsetX:                   ps.offsetX,
		offsetY:                   ps.offsetY,
		colors:                    append([]Color(nil), ps.colors...),
		quads:                     append([]*Quad(nil), ps.quads...),
		relativeRotation:          ps.relativeRotation,
	}
	// SetBufferSize cannot fail here: the source size was validated.
	_ = c.SetBufferSize(ps.maxParticles)
	return c
}

// SetBufferSize resizes the particle buffer. The resize is destructive:
// all live particles and emission state are reset.
func (ps *ParticleSystem) SetBufferSize(size int) error {
	if size <= 0 || size > MaxParticles {
		return ErrInvalidBufferSize
	}
	ps.pool = make([]particle, size)
	ps.verts = make([]Vertex, size*4)
	ps.maxParticles = size
	ps.Reset()
	return nil
}

// BufferSize returns the particle buffer capacity.
func (ps *ParticleSystem) BufferSize() int {
	return ps.maxParticles
}

// SetRandomGenerator replaces the system's random generator. Useful for
// deterministic replays and tests.
func (ps *ParticleSystem) SetRandomGenerator(rng *mathx.RandomGenerator) {
	ps.rng = rng
}

// SetTexture swaps the drawn texture.
func (ps *ParticleSystem) SetTexture(texture Texture) {
	ps.texture = texture
}

// Texture returns the drawn texture.
func (ps *ParticleSystem) Texture() Texture {
	return ps.texture
}

// SetInsertMode selects where new particles enter the draw order.
func (ps *ParticleSystem) SetInsertMode(mode InsertMode) {
	ps.insertMode = mode
}

// GetInsertMode returns the current insert mode.
func (ps *ParticleSystem) GetInsertMode() InsertMode {
	return ps.insertMode
}

// SetEmissionRate sets the number of particles emitted per second.
// A negative rate is rejected and the previous value kept; a zero rate
// emits nothing.
func (ps *ParticleSystem) SetEmissionRate(rate float64) error {
	if rate < 0 {
		return ErrInvalidEmissionRate
	}
	ps.emissionRate = rate
	return nil
}

// EmissionRate returns the particles emitted per second.
func (ps *ParticleSystem) EmissionRate() float64 {
	return ps.emissionRate
}

// SetEmitterLifetime sets how long the emitter keeps emitting, in
// seconds. -1 means forever.
func (ps *ParticleSystem) SetEmitterLifetime(life float64) {
	ps.life = life
	ps.lifetime = life
}

// EmitterLifetime returns the configured emitter lifetime.
func (ps *ParticleSystem) EmitterLifetime() float64 {
	return ps.lifetime
}

// SetParticleLifetime sets the lifetime range newly spawned particles
// draw from. A zero max collapses the range to min.
func (ps *ParticleSystem) SetParticleLifetime(min, max float64) {
	ps.particleLifeMin = min
	if max == 0 {
		ps.particleLifeMax = min
	} else {
		ps.particleLifeMax = max
	}
}

// ParticleLifetime returns the particle lifetime range.
func (ps *ParticleSystem) ParticleLifetime() (min, max float64) {
	return ps.particleLifeMin, ps.particleLifeMax
}

// SetPosition teleports the emitter: both the current and previous
// position are set, so no spawn interpolation happens across the jump.
func (ps *ParticleSystem) SetPosition(x, y float64) {
	ps.position = Vec2{X: x, Y: y}
	ps.prevPosition = ps.position
}

// Position returns the emitter position.
func (ps *ParticleSystem) Position() Vec2 {
	return ps.position
}

// MoveTo moves the emitter, keeping the previous position so spawns
// within the next update are spread along the motion path.
func (ps *ParticleSystem) MoveTo(x, y float64) {
	ps.position = Vec2{X: x, Y: y}
}

// SetAreaSpread configures the spawn position scatter.
func (ps *ParticleSystem) SetAreaSpread(distribution AreaSpreadDistribution, x, y float64) {
	ps.areaSpread = Vec2{X: x, Y: y}
	ps.areaSpreadDistribution = distribution
}

// AreaSpread returns the scatter distribution and its parameters.
func (ps *ParticleSystem) AreaSpread() (AreaSpreadDistribution, Vec2) {
	return ps.areaSpreadDistribution, ps.areaSpread
}

// SetDirection sets the emission direction in radians.
func (ps *ParticleSystem) SetDirection(direction float64) {
	ps.direction = direction
}

// Direction returns the emission direction in radians.
func (ps *ParticleSystem) Direction() float64 {
	return ps.direction
}

// SetSpread sets the emission arc in radians, centered on the
// direction.
func (ps *ParticleSystem) SetSpread(spread float64) {
	ps.spread = spread
}

// Spread returns the emission arc in radians.
func (ps *ParticleSystem) Spread() float64 {
	return ps.spread
}

// SetSpeed sets the initial speed range.
func (ps *ParticleSystem) SetSpeed(min, max float64) {
	ps.speedMin = min
	ps.speedMax = max
}

// Speed returns the initial speed range.
func (ps *ParticleSystem) Speed() (min, max float64) {
	return ps.speedMin, ps.speedMax
}

// SetLinearAcceleration sets the per-axis linear acceleration ranges.
func (ps *ParticleSystem) SetLinearAcceleration(xmin, ymin, xmax, ymax float64) {
	ps.linearAccelerationMin = Vec2{X: xmin, Y: ymin}
	ps.linearAccelerationMax = Vec2{X: xmax, Y: ymax}
}

// LinearAcceleration returns the per-axis acceleration ranges.
func (ps *ParticleSystem) LinearAcceleration() (min, max Vec2) {
	return ps.linearAccelerationMin, ps.linearAccelerationMax
}

// SetRadialAcceleration sets the acceleration range along the
// origin-to-particle axis.
func (ps *ParticleSystem) SetRadialAcceleration(min, max float64) {
	ps.radialAccelerationMin = min
	ps.radialAccelerationMax = max
}

// RadialAcceleration returns the radial acceleration range.
func (ps *ParticleSystem) RadialAcceleration() (min, max float64) {
	return ps.radialAccelerationMin, ps.radialAccelerationMax
}

// SetTangentialAcceleration sets the acceleration range perpendicular
// to the radial axis.
func (ps *ParticleSystem) SetTangentialAcceleration(min, max float64) {
	ps.tangentialAccelerationMin = min
	ps.tangentialAccelerationMax = max
}

// TangentialAcceleration returns the tangential acceleration range.
func (ps *ParticleSystem) TangentialAcceleration() (min, max float64) {
	return ps.tangentialAccelerationMin, ps.tangentialAccelerationMax
}

// SetLinearDamping sets the velocity damping coefficient range.
func (ps *ParticleSystem) SetLinearDamping(min, max float64) {
	ps.linearDampingMin = min
	ps.linearDampingMax = max
}

// LinearDamping returns the damping coefficient range.
func (ps *ParticleSystem) LinearDamping() (min, max float64) {
	return ps.linearDampingMin, ps.linearDampingMax
}

// SetSizes sets the size keyframe curve. An empty call is ignored; the
// curve always keeps at least one entry.
func (ps *ParticleSystem) SetSizes(sizes ...float64) {
	if len(sizes) == 0 {
		return
	}
	ps.sizes = append([]float64(nil), sizes...)
}

// Sizes returns the size keyframe curve.
func (ps *ParticleSystem) Sizes() []float64 {
	return append([]float64(nil), ps.sizes...)
}

// SetSizeVariation sets how much each particle's size animation is
// desynchronized, in [0, 1].
func (ps *ParticleSystem) SetSizeVariation(variation float64) {
	ps.sizeVariation = variation
}

// SizeVariation returns the size animation desynchronization amount.
func (ps *ParticleSystem) SizeVariation() float64 {
	return ps.sizeVariation
}

// SetRotation sets the initial rotation range in radians.
func (ps *ParticleSystem) SetRotation(min, max float64) {
	ps.rotationMin = min
	ps.rotationMax = max
}

// Rotation returns the initial rotation range.
func (ps *ParticleSystem) Rotation() (min, max float64) {
	return ps.rotationMin, ps.rotationMax
}

// SetSpin sets the angular velocity at birth and death, in radians per
// second; each particle interpolates between the two over its life.
func (ps *ParticleSystem) SetSpin(start, end float64) {
	ps.spinStart = start
	ps.spinEnd = end
}

// Spin returns the birth and death angular velocities.
func (ps *ParticleSystem) Spin() (start, end float64) {
	return ps.spinStart, ps.spinEnd
}

// SetSpinVariation sets the spin variation in [0, 1].
func (ps *ParticleSystem) SetSpinVariation(variation float64) {
	ps.spinVariation = variation
}

// SpinVariation returns the spin variation.
func (ps *ParticleSystem) SpinVariation() float64 {
	return ps.spinVariation
}

// SetOffset sets the rotation/scale center relative to the particle's
// top-left corner. Defaults to the texture center.
func (ps *ParticleSystem) SetOffset(x, y float64) {
	ps.offsetX = x
	ps.offsetY = y
}

// Offset returns the rotation/scale center.
func (ps *ParticleSystem) Offset() Vec2 {
	return Vec2{X: ps.offsetX, Y: ps.offsetY}
}

// SetColors sets the color keyframe curve. An empty call is ignored;
// the curve always keeps at least one entry.
func (ps *ParticleSystem) SetColors(colors ...Color) {
	if len(colors) == 0 {
		return
	}
	ps.colors = append([]Color(nil), colors...)
}

// Colors returns the color keyframe curve.
func (ps *ParticleSystem) Colors() []Color {
	return append([]Color(nil), ps.colors...)
}

// SetQuads sets the quad sequence particles step through over their
// life. Calling with no arguments clears the sequence, drawing the full
// texture instead.
func (ps *ParticleSystem) SetQuads(quads ...*Quad) {
	ps.quads = append([]*Quad(nil), quads...)
}

// Quads returns the quad sequence.
func (ps *ParticleSystem) Quads() []*Quad {
	return append([]*Quad(nil), ps.quads...)
}

// SetRelativeRotation offsets each particle's visual angle by its
// velocity heading when enabled.
func (ps *ParticleSystem) SetRelativeRotation(enable bool) {
	ps.relativeRotation = enable
}

// HasRelativeRotation reports whether relative rotation is enabled.
func (ps *ParticleSystem) HasRelativeRotation() bool {
	return ps.relativeRotation
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int {
	return ps.activeParticles
}

// Start resumes emission.
func (ps *ParticleSystem) Start() {
	ps.active = true
}

// Stop halts emission, resets the remaining emitter life to the full
// lifetime and zeroes the emission accumulator.
func (ps *ParticleSystem) Stop() {
	ps.active = false
	ps.life = ps.lifetime
	ps.emitCounter = 0
}

// Pause halts emission, keeping the remaining emitter life and
// emission accumulator for a later Start.
func (ps *ParticleSystem) Pause() {
	ps.active = false
}

// Reset removes all live particles and restores the emitter life and
// emission accumulator. The buffer stays allocated.
func (ps *ParticleSystem) Reset() {
	ps.free = 0
	ps.head = noParticle
	ps.tail = noParticle
	ps.activeParticles = 0
	ps.life = ps.lifetime
	ps.emitCounter = 0
}

// Emit spawns up to num particles immediately. Spawns beyond the buffer
// capacity are dropped. Does nothing while the emitter is inactive.
func (ps *ParticleSystem) Emit(num int) {
	if !ps.active {
		return
	}

	if room := ps.maxParticles - ps.activeParticles; num > room {
		num = room
	}

	for ; num > 0; num-- {
		ps.addParticle(1.0)
	}
}

// IsActive reports whether the emitter is emitting.
func (ps *ParticleSystem) IsActive() bool {
	return ps.active
}

// IsPaused reports whether the emitter is paused: inactive with
// emitter life left to run down.
func (ps *ParticleSystem) IsPaused() bool {
	return !ps.active && ps.life < ps.lifetime
}

// IsStopped reports whether the emitter is stopped: inactive with the
// emitter life reset to full.
func (ps *ParticleSystem) IsStopped() bool {
	return !ps.active && ps.life >= ps.lifetime
}

// IsEmpty reports whether no particles are live.
func (ps *ParticleSystem) IsEmpty() bool {
	return ps.activeParticles == 0
}

// IsFull reports whether the buffer has no free slots.
func (ps *ParticleSystem) IsFull() bool {
	return ps.activeParticles == ps.maxParticles
}

// Update advances the simulation by dt seconds: ages and moves every
// live particle, removes expired ones, then emits new particles and
// runs down the emitter life. A zero dt is a no-op.
func (ps *ParticleSystem) Update(dt float64) {
	if dt == 0 || len(ps.pool) == 0 {
		return
	}

	i := ps.head
	for i != noParticle {
		p := &ps.pool[i]

		p.life -= dt
		if p.life <= 0 {
			i = ps.removeParticle(i)
			continue
		}

		radial := p.position.Sub(p.origin).Normalize()
		tangential := radial.Perp()

		accel := radial.Mul(p.radialAcceleration).
			Add(tangential.Mul(p.tangentialAcceleration)).
			Add(p.linearAcceleration)
		p.velocity = p.velocity.Add(accel.Mul(dt))
		p.velocity = p.velocity.Mul(1 / (1 + p.linearDamping*dt))
		p.position = p.position.Add(p.velocity.Mul(dt))

		t := 1 - p.life/p.lifetime

		p.rotation += (p.spinStart*(1-t) + p.spinEnd*t) * dt
		p.angle = p.rotation
		if ps.relativeRotation {
			p.angle += p.velocity.Atan2()
		}

		p.size = lerpFloats(ps.sizes, clamp01(p.sizeOffset+t*p.sizeIntervalSize))
		p.color = lerpColors(ps.colors, t)

		if len(ps.quads) > 0 {
			p.quadIndex = stepIndex(len(ps.quads), t)
		}

		i = p.next
	}

	if ps.active {
		ps.emitCounter += dt
		if ps.emissionRate > 0 {
			period := 1 / ps.emissionRate
			total := ps.emitCounter - period
			for ps.emitCounter > period {
				ps.addParticle(1 - (ps.emitCounter-period)/total)
				ps.emitCounter -= period
			}
		}

		ps.life -= dt
		if ps.lifetime != -1 && ps.life < 0 {
			ps.Stop()
		}
	}

	ps.prevPosition = ps.position
}
