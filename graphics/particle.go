package graphics

import "math"

// noParticle marks an empty prev/next link.
const noParticle = -1

// particle is one pooled particle record. The prev/next links are
// indices into the pool slice; they express membership in the active
// list only, the pool owns every record.
type particle struct {
	life     float64
	lifetime float64

	position Vec2
	origin   Vec2
	velocity Vec2

	direction              float64
	linearAcceleration     Vec2
	radialAcceleration     float64
	tangentialAcceleration float64
	linearDamping          float64

	size             float64
	sizeOffset       float64
	sizeIntervalSize float64

	rotation  float64
	angle     float64
	spinStart float64
	spinEnd   float64

	color     Color
	quadIndex int

	prev int
	next int
}

// addParticle takes the next free slot, initializes it with the given
// birth-time fraction and links it into the active list. A full pool
// is a silent no-op.
func (ps *ParticleSystem) addParticle(t float64) {
	if ps.IsFull() {
		return
	}

	i := ps.free
	ps.free++
	ps.initParticle(i, t)

	switch ps.insertMode {
	case InsertModeBottom:
		ps.insertBottom(i)
	case InsertModeRandom:
		ps.insertRandom(i)
	default:
		ps.insertTop(i)
	}

	ps.activeParticles++
}

func (ps *ParticleSystem) insertTop(i int) {
	p := &ps.pool[i]
	if ps.head == noParticle {
		ps.head = i
		p.prev = noParticle
	} else {
		ps.pool[ps.tail].next = i
		p.prev = ps.tail
	}
	p.next = noParticle
	ps.tail = i
}

func (ps *ParticleSystem) insertBottom(i int) {
	p := &ps.pool[i]
	if ps.tail == noParticle {
		ps.tail = i
		p.next = noParticle
	} else {
		ps.pool[ps.head].prev = i
		p.next = ps.head
	}
	p.prev = noParticle
	ps.head = i
}

// insertRandom splices the particle in at a random position. The drawn
// ordinal addresses the physical slot order, not the logical list
// order; the two diverge once removals have compacted the pool, which
// biases insertion toward early-allocated slots. The original runtime
// behaves this way, so it is kept as is.
func (ps *ParticleSystem) insertRandom(i int) {
	p := &ps.pool[i]
	pos := ps.rng.Intn(ps.activeParticles + 1)

	// The drawn position past the end means inserting before the head.
	if pos == ps.activeParticles {
		if ps.head != noParticle {
			ps.pool[ps.head].prev = i
		} else {
			ps.tail = i
		}
		p.prev = noParticle
		p.next = ps.head
		ps.head = i
		return
	}

	a := pos
	b := ps.pool[a].next
	ps.pool[a].next = i
	if b != noParticle {
		ps.pool[b].prev = i
	} else {
		ps.tail = i
	}
	p.prev = a
	p.next = b
}

// removeParticle unlinks slot i from the active list and compacts the
// pool by moving the physically last occupied slot into the hole. Links
// of the moved particle's neighbors are patched to the new index. The
// returned index is the removed particle's successor in the active
// list, relocated if the compaction moved it; noParticle if there is
// none.
func (ps *ParticleSystem) removeParticle(i int) int {
	p := &ps.pool[i]
	next := noParticle

	if p.prev != noParticle {
		ps.pool[p.prev].next = p.next
	} else {
		ps.head = p.next
	}

	if p.next != noParticle {
		ps.pool[p.next].prev = p.prev
		next = p.next
	} else {
		ps.tail = p.prev
	}

	ps.free--
	last := ps.free
	if i != last {
		ps.pool[i] = ps.pool[last]
		if next == last {
			next = i
		}

		if p.prev != noParticle {
			ps.pool[p.prev].next = i
		} else {
			ps.head = i
		}

		if p.next != noParticle {
			ps.pool[p.next].prev = i
		} else {
			ps.tail = i
		}
	}

	ps.activeParticles--
	return next
}

// initParticle fills slot i with freshly drawn state. t is the
// birth-time fraction interpolating the emitter position between the
// previous and current tick.
func (ps *ParticleSystem) initParticle(i int, t float64) {
	p := &ps.pool[i]

	pos := ps.prevPosition.Lerp(ps.position, t)

	if ps.particleLifeMin == ps.particleLifeMax {
		p.life = ps.particleLifeMin
	} else {
		p.life = ps.rng.RandomRange(ps.particleLifeMin, ps.particleLifeMax)
	}
	p.lifetime = p.life

	p.position = pos

	switch ps.areaSpreadDistribution {
	case DistributionUniform:
		p.position.X += ps.rng.RandomRange(-ps.areaSpread.X, ps.areaSpread.X)
		p.position.Y += ps.rng.RandomRange(-ps.areaSpread.Y, ps.areaSpread.Y)
	case DistributionNormal:
		p.position.X += ps.rng.RandomNormal(ps.areaSpread.X)
		p.position.Y += ps.rng.RandomNormal(ps.areaSpread.Y)
	}

	p.direction = ps.rng.RandomRange(ps.direction-ps.spread/2, ps.direction+ps.spread/2)

	p.origin = pos

	speed := ps.rng.RandomRange(ps.speedMin, ps.speedMax)
	p.velocity = Vec2{X: math.Cos(p.direction), Y: math.Sin(p.direction)}.Mul(speed)

	p.linearAcceleration.X = ps.rng.RandomRange(ps.linearAccelerationMin.X, ps.linearAccelerationMax.X)
	p.linearAcceleration.Y = ps.rng.RandomRange(ps.linearAccelerationMin.Y, ps.linearAccelerationMax.Y)

	p.radialAcceleration = ps.rng.RandomRange(ps.radialAccelerationMin, ps.radialAccelerationMax)
	p.tangentialAcceleration = ps.rng.RandomRange(ps.tangentialAccelerationMin, ps.tangentialAccelerationMax)
	p.linearDamping = ps.rng.RandomRange(ps.linearDampingMin, ps.linearDampingMax)

	// Time offset and interval width desynchronize the size animation
	// across particles.
	p.sizeOffset = ps.rng.RandomMax(ps.sizeVariation)
	p.sizeIntervalSize = (1 - ps.rng.RandomMax(ps.sizeVariation)) - p.sizeOffset
	p.size = lerpFloats(ps.sizes, 0)

	p.spinStart = ps.calculateVariation(ps.spinStart, ps.spinEnd, ps.spinVariation)
	p.spinEnd = ps.calculateVariation(ps.spinEnd, ps.spinStart, ps.spinVariation)
	p.rotation = ps.rng.RandomRange(ps.rotationMin, ps.rotationMax)

	p.angle = p.rotation
	if ps.relativeRotation {
		p.angle += p.velocity.Atan2()
	}

	p.color = ps.colors[0]
	p.quadIndex = 0
}

func (ps *ParticleSystem) calculateVariation(inner, outer, v float64) float64 {
	low := inner - (outer/2)*v
	high := inner + (outer/2)*v
	r := ps.rng.Random()
	return low*(1-r) + high*r
}
