// Package physics owns the Chipmunk space that moves the avatar and reports
// contacts between the avatar and interactable hitboxes.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/portfoliotown/internal/domain/entity"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeAvatar
	collisionTypeInteractable
)

const wallThickness = 50.0

// ContactEvent reports that the avatar started touching an interactable
type ContactEvent struct {
	ID entity.InteractableID
}

// ContactWorld owns the Chipmunk space for one scene instance.
// The avatar is a dynamic circle with infinite moment and no gravity;
// interactables are static boxes (or sensors) on the space's static body.
type ContactWorld struct {
	space  *cp.Space
	avatar *cp.Body
	bounds entity.Bounds
	radius float64
	want   cp.Vector // Input velocity, applied before each solve

	shapeToID map[*cp.Shape]entity.InteractableID
	pending   []ContactEvent
	touching  map[entity.InteractableID]int
}

// NewContactWorld builds a space with walls around bounds and one shape
// per interactable. The avatar starts at spawn.
func NewContactWorld(bounds entity.Bounds, items []entity.Interactable, spawn entity.Vec2, avatarRadius float64) *ContactWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	cw := &ContactWorld{
		space:     space,
		bounds:    bounds,
		radius:    avatarRadius,
		shapeToID: make(map[*cp.Shape]entity.InteractableID),
		touching:  make(map[entity.InteractableID]int),
	}
	cw.buildWalls(bounds)
	for _, it := range items {
		cw.addInteractable(it)
	}
	cw.addAvatar(spawn, avatarRadius)
	cw.setupHandlers()
	return cw
}

// Space returns the underlying Chipmunk space.
func (cw *ContactWorld) Space() *cp.Space {
	return cw.space
}

// SetAvatarVelocity sets the avatar's input velocity in pixels per second.
// It is handed to the solver during the next Step, so it moves the avatar
// from the Step after that on.
func (cw *ContactWorld) SetAvatarVelocity(v entity.Vec2) {
	cw.want = cp.Vector{X: v.X, Y: v.Y}
}

// AvatarPosition returns the avatar's resolved position
func (cw *ContactWorld) AvatarPosition() entity.Vec2 {
	p := cw.avatar.Position()
	return entity.Vec2{X: p.X, Y: p.Y}
}

// Teleport moves the avatar without generating motion
func (cw *ContactWorld) Teleport(p entity.Vec2) {
	cw.avatar.SetPosition(cp.Vector{X: p.X, Y: p.Y})
	cw.avatar.SetVelocity(0, 0)
	cw.want = cp.Vector{}
}

// Step advances the simulation and returns contacts that began during it.
// The avatar never ends a step outside the scene bounds.
func (cw *ContactWorld) Step(dt float64) []ContactEvent {
	cw.pending = cw.pending[:0]
	cw.space.Step(dt)
	cw.keepInBounds()
	if len(cw.pending) == 0 {
		return nil
	}
	events := make([]ContactEvent, len(cw.pending))
	copy(events, cw.pending)
	return events
}

// Touching reports whether the avatar currently touches id
func (cw *ContactWorld) Touching(id entity.InteractableID) bool {
	return cw.touching[id] > 0
}

// keepInBounds pulls the avatar back inside when the solver left it
// overlapping a wall, and drops the velocity component pushing outward
func (cw *ContactWorld) keepInBounds() {
	if cw.bounds.Width <= 0 || cw.bounds.Height <= 0 {
		return
	}
	p := cw.avatar.Position()
	clamped := cw.bounds.Clamp(entity.Vec2{X: p.X, Y: p.Y}, cw.radius)
	if clamped.X == p.X && clamped.Y == p.Y {
		return
	}
	v := cw.avatar.Velocity()
	if clamped.X != p.X {
		v.X = 0
	}
	if clamped.Y != p.Y {
		v.Y = 0
	}
	cw.avatar.SetPosition(cp.Vector{X: clamped.X, Y: clamped.Y})
	cw.avatar.SetVelocityVector(v)
}

// buildWalls surrounds bounds with thick static boxes lying just outside it
func (cw *ContactWorld) buildWalls(bounds entity.Bounds) {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	w, h, t := bounds.Width, bounds.Height, wallThickness
	walls := []cp.BB{
		{L: -t, B: -t, R: w + t, T: 0},
		{L: -t, B: h, R: w + t, T: h + t},
		{L: -t, B: 0, R: 0, T: h},
		{L: w, B: 0, R: w + t, T: h},
	}
	for _, bb := range walls {
		shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		cw.space.AddShape(shape)
	}
}

func (cw *ContactWorld) addInteractable(it entity.Interactable) {
	hw, hh := it.Hitbox.Width/2, it.Hitbox.Height/2
	bb := cp.BB{
		L: it.Position.X - hw,
		B: it.Position.Y - hh,
		R: it.Position.X + hw,
		T: it.Position.Y + hh,
	}
	shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetSensor(it.Sensor)
	shape.SetCollisionType(collisionTypeInteractable)
	cw.space.AddShape(shape)
	cw.shapeToID[shape] = it.ID
}

func (cw *ContactWorld) addAvatar(spawn entity.Vec2, radius float64) {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: spawn.X, Y: spawn.Y})
	// Positions integrate before the solver runs, so the input velocity is
	// set here and the solver's contact response is what moves the body
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		body.SetVelocityVector(cw.want)
	})

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeAvatar)

	cw.space.AddBody(body)
	cw.space.AddShape(shape)
	cw.avatar = body
}

func (cw *ContactWorld) setupHandlers() {
	handler := cw.space.NewCollisionHandler(collisionTypeAvatar, collisionTypeInteractable)
	handler.UserData = cw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*ContactWorld)
		if !ok || world == nil {
			return true
		}
		id, ok := world.interactableFor(arb)
		if !ok {
			return true
		}
		world.touching[id]++
		world.pending = append(world.pending, ContactEvent{ID: id})
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*ContactWorld)
		if !ok || world == nil {
			return
		}
		id, ok := world.interactableFor(arb)
		if !ok {
			return
		}
		if world.touching[id] > 0 {
			world.touching[id]--
		}
	}
}

func (cw *ContactWorld) interactableFor(arb *cp.Arbiter) (entity.InteractableID, bool) {
	shapeA, shapeB := arb.Shapes()
	if id, ok := cw.shapeToID[shapeA]; ok {
		return id, true
	}
	id, ok := cw.shapeToID[shapeB]
	return id, ok
}
