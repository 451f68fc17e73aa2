package entity

import "math"

// SceneID names a scene in the scene directory (e.g. "Game", "ProjectsBuilding")
type SceneID string

// InteractableID uniquely identifies an interactable within a scene
type InteractableID string

// CharacterID identifies a selectable player character
type CharacterID string

// FloorID identifies a floor/surface type (e.g. "grass", "wood")
type FloorID string

// Vec2 is a point or offset in world pixels
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// DistSq returns the squared distance between v and o
func (v Vec2) DistSq(o Vec2) float64 {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y
}

// Dist returns the distance between v and o
func (v Vec2) Dist(o Vec2) float64 {
	return math.Sqrt(v.DistSq(o))
}

// Size is a width/height pair in world pixels
type Size struct {
	Width, Height float64
}

// Bounds is the playable rectangle of a scene, anchored at the origin
type Bounds struct {
	Width, Height float64
}

// Clamp keeps p inside the bounds, inset by margin on every side
func (b Bounds) Clamp(p Vec2, margin float64) Vec2 {
	if b.Width <= 0 || b.Height <= 0 {
		return p
	}
	p.X = math.Max(margin, math.Min(b.Width-margin, p.X))
	p.Y = math.Max(margin, math.Min(b.Height-margin, p.Y))
	return p
}
