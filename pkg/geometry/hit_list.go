package geometry

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// HitList is an unordered collection of shapes tested linearly against every ray.
// It is built once and only read while rendering.
type HitList struct {
	Shapes []Shape
}

// NewHitList creates a hit list holding the given shapes
func NewHitList(shapes ...Shape) *HitList {
	return &HitList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *HitList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *HitList) Len() int {
	return len(l.Shapes)
}

// Hit returns the nearest intersection across all shapes
func (l *HitList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
