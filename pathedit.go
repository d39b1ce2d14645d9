/*
Package pathedit provides the core editing engine for a road/path network
editor: 2D pair arithmetic, viewport transforms, Bezier curve construction
with interactive control points, and a linear undo/redo history.

The root package holds the shared geometry primitives. The editing machinery
lives in sub-packages: roadnet (the node/edge graph), bezier (curve math and
control-point interaction), history (undo/redo), editor (commit and alignment
operations), selection (multi-select regions) and settings (preferences).

# BSD License

# Copyright (c) Karl Ferber

All rights reserved.

Please refer to the license file for more information.
*/
package pathedit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pathedit'
func tracer() tracing.Trace {
	return tracing.Select("pathedit")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// RoundPlaces rounds n to the given number of decimal places. Interactive
// node coordinates are kept at 3 decimal places throughout the editor.
func RoundPlaces(n float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(n*shift) / shift
}

// SnapTo rounds n to the nearest multiple of the given spacing.
func SnapTo(n float64, spacing float64) float64 {
	if Is0(spacing) {
		return n
	}
	return math.Round(n/spacing) * spacing
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector. In map terms the components are the world
// x and z axes; elevation (y) is tracked separately by the road network.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p.C()), imag(p.C())
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return (p + v).Zap()
}

// Rounded returns a new pair with both parts rounded to the given number
// of decimal places.
func (p Pair) Rounded(places int) Pair {
	return P(RoundPlaces(p.X(), places), RoundPlaces(p.Y(), places))
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale a point by a uniform factor around the origin.
func Scaling(a float64) AT {
	m := newAT()
	m.set(0, 0, a)
	m.set(1, 1, a)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m *AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	c := make([]float64, 3)
	c[0] = p.X()
	c[1] = p.Y()
	c[2] = 1.0
	c = m.multiplyVector(c)
	return P(c[0], c[1])
}

// === Viewport ==============================================================

// Viewport converts between screen positions (pixels) and world positions
// (map units). MapScale is the number of world units per map pixel at zoom 1,
// Zoom the current zoom level, and Origin the world position projected onto
// the screen origin.
type Viewport struct {
	MapScale float64
	Zoom     float64
	Origin   Pair
}

// NewViewport creates a viewport with the given scale and zoom. A zoom or
// scale of 0 is replaced by 1 to keep the transforms invertible.
func NewViewport(mapScale, zoom float64) Viewport {
	if Is0(mapScale) {
		mapScale = 1
	}
	if Is0(zoom) {
		zoom = 1
	}
	return Viewport{MapScale: mapScale, Zoom: zoom}
}

// screen = (world - origin) · zoom / mapScale
func (v Viewport) worldToScreen() AT {
	return Translation(P(-v.Origin.X(), -v.Origin.Y())).Combine(Scaling(v.Zoom / v.MapScale))
}

// ScreenToWorld converts a screen position to a world position.
func (v Viewport) ScreenToWorld(p Pair) Pair {
	m := Scaling(v.MapScale / v.Zoom).Combine(Translation(v.Origin))
	return m.Transform(p)
}

// WorldToScreen converts a world position to a screen position.
func (v Viewport) WorldToScreen(p Pair) Pair {
	return v.worldToScreen().Transform(p)
}

// ScaleDelta converts a screen-space delta to a world-space delta, rounded
// to 3 decimal places. Deltas are not affected by the viewport origin.
func (v Viewport) ScaleDelta(d Pair) Pair {
	return d.Scaled(v.MapScale / v.Zoom).Rounded(3)
}
