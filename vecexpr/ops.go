package vecexpr

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Add creates the expression v + v1.
func (v Vec[T, D, A]) Add(v1 Vec[T, D, A]) Vec[T, D, A] {
	return newVec[T, D, A](sumNode[T, D, A]{lhs: v, rhs: v1})
}

// Sub creates the expression v - v1.
func (v Vec[T, D, A]) Sub(v1 Vec[T, D, A]) Vec[T, D, A] {
	return newVec[T, D, A](diffNode[T, D, A]{lhs: v, rhs: v1})
}

// Neg creates the expression -v.
func (v Vec[T, D, A]) Neg() Vec[T, D, A] {
	return newVec[T, D, A](negNode[T, D, A]{arg: v})
}

// Scale multiplies every component by s.
func (v Vec[T, D, A]) Scale(s T) Vec[T, D, A] {
	return v.MulScalar(Const(s))
}

// Div divides every component by s.
func (v Vec[T, D, A]) Div(s T) Vec[T, D, A] {
	return v.DivScalar(Const(s))
}

// MulScalar multiplies every component by a scalar expression.
func (v Vec[T, D, A]) MulScalar(s Scalar[T]) Vec[T, D, A] {
	return newVec[T, D, A](scaleNode[T, D, A]{vec: v, scale: s})
}

// DivScalar divides every component by a scalar expression.
func (v Vec[T, D, A]) DivScalar(s Scalar[T]) Vec[T, D, A] {
	return newVec[T, D, A](scaleNode[T, D, A]{vec: v, scale: s, divide: true})
}

// Mul creates the product of two vectors.
//
// The kind of product depends on the axes. For WXYZ (quaternions), this is
// the Hamilton product, which is not commutative. For all other axes, the
// components are multiplied element-wise.
func (v Vec[T, D, A]) Mul(v1 Vec[T, D, A]) Vec[T, D, A] {
	var axes A
	if _, ok := any(axes).(WXYZ); ok {
		return newVec[T, D, A](hamiltonNode[T, D, A]{lhs: v, rhs: v1})
	}
	return newVec[T, D, A](productNode[T, D, A]{lhs: v, rhs: v1})
}

// Dot creates a dot product expression.
// The result is computed once and cached.
func Dot[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Scalar[T] {
	return newScalar[T](&dotNode[T, D, A]{lhs: v1, rhs: v2})
}

// MagnitudeSquare creates an expression for the sum of squared components.
// The result is computed once and cached.
func MagnitudeSquare[T Number, D Dim, A Axes](v Vec[T, D, A]) Scalar[T] {
	return newScalar[T](&dotNode[T, D, A]{lhs: v, rhs: v, square: true})
}

// Magnitude creates an expression for the Euclidean norm of v.
func Magnitude[T Number, D Dim, A Axes](v Vec[T, D, A]) Scalar[T] {
	return Sqrt(MagnitudeSquare(v))
}

// ElementSum creates an expression for the sum of all components.
func ElementSum[T Number, D Dim, A Axes](v Vec[T, D, A]) Scalar[T] {
	return newScalar[T](elementSumNode[T, D, A]{arg: v})
}

// DistanceSquare creates an expression for the squared Euclidean distance
// between two vectors.
func DistanceSquare[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Scalar[T] {
	return MagnitudeSquare(v1.Sub(v2))
}

// Distance creates an expression for the Euclidean distance between two
// vectors.
func Distance[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Scalar[T] {
	return Magnitude(v1.Sub(v2))
}

// Normalize divides v by its magnitude.
//
// The magnitude is computed immediately to check for a zero vector, in which
// case ErrZeroMagnitude is returned. For quaternions, ErrZeroQuaternion is
// returned instead. The components themselves are still computed lazily.
func Normalize[T Number, D Dim, A Axes](v Vec[T, D, A]) (Vec[T, D, A], error) {
	mag := Magnitude(v)
	if mag.Value() == 0 {
		var axes A
		if _, ok := any(axes).(WXYZ); ok {
			return v, errors.Wrap(ErrZeroQuaternion, "normalize")
		}
		return v, errors.Wrap(ErrZeroMagnitude, "normalize")
	}
	return v.DivScalar(mag), nil
}

// Lerp linearly interpolates between start and end.
// The fraction t is not clamped, so it may be used to extrapolate.
func Lerp[T Number, D Dim, A Axes](start, end Vec[T, D, A], t T) Vec[T, D, A] {
	return start.Add(end.Sub(start).Scale(t))
}

// Slerp spherically interpolates between two vectors.
//
// The direction of the result rotates from the direction of start to the
// direction of end, while the magnitude is linearly interpolated.
//
// Returns ErrZeroMagnitude if either endpoint is zero, and
// ErrOppositeDirections if the endpoints point in opposite directions, since
// the plane of rotation is ambiguous.
func Slerp[T constraints.Float, D Dim, A Axes](start, end Vec[T, D, A], t T) (Vec[T, D, A], error) {
	startMag := Magnitude(start)
	endMag := Magnitude(end)
	if startMag.Value() == 0 || endMag.Value() == 0 {
		return start, errors.Wrap(ErrZeroMagnitude, "slerp")
	}
	startDir := start.DivScalar(startMag)
	endDir := end.DivScalar(endMag)
	resMag := startMag.Add(endMag.Sub(startMag).Mul(Const(t)))

	dot := Dot(startDir, endDir).Value()
	switch {
	case ApproxEqual(dot, 0):
		theta := math.Acos(float64(dot)) * float64(t)
		res := startDir.Scale(T(math.Cos(theta))).Add(endDir.Scale(T(math.Sin(theta))))
		return res.MulScalar(resMag), nil
	case ApproxEqual(dot, 1):
		return Lerp(start, end, t), nil
	case ApproxEqual(dot, -1):
		return start, errors.Wrap(ErrOppositeDirections, "slerp")
	}

	omega := math.Acos(math.Max(-1, math.Min(1, float64(dot))))
	sinOmega := math.Sin(omega)
	startWeight := T(math.Sin((1-float64(t))*omega) / sinOmega)
	endWeight := T(math.Sin(float64(t)*omega) / sinOmega)
	res := startDir.Scale(startWeight).Add(endDir.Scale(endWeight))
	return res.MulScalar(resMag), nil
}

// Cross creates the cross product of two 3D vectors.
func Cross[T Number](v1, v2 Vec[T, D3, XYZW]) Vec[T, D3, XYZW] {
	return newVec[T, D3, XYZW](crossNode[T]{lhs: v1, rhs: v2})
}

type sumNode[T Number, D Dim, A Axes] struct {
	lhs Vec[T, D, A]
	rhs Vec[T, D, A]
}

func (s sumNode[T, D, A]) at(i int) T {
	return s.lhs.at(i) + s.rhs.at(i)
}

type diffNode[T Number, D Dim, A Axes] struct {
	lhs Vec[T, D, A]
	rhs Vec[T, D, A]
}

func (d diffNode[T, D, A]) at(i int) T {
	return d.lhs.at(i) - d.rhs.at(i)
}

type negNode[T Number, D Dim, A Axes] struct {
	arg Vec[T, D, A]
}

func (n negNode[T, D, A]) at(i int) T {
	return -n.arg.at(i)
}

type scaleNode[T Number, D Dim, A Axes] struct {
	vec    Vec[T, D, A]
	scale  Scalar[T]
	divide bool
}

func (s scaleNode[T, D, A]) at(i int) T {
	if s.divide {
		return s.vec.at(i) / s.scale.Value()
	}
	return s.vec.at(i) * s.scale.Value()
}

type productNode[T Number, D Dim, A Axes] struct {
	lhs Vec[T, D, A]
	rhs Vec[T, D, A]
}

func (p productNode[T, D, A]) at(i int) T {
	return p.lhs.at(i) * p.rhs.at(i)
}

type dotNode[T Number, D Dim, A Axes] struct {
	lhs    Vec[T, D, A]
	rhs    Vec[T, D, A]
	square bool
	cache  memo[T]
}

func (d *dotNode[T, D, A]) value() T {
	return d.cache.Get(func() T {
		var sum T
		for i := 0; i < dimLen[D](); i++ {
			l := d.lhs.at(i)
			if d.square {
				sum += l * l
			} else {
				sum += l * d.rhs.at(i)
			}
		}
		return sum
	})
}

type elementSumNode[T Number, D Dim, A Axes] struct {
	arg Vec[T, D, A]
}

func (e elementSumNode[T, D, A]) value() T {
	var sum T
	for i := 0; i < dimLen[D](); i++ {
		sum += e.arg.at(i)
	}
	return sum
}

type crossNode[T Number] struct {
	lhs Vec[T, D3, XYZW]
	rhs Vec[T, D3, XYZW]
}

func (c crossNode[T]) at(i int) T {
	j, k := (i+1)%3, (i+2)%3
	return c.lhs.at(j)*c.rhs.at(k) - c.lhs.at(k)*c.rhs.at(j)
}
