package vecexpr

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Quat creates the quaternion w + xi + yj + zk.
func Quat[T Number](w, x, y, z T) Vec[T, D4, WXYZ] {
	return Vec[T, D4, WXYZ]{data: [MaxDim]T{w, x, y, z}}
}

// IdentityQuat returns the multiplicative identity (1, 0, 0, 0).
func IdentityQuat[T Number]() Vec[T, D4, WXYZ] {
	return Quat[T](1, 0, 0, 0)
}

// QuatFromParts creates a quaternion expression from a scalar (real) part
// and a vector (imaginary) part.
func QuatFromParts[T Number](scalar Scalar[T], vec Vec[T, D3, XYZW]) Vec[T, D4, WXYZ] {
	return newVec[T, D4, WXYZ](quatPartsNode[T]{scalar: scalar, vec: vec})
}

// Hamilton creates the quaternion product l * r.
//
// This is the same as l.Mul(r), but only accepts quaternions.
func Hamilton[T Number](l, r Vec[T, D4, WXYZ]) Vec[T, D4, WXYZ] {
	return l.Mul(r)
}

// Conjugate negates the vector part of a quaternion.
func Conjugate[T Number](q Vec[T, D4, WXYZ]) Vec[T, D4, WXYZ] {
	return newVec[T, D4, WXYZ](conjugateNode[T]{arg: q})
}

// Inverse creates the multiplicative inverse of a quaternion, such that
// q * Inverse(q) is the identity.
//
// Returns ErrZeroQuaternion if q is zero.
func Inverse[T Number](q Vec[T, D4, WXYZ]) (Vec[T, D4, WXYZ], error) {
	magSq := MagnitudeSquare(q)
	if magSq.Value() == 0 {
		return q, errors.Wrap(ErrZeroQuaternion, "inverse")
	}
	return Conjugate(q).DivScalar(magSq), nil
}

// ScalarPart creates an expression for the real part w of a quaternion.
func ScalarPart[T Number](q Vec[T, D4, WXYZ]) Scalar[T] {
	return newScalar[T](scalarPartNode[T]{arg: q})
}

// VectorPart creates a 3D vector expression for the imaginary part (x, y, z)
// of a quaternion.
func VectorPart[T Number](q Vec[T, D4, WXYZ]) Vec[T, D3, XYZW] {
	return newVec[T, D3, XYZW](vectorPartNode[T]{arg: q})
}

// AxisAngle creates a unit quaternion which rotates by angle radians around
// the given axis.
//
// Returns ErrZeroMagnitude if the axis is zero.
func AxisAngle[T constraints.Float](axis Vec[T, D3, XYZW], angle T) (Vec[T, D4, WXYZ], error) {
	dir, err := Normalize(axis)
	if err != nil {
		return Vec[T, D4, WXYZ]{}, errors.Wrap(err, "axis angle")
	}
	half := float64(angle) / 2
	return QuatFromParts(Const(T(math.Cos(half))), dir.Scale(T(math.Sin(half)))), nil
}

// Rotate applies the rotation represented by q to a 3D vector, computing
// the vector part of q * v * q^-1.
//
// The quaternion need not be normalized. Returns ErrZeroQuaternion if q is
// zero.
func Rotate[T constraints.Float](q Vec[T, D4, WXYZ], v Vec[T, D3, XYZW]) (Vec[T, D3, XYZW], error) {
	inv, err := Inverse(q)
	if err != nil {
		return v, errors.Wrap(err, "rotate")
	}
	return VectorPart(q.Mul(QuatFromParts(Scalar[T]{}, v)).Mul(inv)), nil
}

type hamiltonNode[T Number, D Dim, A Axes] struct {
	lhs Vec[T, D, A]
	rhs Vec[T, D, A]
}

func (h hamiltonNode[T, D, A]) at(i int) T {
	l, r := h.lhs, h.rhs
	w1, x1, y1, z1 := l.at(0), l.at(1), l.at(2), l.at(3)
	w2, x2, y2, z2 := r.at(0), r.at(1), r.at(2), r.at(3)
	switch i {
	case 0:
		return w1*w2 - x1*x2 - y1*y2 - z1*z2
	case 1:
		return w1*x2 + x1*w2 + y1*z2 - z1*y2
	case 2:
		return w1*y2 - x1*z2 + y1*w2 + z1*x2
	default:
		return w1*z2 + x1*y2 - y1*x2 + z1*w2
	}
}

type conjugateNode[T Number] struct {
	arg Vec[T, D4, WXYZ]
}

func (c conjugateNode[T]) at(i int) T {
	if i == 0 {
		return c.arg.at(0)
	}
	return -c.arg.at(i)
}

type scalarPartNode[T Number] struct {
	arg Vec[T, D4, WXYZ]
}

func (s scalarPartNode[T]) value() T {
	return s.arg.at(0)
}

type vectorPartNode[T Number] struct {
	arg Vec[T, D4, WXYZ]
}

func (v vectorPartNode[T]) at(i int) T {
	return v.arg.at(i + 1)
}

type quatPartsNode[T Number] struct {
	scalar Scalar[T]
	vec    Vec[T, D3, XYZW]
}

func (q quatPartsNode[T]) at(i int) T {
	if i == 0 {
		return q.scalar.Value()
	}
	return q.vec.at(i - 1)
}
