package vecexpr

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// Coord3D is the vector type equivalent to model3d.Coord3D.
type Coord3D = Vec[float64, D3, XYZW]

// Coord2D is the vector type equivalent to model2d.Coord.
type Coord2D = Vec[float64, D2, XYZW]

// ToCoord3D materializes a 3D vector as a model3d coordinate.
func ToCoord3D(v Coord3D) model3d.Coord3D {
	arr := v.Array()
	return model3d.XYZ(arr[0], arr[1], arr[2])
}

func FromCoord3D(c model3d.Coord3D) Coord3D {
	return Vec3(c.X, c.Y, c.Z)
}

// ToCoord2D materializes a 2D vector as a model2d coordinate.
func ToCoord2D(v Coord2D) model2d.Coord {
	arr := v.Array()
	return model2d.XY(arr[0], arr[1])
}

func FromCoord2D(c model2d.Coord) Coord2D {
	return Vec2(c.X, c.Y)
}

// RotateCoords applies the rotation q to every coordinate, using multiple
// Goroutines for large batches.
//
// Returns ErrZeroQuaternion if q is zero.
func RotateCoords(q Vec[float64, D4, WXYZ], coords []model3d.Coord3D) ([]model3d.Coord3D, error) {
	inv, err := Inverse(q)
	if err != nil {
		return nil, errors.Wrap(err, "rotate coords")
	}
	// Materialize both sides once rather than once per coordinate.
	q, inv = q.Value(), inv.Value()

	res := make([]model3d.Coord3D, len(coords))
	essentials.ConcurrentMap(0, len(coords), func(i int) {
		pure := QuatFromParts(Scalar[float64]{}, FromCoord3D(coords[i]))
		res[i] = ToCoord3D(VectorPart(q.Mul(pure).Mul(inv)))
	})
	return res, nil
}
