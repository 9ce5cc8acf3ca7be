package vecexpr

import (
	"fmt"
	"strings"
)

// A Vec is a fixed-size vector expression with dimension D and axes A.
//
// A Vec is either a stored list of components or a lazy computation over
// other vectors. Arithmetic methods build new expressions without computing
// any components, and components are computed on demand by At() or all at
// once by Value().
//
// The zero value is a stored zero vector.
type Vec[T Number, D Dim, A Axes] struct {
	data [MaxDim]T
	node vecNode[T]
}

type vecNode[T Number] interface {
	at(i int) T
}

// New creates a stored vector from its components.
//
// The number of values must match the dimension D, and the dimension must be
// supported by the axes A.
func New[A Axes, D Dim, T Number](values ...T) Vec[T, D, A] {
	checkShape[D, A]()
	if n := dimLen[D](); len(values) != n {
		panic(fmt.Sprintf("expected %d components but got %d", n, len(values)))
	}
	var res Vec[T, D, A]
	copy(res.data[:], values)
	return res
}

// NewArray is like New, but takes components from an array.
// Components past the dimension are ignored.
func NewArray[A Axes, D Dim, T Number](values [MaxDim]T) Vec[T, D, A] {
	checkShape[D, A]()
	var res Vec[T, D, A]
	n := dimLen[D]()
	copy(res.data[:n], values[:n])
	return res
}

// Fill creates a vector expression with x at every index.
func Fill[A Axes, D Dim, T Number](x T) Vec[T, D, A] {
	checkShape[D, A]()
	return newVec[T, D, A](fillNode[T]{value: x})
}

// Vec2 creates a 2D Cartesian vector.
func Vec2[T Number](x, y T) Vec[T, D2, XYZW] {
	return Vec[T, D2, XYZW]{data: [MaxDim]T{x, y}}
}

// Vec3 creates a 3D Cartesian vector.
func Vec3[T Number](x, y, z T) Vec[T, D3, XYZW] {
	return Vec[T, D3, XYZW]{data: [MaxDim]T{x, y, z}}
}

// Vec4 creates a 4D Cartesian vector.
func Vec4[T Number](x, y, z, w T) Vec[T, D4, XYZW] {
	return Vec[T, D4, XYZW]{data: [MaxDim]T{x, y, z, w}}
}

// Color creates an RGBA color.
func Color[T Number](r, g, b, a T) Vec[T, D4, RGBA] {
	return Vec[T, D4, RGBA]{data: [MaxDim]T{r, g, b, a}}
}

func newVec[T Number, D Dim, A Axes](n vecNode[T]) Vec[T, D, A] {
	return Vec[T, D, A]{node: n}
}

// Len returns the number of components.
func (v Vec[T, D, A]) Len() int {
	return dimLen[D]()
}

// At computes the component at index i.
//
// Panics if i is out of range.
func (v Vec[T, D, A]) At(i int) T {
	if n := dimLen[D](); i < 0 || i >= n {
		panic(fmt.Sprintf("vector index %d out of range [0, %d)", i, n))
	}
	return v.at(i)
}

func (v Vec[T, D, A]) at(i int) T {
	if v.node == nil {
		return v.data[i]
	}
	return v.node.at(i)
}

// IsStored returns true if the vector holds its components rather than
// computing them.
func (v Vec[T, D, A]) IsStored() bool {
	return v.node == nil
}

// Value materializes the expression into a stored vector by evaluating
// every component.
func (v Vec[T, D, A]) Value() Vec[T, D, A] {
	if v.node == nil {
		return v
	}
	return Vec[T, D, A]{data: v.Array()}
}

// Array evaluates the components into an array.
// Entries at or past Len() are zero.
func (v Vec[T, D, A]) Array() [MaxDim]T {
	if v.node == nil {
		return v.data
	}
	var res [MaxDim]T
	for i := 0; i < dimLen[D](); i++ {
		res[i] = v.node.at(i)
	}
	return res
}

// Slice evaluates the components into a new slice.
func (v Vec[T, D, A]) Slice() []T {
	arr := v.Array()
	return append([]T{}, arr[:dimLen[D]()]...)
}

// List returns a list view of the components.
// Stored vectors are viewed directly, while expressions stay lazy.
func (v Vec[T, D, A]) List() List[T] {
	if v.node == nil {
		return NewListSlice(v.data[:dimLen[D]()])
	}
	return List[T]{
		Len: dimLen[D](),
		Get: v.At,
	}
}

// Get computes a component by name, such as 'x' or 'r'.
//
// Panics if the axes have no such component, or if the component is past
// the dimension of the vector.
func (v Vec[T, D, A]) Get(name byte) T {
	idx, ok := AxisIndex[A](name)
	if !ok {
		panic(fmt.Sprintf("axes %s have no component %q", axesName[A](), name))
	}
	return v.At(idx)
}

func (v Vec[T, D, A]) X() T { return v.Get('x') }
func (v Vec[T, D, A]) Y() T { return v.Get('y') }
func (v Vec[T, D, A]) Z() T { return v.Get('z') }
func (v Vec[T, D, A]) W() T { return v.Get('w') }
func (v Vec[T, D, A]) R() T { return v.Get('r') }
func (v Vec[T, D, A]) G() T { return v.Get('g') }
func (v Vec[T, D, A]) B() T { return v.Get('b') }
func (v Vec[T, D, Ax]) A() T { return v.Get('a') }
func (v Vec[T, D, A]) H() T { return v.Get('h') }
func (v Vec[T, D, A]) S() T { return v.Get('s') }
func (v Vec[T, D, A]) V() T { return v.Get('v') }
func (v Vec[T, D, A]) L() T { return v.Get('l') }
func (v Vec[T, D, A]) I() T { return v.Get('i') }
func (v Vec[T, D, A]) J() T { return v.Get('j') }
func (v Vec[T, D, A]) K() T { return v.Get('k') }

func (v Vec[T, D, A]) String() string {
	arr := v.Array()
	parts := make([]string, dimLen[D]())
	for i := range parts {
		parts[i] = fmt.Sprint(arr[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

type fillNode[T Number] struct {
	value T
}

func (f fillNode[T]) at(i int) T {
	return f.value
}
