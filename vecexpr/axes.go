package vecexpr

import "fmt"

// An Axes type names the components of a vector.
//
// Axes are empty types used as type parameters, so vectors with different
// axes cannot be combined by accident. Custom axes may be declared by
// implementing this interface on a new empty struct type.
type Axes interface {
	// Names returns one byte per component name, in index order.
	// An empty string means the components are unnamed.
	Names() string

	// Components returns the range of dimensions supported by the axes.
	Components() (min, max int)
}

// An AliasedAxes type provides alternative component names, in index
// order. A space in the alias string means there is no alias for that
// component.
type AliasedAxes interface {
	Axes
	Aliases() string
}

// None is the untyped set of axes.
// It is compatible with any other axes during conversion.
type None struct{}

// XYZW names Cartesian components.
type XYZW struct{}

// WXYZ names quaternion components, with the real part first.
// The components may also be referred to as a, i, j, and k.
type WXYZ struct{}

type ARGB struct{}
type RGBA struct{}
type HSVA struct{}
type HSLA struct{}

func (None) Names() string { return "" }
func (None) Components() (int, int) { return 0, MaxDim }
func (XYZW) Names() string { return "xyzw" }
func (XYZW) Components() (int, int) { return 1, 4 }
func (WXYZ) Names() string { return "wxyz" }
func (WXYZ) Aliases() string { return "aijk" }
func (WXYZ) Components() (int, int) { return 4, 4 }
func (ARGB) Names() string { return "argb" }
func (ARGB) Components() (int, int) { return 4, 4 }
func (RGBA) Names() string { return "rgba" }
func (RGBA) Components() (int, int) { return 3, 4 }
func (HSVA) Names() string { return "hsva" }
func (HSVA) Components() (int, int) { return 3, 4 }
func (HSLA) Names() string { return "hsla" }
func (HSLA) Components() (int, int) { return 3, 4 }

// AxisIndex finds the index of a named component for the axes A.
func AxisIndex[A Axes](name byte) (int, bool) {
	var a A
	for i, n := range []byte(a.Names()) {
		if n == name {
			return i, true
		}
	}
	if aliased, ok := any(a).(AliasedAxes); ok {
		for i, n := range []byte(aliased.Aliases()) {
			if n == name && n != ' ' {
				return i, true
			}
		}
	}
	return 0, false
}

func axesName[A Axes]() string {
	var a A
	if name := a.Names(); name != "" {
		return name
	}
	return fmt.Sprintf("%T", a)
}

func checkShape[D Dim, A Axes]() {
	if !shapeSupported[D, A]() {
		panic(fmt.Sprintf("axes %s do not support %d components", axesName[A](), dimLen[D]()))
	}
}

func shapeSupported[D Dim, A Axes]() bool {
	var a A
	n := dimLen[D]()
	min, max := a.Components()
	return n >= min && n <= max
}
