package vecexpr

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

type uvAxes struct{}
type vuAxes struct{}

func (uvAxes) Names() string { return "uv" }
func (uvAxes) Components() (int, int) { return 2, 2 }
func (vuAxes) Names() string { return "vu" }
func (vuAxes) Components() (int, int) { return 2, 2 }

func TestConvertIdentity(t *testing.T) {
	v := Vec3(1.0, 2.0, 3.0).Scale(2)
	same, err := Convert[XYZW](v)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(same.Slice(), v.Slice()) {
		t.Errorf("expected %v but got %v", v, same)
	}

	untyped, err := Convert[None](v)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(untyped.Slice(), v.Slice()) || !reflect.DeepEqual(Untag(v).Slice(), v.Slice()) {
		t.Errorf("conversion to None should not change %v", v)
	}
	color, err := Convert[RGBA](untyped)
	if err != nil {
		t.Fatal(err)
	}
	if color.R() != 2 || color.G() != 4 || color.B() != 6 {
		t.Errorf("conversion from None should not change %v, got %v", v, color)
	}
}

func TestConvertColors(t *testing.T) {
	c := Color(1, 2, 3, 4)
	argb, err := Convert[ARGB](c)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(argb.Slice(), []int{4, 1, 2, 3}) {
		t.Errorf("unexpected argb components: %v", argb)
	}
	if argb.A() != c.A() || argb.R() != c.R() || argb.G() != c.G() || argb.B() != c.B() {
		t.Errorf("named components should be preserved: %v -> %v", c, argb)
	}
	back, err := Convert[RGBA](argb)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(back, c).Value() {
		t.Errorf("expected %v but got %v", c, back)
	}

	_, err = Convert[ARGB](New[RGBA, D3](1, 2, 3))
	if !errors.Is(err, ErrNoConversion) {
		t.Errorf("unexpected error for unsupported dimension: %v", err)
	}
}

func TestConvertQuaternion(t *testing.T) {
	q, err := Convert[WXYZ](Vec4(1.0, 2.0, 3.0, 4.0))
	if err != nil {
		t.Fatal(err)
	}
	if q.W() != 4 || q.X() != 1 || q.Y() != 2 || q.Z() != 3 {
		t.Errorf("unexpected quaternion %v", q)
	}
	if c := Conjugate(q).Slice(); !reflect.DeepEqual(c, []float64{4, -1, -2, -3}) {
		t.Errorf("unexpected conjugate %v", c)
	}
}

func TestConvertUndefined(t *testing.T) {
	_, err := Convert[RGBA](Vec4(1, 2, 3, 4))
	if !errors.Is(err, ErrNoConversion) || IsDomainError(err) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConvertCustom(t *testing.T) {
	v := New[uvAxes, D2](1, 2)
	if _, err := Convert[vuAxes](v); !errors.Is(err, ErrNoConversion) {
		t.Fatalf("unexpected error before registration: %v", err)
	}
	RegisterConversion[uvAxes, vuAxes]([]int{1, 0})
	res, err := Convert[vuAxes](v)
	if err != nil {
		t.Fatal(err)
	}
	if res.Get('u') != 1 || res.Get('v') != 2 {
		t.Errorf("unexpected conversion result: %v", res)
	}
	mustPanic(t, func() {
		RegisterConversion[uvAxes, vuAxes]([]int{0, 0})
	})
}

// weightedSum works on untagged vectors, so it accepts any axes once the
// caller drops the tag with Untag.
func weightedSum[T Number, D Dim](vs []Vec[T, D, None], weights []T) Vec[T, D, None] {
	var res Vec[T, D, None]
	for i, v := range vs {
		res = res.Add(v.Scale(weights[i]))
	}
	return res.Value()
}

func TestUntagGeneric(t *testing.T) {
	position := Vec3(1.0, 2.0, 3.0)
	color := New[RGBA, D3](0.5, 0.5, 1.0)

	sum := weightedSum([]Vec[float64, D3, None]{Untag(position), Untag(color)}, []float64{2, 4})
	if !reflect.DeepEqual(sum.Slice(), []float64{4, 6, 10}) {
		t.Errorf("unexpected sum: %v", sum)
	}

	tagged, err := Convert[XYZW](sum)
	if err != nil {
		t.Fatal(err)
	}
	if tagged.X() != 4 || tagged.Z() != 10 {
		t.Errorf("unexpected tagged vector: %v", tagged)
	}
}
