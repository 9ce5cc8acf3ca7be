package vecexpr

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestCompare(t *testing.T) {
	a := Vec3(1.0, 2.0, 3.0)
	b := Vec3(1.0, 2.0, 4.0)
	c := Vec3(0.0, 9.0, 9.0)

	if v := Compare(a, b).Value(); v != -1 {
		t.Errorf("expected -1 but got %d", v)
	}
	if v := Compare(b, a).Value(); v != 1 {
		t.Errorf("expected 1 but got %d", v)
	}
	if v := Compare(a, a.Scale(3).Div(3)).Value(); v != 0 {
		t.Errorf("expected 0 but got %d", v)
	}
	if v := Compare(c, a).Value(); v != -1 {
		t.Errorf("first differing component should decide, but got %d", v)
	}

	checks := []struct {
		name     string
		cond     Cond
		expected bool
	}{
		{"a == a", Equal(a, a), true},
		{"a == b", Equal(a, b), false},
		{"a != b", NotEqual(a, b), true},
		{"a != a", NotEqual(a, a), false},
		{"a < b", Less(a, b), true},
		{"b < a", Less(b, a), false},
		{"a < a", Less(a, a), false},
		{"a <= a", LessEqual(a, a), true},
		{"b <= a", LessEqual(b, a), false},
		{"b > a", Greater(b, a), true},
		{"a > a", Greater(a, a), false},
		{"a >= a", GreaterEqual(a, a), true},
		{"a >= b", GreaterEqual(a, b), false},
	}
	for _, check := range checks {
		if actual := check.cond.Value(); actual != check.expected {
			t.Errorf("%s: expected %v but got %v", check.name, check.expected, actual)
		}
	}
}

func TestEqualTolerance(t *testing.T) {
	a := Vec2(0.1, 0.2)
	b := Vec2(0.3, 0.3).Sub(Vec2(0.2, 0.1))
	if !Equal(a, b).Value() {
		t.Errorf("%v and %v should be equal up to rounding", a, b)
	}
	if Equal(a, Vec2(0.1, 0.2000001)).Value() {
		t.Error("differences beyond rounding error should be detected")
	}
}

func TestSort(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	vs := []Vec[int, D3, XYZW]{
		Vec3(2, 1, 0),
		Vec3(1, 5, 5),
		Vec3(1, 2, 3),
		Vec3(1, 2, 2),
		Vec3(0, 9, 9).Add(Vec3(1, 0, 0)),
	}
	r.Shuffle(len(vs), func(i, j int) {
		vs[i], vs[j] = vs[j], vs[i]
	})
	Sort(vs)
	var actual [][]int
	for _, v := range vs {
		actual = append(actual, v.Slice())
	}
	expected := [][]int{{1, 2, 2}, {1, 2, 3}, {1, 5, 5}, {1, 9, 9}, {2, 1, 0}}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("expected %v but got %v", expected, actual)
	}
}
