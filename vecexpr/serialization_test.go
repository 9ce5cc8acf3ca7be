package vecexpr

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func TestReadWriteVecs(t *testing.T) {
	vs := []Vec[float64, D3, XYZW]{
		Vec3(1.0, 2.0, 3.0),
		Vec3(-0.5, 0.25, 1e10),
		Vec3(1.0, 1.0, 1.0).Scale(0.125),
	}
	var b bytes.Buffer
	if err := WriteVecs(&b, vs); err != nil {
		t.Fatal(err)
	}
	result, err := ReadVecs[XYZW, D3, float64](&b)
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != len(vs) {
		t.Fatalf("expected %d vectors but got %d", len(vs), len(result))
	}
	for i, v := range vs {
		if !reflect.DeepEqual(result[i].Slice(), v.Slice()) {
			t.Errorf("vector %d: expected %v but got %v", i, v, result[i])
		}
		if !result[i].IsStored() {
			t.Errorf("vector %d should be stored", i)
		}
	}
}

func TestReadVecsMismatch(t *testing.T) {
	var b bytes.Buffer
	if err := WriteVecs(&b, []Vec[int, D4, RGBA]{Color(1, 2, 3, 4)}); err != nil {
		t.Fatal(err)
	}
	data := b.Bytes()
	if _, err := ReadVecs[ARGB, D4, int](bytes.NewReader(data)); err == nil {
		t.Error("expected error for mismatched axes")
	}
	if _, err := ReadVecs[RGBA, D3, int](bytes.NewReader(data)); err == nil {
		t.Error("expected error for mismatched dimension")
	}
	if _, err := ReadVecs[RGBA, D4, int](bytes.NewReader(data[:len(data)-1])); err == nil {
		t.Error("expected error for truncated data")
	}
	res, err := ReadVecs[RGBA, D4, int](bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || !Equal(res[0], Color(1, 2, 3, 4)).Value() {
		t.Errorf("unexpected result: %v", res)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecs.bin")
	vs := []Vec[float32, D2, XYZW]{Vec2[float32](1, 2), Vec2[float32](3, 4)}
	if err := Save(path, vs, WriteVecs[float32, D2, XYZW]); err != nil {
		t.Fatal(err)
	}
	result, err := Load(path, ReadVecs[XYZW, D2, float32])
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 2 || !Equal(result[1], vs[1]).Value() {
		t.Errorf("unexpected result: %v", result)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.bin"), ReadVecs[XYZW, D2, float32]); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadVecsLargeCount(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{3, 4})
	buf.WriteString("xyzw")
	binary.Write(&buf, binary.LittleEndian, uint32(1<<31))
	binary.Write(&buf, binary.LittleEndian, []float64{1, 2, 3})

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := ReadVecs[XYZW, D3, float64](bytes.NewReader(buf.Bytes()))
	runtime.ReadMemStats(&after)
	if err == nil {
		t.Fatal("expected error for truncated data")
	}
	if allocated := after.TotalAlloc - before.TotalAlloc; allocated > 1<<26 {
		t.Errorf("allocated %d bytes for a %d byte input", allocated, buf.Len())
	}
}
