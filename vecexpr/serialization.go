package vecexpr

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteVecs serializes a list of vectors in a binary format.
//
// The header records the dimension and the axes names, and each component
// is stored with 64-bit float precision.
func WriteVecs[T Number, D Dim, A Axes](w io.Writer, vs []Vec[T, D, A]) error {
	var axes A
	names := axes.Names()
	header := []uint8{uint8(dimLen[D]()), uint8(len(names))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "write vectors")
	}
	if _, err := io.WriteString(w, names); err != nil {
		return errors.Wrap(err, "write vectors")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(vs))); err != nil {
		return errors.Wrap(err, "write vectors")
	}
	for _, v := range vs {
		if err := writeVec(w, v); err != nil {
			return errors.Wrap(err, "write vectors")
		}
	}
	return nil
}

func writeVec[T Number, D Dim, A Axes](w io.Writer, v Vec[T, D, A]) error {
	arr := v.Array()
	values := make([]float64, dimLen[D]())
	for i := range values {
		values[i] = float64(arr[i])
	}
	return binary.Write(w, binary.LittleEndian, values)
}

// ReadVecs reads the output of WriteVecs.
//
// The dimension and axes names in the data must match D and A.
func ReadVecs[A Axes, D Dim, T Number](r io.Reader) ([]Vec[T, D, A], error) {
	res, err := readVecs[A, D, T](r)
	if err != nil {
		return nil, errors.Wrap(err, "read vectors")
	}
	return res, nil
}

const maxReserve = 1 << 16

func readVecs[A Axes, D Dim, T Number](r io.Reader) ([]Vec[T, D, A], error) {
	var header [2]uint8
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	names := make([]byte, header[1])
	if _, err := io.ReadFull(r, names); err != nil {
		return nil, err
	}
	var axes A
	if n := dimLen[D](); int(header[0]) != n {
		return nil, errors.Errorf("expected dimension %d but got %d", n, header[0])
	} else if string(names) != axes.Names() {
		return nil, errors.Errorf("expected axes %q but got %q", axes.Names(), names)
	}
	checkShape[D, A]()

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	// The count is untrusted, so only a bounded capacity is reserved up front.
	capacity := int(count)
	if capacity > maxReserve {
		capacity = maxReserve
	}
	res := make([]Vec[T, D, A], 0, capacity)
	values := make([]float64, header[0])
	for i := 0; i < int(count); i++ {
		if err := binary.Read(r, binary.LittleEndian, values); err != nil {
			return nil, errors.Wrapf(err, "vector %d of %d", i, count)
		}
		var v Vec[T, D, A]
		for j, x := range values {
			v.data[j] = T(x)
		}
		res = append(res, v)
	}
	return res, nil
}

// Load opens a file and decodes it with a reader function.
func Load[T any](path string, f func(io.Reader) (T, error)) (T, error) {
	r, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer r.Close()
	return f(r)
}

// Save creates a file and encodes data into it with a writer function.
func Save[T any](path string, data T, f func(io.Writer, T) error) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f(w, data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
