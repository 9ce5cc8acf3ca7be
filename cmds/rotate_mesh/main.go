package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/vecexpr/vecexpr"
)

func main() {
	var axisX, axisY, axisZ float64
	var angle float64
	var steps int
	flag.Float64Var(&axisX, "axis-x", 0, "x component of rotation axis")
	flag.Float64Var(&axisY, "axis-y", 0, "y component of rotation axis")
	flag.Float64Var(&axisZ, "axis-z", 1, "z component of rotation axis")
	flag.Float64Var(&angle, "angle", 90, "rotation angle in degrees")
	flag.IntVar(&steps, "steps", 1, "number of times to compose the rotation")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: rotate_mesh [flags] <input.stl> <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Creating rotation...")
	step, err := vecexpr.AxisAngle(vecexpr.Vec3(axisX, axisY, axisZ), angle*math.Pi/180)
	essentials.Must(err)
	rotation := vecexpr.IdentityQuat[float64]()
	for i := 0; i < steps; i++ {
		// Materialize each step so the expression does not grow with steps.
		rotation = step.Mul(rotation).Value()
	}
	log.Printf(" => quaternion %v", rotation)

	log.Println("Loading mesh...")
	inputTris, err := vecexpr.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	mesh := model3d.NewMeshTriangles(inputTris)

	log.Println("Rotating vertices...")
	vertices := mesh.VertexSlice()
	rotated, err := vecexpr.RotateCoords(rotation, vertices)
	essentials.Must(err)
	mapping := make(map[model3d.Coord3D]model3d.Coord3D, len(vertices))
	for i, v := range vertices {
		mapping[v] = rotated[i]
	}
	mesh = mesh.MapCoords(func(c model3d.Coord3D) model3d.Coord3D {
		return mapping[c]
	})

	log.Println("Saving mesh...")
	essentials.Must(mesh.SaveGroupedSTL(outputPath))
}
