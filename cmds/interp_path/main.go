package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/vecexpr/vecexpr"
)

func main() {
	var startStr, endStr string
	var steps int
	var spherical bool
	var outputPath string
	flag.StringVar(&startStr, "start", "1,0,0", "comma-separated start vector")
	flag.StringVar(&endStr, "end", "0,1,0", "comma-separated end vector")
	flag.IntVar(&steps, "steps", 10, "number of intervals along the path")
	flag.BoolVar(&spherical, "slerp", false, "use spherical rather than linear interpolation")
	flag.StringVar(&outputPath, "output", "", "optional binary output path")
	flag.Parse()

	if len(flag.Args()) != 0 || steps < 1 {
		fmt.Fprintln(os.Stderr, "Usage: interp_path [flags]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	start, err := parseVec(startStr)
	essentials.Must(err)
	end, err := parseVec(endStr)
	essentials.Must(err)

	log.Printf("Interpolating from %v to %v...", start, end)
	path := make([]vecexpr.Coord3D, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		var point vecexpr.Coord3D
		if spherical {
			point, err = vecexpr.Slerp(start, end, t)
			if vecexpr.IsDomainError(err) {
				log.Printf("slerp undefined (%v), falling back to lerp", err)
				spherical = false
				point = vecexpr.Lerp(start, end, t)
			} else {
				essentials.Must(err)
			}
		} else {
			point = vecexpr.Lerp(start, end, t)
		}
		point = point.Value()
		path = append(path, point)
		fmt.Printf("%f\t%v\t|%f|\n", t, point, vecexpr.Magnitude(point).Value())
	}

	if outputPath != "" {
		log.Println("Saving path...")
		essentials.Must(vecexpr.Save(outputPath, path, vecexpr.WriteVecs[float64, vecexpr.D3, vecexpr.XYZW]))
	}
}

func parseVec(s string) (vecexpr.Coord3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vecexpr.Coord3D{}, errors.Errorf("parse vector %q: expected 3 components", s)
	}
	var values [3]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return vecexpr.Coord3D{}, errors.Wrap(err, "parse vector")
		}
		values[i] = x
	}
	return vecexpr.Vec3(values[0], values[1], values[2]), nil
}
