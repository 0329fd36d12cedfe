// Command xforminfo prints numeric properties of standard 3D transform
// matrices.
//
// Usage:
//
//	xforminfo [flags] [transform-name ...]
//
// Without arguments it prints info for all known transforms.
//
// Examples:
//
//	xforminfo rotate-z
//	xforminfo -angle 0.5 rotate-x rotate-axis
//	xforminfo -fov 1.2 -aspect 1.78 perspective
//	xforminfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-linalg/mat"
	"github.com/cwbudde/algo-linalg/transform"
	"github.com/cwbudde/algo-linalg/vec"
)

type params struct {
	angle  float64
	scale  float64
	fov    float64
	aspect float64
	near   float64
	far    float64
}

type transformEntry struct {
	name  string
	build func(p params) mat.Mat4[float64]
}

var registry = []transformEntry{
	{"identity", func(params) mat.Mat4[float64] {
		return mat.Identity4[float64]()
	}},
	{"rotate-x", func(p params) mat.Mat4[float64] {
		return transform.RotateX(p.angle)
	}},
	{"rotate-y", func(p params) mat.Mat4[float64] {
		return transform.RotateY(p.angle)
	}},
	{"rotate-z", func(p params) mat.Mat4[float64] {
		return transform.RotateZ(p.angle)
	}},
	{"rotate-axis", func(p params) mat.Mat4[float64] {
		return transform.RotateAxis(vec.V3(1.0, 1, 1), p.angle)
	}},
	{"scale", func(p params) mat.Mat4[float64] {
		return transform.Scale3(vec.V3(p.scale, p.scale, p.scale))
	}},
	{"translate", func(params) mat.Mat4[float64] {
		return transform.Translate3(vec.V3(1.0, 2, 3))
	}},
	{"look-at", func(params) mat.Mat4[float64] {
		return transform.LookAt(vec.V3(0.0, 0, 5), vec.V3(0.0, 0, 0), vec.V3(0.0, 1, 0))
	}},
	{"perspective", func(p params) mat.Mat4[float64] {
		return transform.Perspective(p.fov, p.aspect, p.near, p.far)
	}},
	{"orthographic", func(p params) mat.Mat4[float64] {
		return transform.Orthographic(-1, 1, -1, 1, p.near, p.far)
	}},
}

func main() {
	angle := flag.Float64("angle", math.Pi/4, "rotation angle in radians")
	scale := flag.Float64("scale", 2, "uniform scale factor")
	fov := flag.Float64("fov", math.Pi/2, "vertical field of view in radians")
	aspect := flag.Float64("aspect", 16.0/9.0, "projection aspect ratio")
	near := flag.Float64("near", 0.1, "near clip distance")
	far := flag.Float64("far", 100, "far clip distance")
	all := flag.Bool("all", false, "show all transforms")
	list := flag.Bool("list", false, "list available transform names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xforminfo [flags] [transform-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints numeric properties of standard 3D transform matrices.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all transforms.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xforminfo rotate-z scale\n")
		fmt.Fprintf(os.Stderr, "  xforminfo -angle 0.5 rotate-axis\n")
		fmt.Fprintf(os.Stderr, "  xforminfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	p := params{
		angle:  *angle,
		scale:  *scale,
		fov:    *fov,
		aspect: *aspect,
		near:   *near,
		far:    *far,
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching transforms\n")
		os.Exit(1)
	}

	printAnalysis(entries, p)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []transformEntry {
	byName := make(map[string]transformEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []transformEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown transform %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// frobenius returns the Frobenius norm of m.
func frobenius(m mat.Mat4[float64]) float64 {
	var sum float64
	for _, x := range m {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// isOrthonormal reports whether the upper-left 3x3 block of m is a
// rotation-like orthonormal basis.
func isOrthonormal(m mat.Mat4[float64]) bool {
	const tol = 1e-9
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ri := m.Row(i).XYZ()
			rj := m.Row(j).XYZ()
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(ri.Dot(rj)-want) > tol {
				return false
			}
		}
	}
	return true
}

func printAnalysis(entries []transformEntry, p params) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Transform\tDet\tTrace\tFrobenius\tOrthonormal\tInvertible\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "---------\t---\t-----\t---------\t-----------\t----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		m := e.build(p)

		_, invErr := mat.Inverse4(m)

		if _, err := fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\t%t\t%t\n",
			e.name,
			m.Det(),
			m.Trace(),
			frobenius(m),
			isOrthonormal(m),
			invErr == nil,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
