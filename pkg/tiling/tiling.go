package tiling

import (
	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
)

// Algorithm identifies one of the built-in tiling strategies.
type Algorithm string

// Built-in algorithms.
const (
	Monocle     Algorithm = "monocle"
	MasterStack Algorithm = "master-stack"
	BSP         Algorithm = "bsp"
	Fibonacci   Algorithm = "fibonacci"
	ThreeColumn Algorithm = "three-column"
)

// Algorithms returns all built-in algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Monocle, MasterStack, BSP, Fibonacci, ThreeColumn}
}

// Parse converts a user-supplied name into an Algorithm.
func Parse(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidAlgorithm, "unknown tiling algorithm: %q", name)
}

// fullArea is the normalized rectangle covering the whole screen.
var fullArea = geom.Rect{X: 0, Y: 0, W: 1, H: 1}

// Generate runs the given algorithm. It returns nil for n <= 0 and the
// full unit square for n == 1, for every algorithm.
func Generate(alg Algorithm, n int, p Params) []geom.Rect {
	if n <= 0 {
		return nil
	}
	switch alg {
	case MasterStack:
		return masterStack(n, p)
	case BSP:
		return bsp(n, p)
	case Fibonacci:
		return fibonacci(n, p)
	case ThreeColumn:
		return threeColumn(n, p)
	default:
		return monocle()
	}
}

// monocle keeps all windows stacked in a single full-area zone.
func monocle() []geom.Rect {
	return []geom.Rect{fullArea}
}

// column subdivides r into count rows of equal height, appending them to
// out top to bottom. The last row absorbs the accumulated remainder so
// the rows always sum exactly to r's height.
func column(out []geom.Rect, r geom.Rect, count int) []geom.Rect {
	rowH := r.H / float64(count)
	for i := 0; i < count; i++ {
		y := r.Y + float64(i)*rowH
		h := rowH
		if i == count-1 {
			h = r.Bottom() - y
		}
		out = append(out, geom.Rect{X: r.X, Y: y, W: r.W, H: h})
	}
	return out
}
