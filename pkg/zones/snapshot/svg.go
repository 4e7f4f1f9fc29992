package snapshot

import (
	"bytes"
	"fmt"

	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/zones"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	screen *geom.Rect
	fill   string
	stroke string
}

// WithSVGScreen sets the canvas to the screen frame instead of the
// bounding box of the resolved zones.
func WithSVGScreen(frame geom.Rect) SVGOption {
	return func(r *svgRenderer) { r.screen = &frame }
}

// WithSVGColors overrides the zone fill and stroke colors.
func WithSVGColors(fill, stroke string) SVGOption {
	return func(r *svgRenderer) { r.fill, r.stroke = fill, stroke }
}

// RenderSVG draws the resolved zones to scale, one labeled rectangle per
// zone. The output is a debugging artifact for inspecting gap and
// rounding behavior, not a compositor overlay.
func RenderSVG(l zones.Layout, resolved []geom.Rect, opts ...SVGOption) ([]byte, error) {
	if len(resolved) != len(l.Zones) {
		return nil, errors.New(errors.ErrCodeMismatchedLengths,
			"%d zones but %d resolved rectangles", len(l.Zones), len(resolved))
	}

	r := svgRenderer{fill: "#2d3748", stroke: "#63b3ed"}
	for _, opt := range opts {
		opt(&r)
	}

	canvas := boundingBox(resolved)
	if r.screen != nil {
		canvas = *r.screen
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.0f %.0f %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		canvas.X, canvas.Y, canvas.W, canvas.H, canvas.W, canvas.H)
	fmt.Fprintf(&buf, `  <rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="#1a202c"/>`+"\n",
		canvas.X, canvas.Y, canvas.W, canvas.H)

	for i, z := range l.Zones {
		box := resolved[i]
		if box.IsEmpty() {
			continue
		}
		fmt.Fprintf(&buf,
			`  <rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s" stroke="%s" stroke-width="2" rx="6"/>`+"\n",
			box.X, box.Y, box.W, box.H, r.fill, r.stroke)
		fontSize := box.H / 4
		if max := box.W / 3; fontSize > max {
			fontSize = max
		}
		fmt.Fprintf(&buf,
			`  <text x="%.0f" y="%.0f" font-family="sans-serif" font-size="%.0f" fill="#e2e8f0" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
			box.CenterX(), box.CenterY(), fontSize, z.Number)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func boundingBox(rects []geom.Rect) geom.Rect {
	var box geom.Rect
	first := true
	for _, r := range rects {
		if r.IsEmpty() {
			continue
		}
		if first {
			box = r
			first = false
			continue
		}
		x1 := min(box.X, r.X)
		y1 := min(box.Y, r.Y)
		x2 := max(box.Right(), r.Right())
		y2 := max(box.Bottom(), r.Bottom())
		box = geom.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
	}
	return box
}
