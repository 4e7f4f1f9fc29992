package snapshot

import (
	"encoding/json"

	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/zones"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	screen   *geom.Rect
	assigned map[int]bool
}

// WithScreen records the screen frame the zones were resolved against.
func WithScreen(frame geom.Rect) JSONOption {
	return func(r *jsonRenderer) { r.screen = &frame }
}

// WithAssigned marks zones (by display number) as currently holding a
// window. Assigned zones are omitted from the snapshot, leaving only the
// empty zones a selection UI can offer.
func WithAssigned(numbers ...int) JSONOption {
	return func(r *jsonRenderer) {
		if r.assigned == nil {
			r.assigned = make(map[int]bool, len(numbers))
		}
		for _, n := range numbers {
			r.assigned[n] = true
		}
	}
}

type jsonOutput struct {
	Layout string     `json:"layout"`
	Screen *jsonRect  `json:"screen,omitempty"`
	Zones  []jsonZone `json:"zones"`
}

type jsonZone struct {
	ID        string   `json:"id"`
	Number    int      `json:"number"`
	Rect      jsonRect `json:"rect"`     // normalized
	Geometry  jsonRect `json:"geometry"` // resolved pixels
	MinWidth  float64  `json:"min_width,omitempty"`
	MinHeight float64  `json:"min_height,omitempty"`
}

type jsonRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

func toJSONRect(r geom.Rect) jsonRect {
	return jsonRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// RenderJSON exports a layout's empty zones along with their resolved
// pixel geometry as a pretty-printed JSON document. resolved must hold
// one rectangle per layout zone, in layout order, as produced by the
// geometry package.
func RenderJSON(l zones.Layout, resolved []geom.Rect, opts ...JSONOption) ([]byte, error) {
	if len(resolved) != len(l.Zones) {
		return nil, errors.New(errors.ErrCodeMismatchedLengths,
			"%d zones but %d resolved rectangles", len(l.Zones), len(resolved))
	}

	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Layout: l.Name,
		Zones:  make([]jsonZone, 0, len(l.Zones)),
	}
	if r.screen != nil {
		s := toJSONRect(*r.screen)
		out.Screen = &s
	}

	for i, z := range l.Zones {
		if r.assigned[z.Number] {
			continue
		}
		out.Zones = append(out.Zones, jsonZone{
			ID:        z.ID.String(),
			Number:    z.Number,
			Rect:      toJSONRect(z.Rect),
			Geometry:  toJSONRect(resolved[i]),
			MinWidth:  z.MinSize.W,
			MinHeight: z.MinSize.H,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
