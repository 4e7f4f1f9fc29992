package layoutfile

import (
	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/tiling"
	"github.com/snapzone/snapzone/pkg/zones"
)

// Builtin returns the built-in layout library. These are always
// available without a layout file and carry no gap overrides, so the
// global settings apply unchanged.
func Builtin() []zones.Layout {
	return []zones.Layout{
		zones.FromRects("halves", []geom.Rect{
			{X: 0, Y: 0, W: 0.5, H: 1},
			{X: 0.5, Y: 0, W: 0.5, H: 1},
		}),
		zones.FromRects("thirds", []geom.Rect{
			{X: 0, Y: 0, W: 1.0 / 3, H: 1},
			{X: 1.0 / 3, Y: 0, W: 1.0 / 3, H: 1},
			{X: 2.0 / 3, Y: 0, W: 1 - 2.0/3, H: 1},
		}),
		zones.FromRects("grid", tiling.Generate(tiling.BSP, 4, tiling.Params{MasterRatio: 0.5})),
		zones.FromRects("main-left", tiling.Generate(tiling.MasterStack, 3, tiling.Params{
			MasterRatio: 0.6,
			MasterCount: 1,
		})),
		zones.FromRects("ultrawide", tiling.Generate(tiling.ThreeColumn, 5, tiling.Params{
			MasterRatio: 0.5,
			MasterCount: 1,
		})),
	}
}
