// Package layoutfile reads layout and settings definitions from TOML
// files and exposes the built-in layout library.
//
// A layout file holds an optional [settings] table with global gap
// defaults and any number of [[layout]] tables, each with ordered
// [[layout.zone]] entries in normalized coordinates. Absent values keep
// their "unset" semantics so the gap cascade behaves exactly as if the
// override had never been written.
package layoutfile

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/zones"
)

// File is the decoded content of a layout file.
type File struct {
	Settings zones.Settings
	Layouts  []zones.Layout
}

type fileConfig struct {
	Settings settingsConfig `toml:"settings"`
	Layouts  []layoutConfig `toml:"layout"`
}

type settingsConfig struct {
	Padding   *float64    `toml:"padding"`
	OuterGap  *float64    `toml:"outer_gap"`
	OuterGaps *gapsConfig `toml:"outer_gaps"`
}

type layoutConfig struct {
	Name      string       `toml:"name"`
	FullArea  bool         `toml:"full_area"`
	Padding   *float64     `toml:"padding"`
	OuterGap  *float64     `toml:"outer_gap"`
	OuterGaps *gapsConfig  `toml:"outer_gaps"`
	Zones     []zoneConfig `toml:"zone"`
}

type gapsConfig struct {
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
}

type zoneConfig struct {
	ID        string  `toml:"id"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	MinWidth  float64 `toml:"min_width"`
	MinHeight float64 `toml:"min_height"`
}

// Load reads and parses the layout file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading layout file %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML layout data. Every layout is validated; zones keep
// their file order and are numbered from 1.
func Parse(data []byte) (File, error) {
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "parsing layout file")
	}

	out := File{Settings: toSettings(cfg.Settings)}
	for _, lc := range cfg.Layouts {
		l, err := toLayout(lc)
		if err != nil {
			return File{}, err
		}
		out.Layouts = append(out.Layouts, l)
	}
	return out, nil
}

// Find returns the layout with the given name.
func (f File) Find(name string) (zones.Layout, error) {
	for _, l := range f.Layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return zones.Layout{}, errors.New(errors.ErrCodeNotFound, "layout %q not found", name)
}

func toSettings(c settingsConfig) zones.Settings {
	s := zones.DefaultSettings()
	if c.Padding != nil {
		s.Padding = *c.Padding
	}
	if c.OuterGap != nil {
		s.OuterGap = *c.OuterGap
	}
	if c.OuterGaps != nil {
		g := c.OuterGaps.toGaps()
		s.OuterGaps = &g
	}
	return s
}

func toLayout(c layoutConfig) (zones.Layout, error) {
	l := zones.NewLayout(c.Name)
	l.UseFullArea = c.FullArea
	if c.Padding != nil {
		l.Padding = *c.Padding
	}
	if c.OuterGap != nil {
		l.OuterGap = *c.OuterGap
	}
	if c.OuterGaps != nil {
		g := c.OuterGaps.toGaps()
		l.OuterGaps = &g
	}

	for i, zc := range c.Zones {
		z := zones.NewZone(i+1, geom.Rect{X: zc.X, Y: zc.Y, W: zc.Width, H: zc.Height})
		if zc.ID != "" {
			id, err := uuid.Parse(zc.ID)
			if err != nil {
				return zones.Layout{}, errors.Wrap(errors.ErrCodeInvalidZone, err,
					"zone %d of layout %q has a malformed id", i+1, c.Name)
			}
			z.ID = id
		}
		z.MinSize = geom.Size{W: zc.MinWidth, H: zc.MinHeight}
		l.Zones = append(l.Zones, z)
	}

	if err := l.Validate(); err != nil {
		return zones.Layout{}, err
	}
	return l, nil
}

func (g gapsConfig) toGaps() geom.Gaps {
	return geom.Gaps{Top: g.Top, Bottom: g.Bottom, Left: g.Left, Right: g.Right}
}
