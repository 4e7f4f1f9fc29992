package snapshot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/zones"
	"github.com/snapzone/snapzone/pkg/zones/constraint"
)

// ToDOT converts the zone adjacency graph to Graphviz DOT format. Nodes
// are zones (labeled with their display number and resolved size), edges
// connect zones the constraint passes treat as neighbors within
// gapThreshold. Render the result with [RenderDOTSVG] or [RenderDOTPNG].
func ToDOT(l zones.Layout, resolved []geom.Rect, gapThreshold float64) string {
	var buf bytes.Buffer
	buf.WriteString("graph zones {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i, z := range l.Zones {
		label := fmt.Sprintf("zone %d\n%.0fx%.0f", z.Number, resolved[i].W, resolved[i].H)
		fmt.Fprintf(&buf, "  %d [label=%q];\n", z.Number, label)
	}

	buf.WriteString("\n")
	for _, p := range constraint.Pairs(resolved, gapThreshold) {
		fmt.Fprintf(&buf, "  %d -- %d;\n", l.Zones[p[0]].Number, l.Zones[p[1]].Number)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using Graphviz.
func RenderDOTPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
