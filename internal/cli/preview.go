package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/tiling"
	"github.com/snapzone/snapzone/pkg/zones"
	"github.com/snapzone/snapzone/pkg/zones/geometry"
)

// newPreviewCmd creates the preview command, an interactive terminal view
// of the tiling algorithms.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Interactively explore tiling algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPreviewModel()
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// =============================================================================
// previewModel - Interactive algorithm preview
// =============================================================================

// previewModel is the bubbletea model for the algorithm preview. It keeps
// the current algorithm, window count, and master parameters and redraws
// the zone grid on every change.
type previewModel struct {
	algorithms []tiling.Algorithm
	algIndex   int
	windows    int
	params     tiling.Params
	width      int
	height     int
}

func newPreviewModel() previewModel {
	return previewModel{
		algorithms: tiling.Algorithms(),
		windows:    4,
		params:     tiling.DefaultParams(),
		width:      80,
		height:     24,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.algIndex = (m.algIndex + len(m.algorithms) - 1) % len(m.algorithms)
		case "right", "l":
			m.algIndex = (m.algIndex + 1) % len(m.algorithms)
		case "up", "k":
			if m.windows < 16 {
				m.windows++
			}
		case "down", "j":
			if m.windows > 1 {
				m.windows--
			}
		case "+", "=":
			m.params.MasterRatio = math.Min(tiling.MaxRatio, m.params.MasterRatio+0.05)
		case "-":
			m.params.MasterRatio = math.Max(tiling.MinRatio, m.params.MasterRatio-0.05)
		case "m":
			m.params.MasterCount++
			if m.params.MasterCount > m.windows {
				m.params.MasterCount = 1
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	alg := m.algorithms[m.algIndex]
	b.WriteString(StyleTitle.Render("Snapzone Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ algorithm  ↑/↓ windows  +/- ratio  m master count  q quit"))
	b.WriteString("\n\n")
	b.WriteString(StyleHighlight.Render(string(alg)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  windows %d · ratio %.2f · masters %d",
		m.windows, m.params.MasterRatio, m.params.MasterCount)))
	b.WriteString("\n\n")

	cols := m.width - 2
	rows := m.height - 7
	if cols < 20 {
		cols = 20
	}
	if rows < 8 {
		rows = 8
	}
	b.WriteString(renderZoneGrid(alg, m.windows, m.params, cols, rows))

	return b.String()
}

// =============================================================================
// Character-Grid Rendering
// =============================================================================

// renderZoneGrid draws the layout as box-drawing characters on a character
// canvas. Zones are resolved with zero gaps so shared edges collapse onto
// the same cell column or row.
func renderZoneGrid(alg tiling.Algorithm, windows int, params tiling.Params, cols, rows int) string {
	rects := tiling.Generate(alg, windows, params)
	layout := zones.FromRects(string(alg), rects)
	layout.Padding = 0
	layout.OuterGap = 0

	frame := geom.Rect{W: float64(cols - 1), H: float64(rows - 1)}
	resolved := geometry.ResolveZones(layout, frame, zones.DefaultSettings())

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for i, r := range resolved {
		drawBox(grid, r)
		label := fmt.Sprintf("%d", layout.Zones[i].Number)
		cx := int(r.CenterX())
		cy := int(r.CenterY())
		if cy >= 0 && cy < rows && cx >= 0 && cx+len(label) <= cols {
			for j, ch := range label {
				grid[cy][cx+j] = ch
			}
		}
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lipgloss.NewStyle().Foreground(colorCyan).Render(strings.Join(lines, "\n"))
}

// drawBox draws the outline of r onto the grid, clamped to the canvas.
func drawBox(grid [][]rune, r geom.Rect) {
	rows := len(grid)
	cols := len(grid[0])
	x0 := clampInt(int(r.X), 0, cols-1)
	x1 := clampInt(int(r.Right()), 0, cols-1)
	y0 := clampInt(int(r.Y), 0, rows-1)
	y1 := clampInt(int(r.Bottom()), 0, rows-1)

	for x := x0; x <= x1; x++ {
		grid[y0][x] = '─'
		grid[y1][x] = '─'
	}
	for y := y0; y <= y1; y++ {
		grid[y][x0] = '│'
		grid[y][x1] = '│'
	}
	grid[y0][x0] = '┌'
	grid[y0][x1] = '┐'
	grid[y1][x0] = '└'
	grid[y1][x1] = '┘'
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
