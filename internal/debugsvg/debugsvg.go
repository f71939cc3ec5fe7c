// Package debugsvg renders one room's outer polygon, barriers, doors and
// synthesized ways to an SVG file: a direct coordinate projection of the
// room rather than a force-directed graph layout.
package debugsvg

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
)

const (
	width   = 1200
	height  = 900
	margin  = 40
	doorR   = 5
	nodeR   = 3
)

// WriteRoom renders room to "<dir>/room_<index>_<level>.svg".
func WriteRoom(dir string, index int, room *model.Room) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating debug SVG directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("room_%03d_%s.svg", index, sanitizeLevel(room.Level)))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	proj := newProjector(room)

	canvas := svg.New(f)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	drawPolygon(canvas, proj, room.Outer.Points(), "fill:#eef2f7;stroke:#333333;stroke-width:2")
	for _, b := range room.Barriers {
		drawPolygon(canvas, proj, b.Points(), "fill:#ffffff;stroke:#aa3333;stroke-width:1.5")
	}
	for _, way := range room.Ways {
		drawWay(canvas, proj, way)
	}
	for _, d := range room.Doors {
		x, y := proj.project(d)
		canvas.Circle(x, y, doorR, "fill:#2a9d8f;stroke:#14514a")
	}
	for _, d := range room.DecisionNodes {
		x, y := proj.project(d)
		canvas.Circle(x, y, nodeR, "fill:#e76f51")
	}

	canvas.Text(margin, 20, fmt.Sprintf("room %d, level %s", index, room.Level), "font-size:14px;font-family:sans-serif")
	canvas.End()
	return nil
}

func drawPolygon(canvas *svg.SVG, proj *projector, pts []geom.Point, style string) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = proj.project(p)
	}
	canvas.Polygon(xs, ys, style)
}

func drawWay(canvas *svg.SVG, proj *projector, w model.Way) {
	style := "stroke:#264653;stroke-width:1.5;fill:none"
	switch w.Type {
	case model.Stairs:
		style = "stroke:#e9c46a;stroke-width:2;fill:none"
	case model.Elevator:
		style = "stroke:#f4a261;stroke-width:2;fill:none"
	}
	for i := 0; i+1 < len(w.Points); i++ {
		x1, y1 := proj.project(w.Points[i])
		x2, y2 := proj.project(w.Points[i+1])
		canvas.Line(x1, y1, x2, y2, style)
	}
}

// projector maps a room's coordinate space into the canvas, preserving
// aspect ratio and leaving margin on every side.
type projector struct {
	minX, minY float64
	scale      float64
}

func newProjector(room *model.Room) *projector {
	pts := room.Outer.Points()
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	scale := math.Min(float64(width-2*margin)/spanX, float64(height-2*margin)/spanY)
	return &projector{minX: minX, minY: minY, scale: scale}
}

func (pr *projector) project(p geom.Point) (int, int) {
	x := margin + int((p.X-pr.minX)*pr.scale)
	y := margin + int((p.Y-pr.minY)*pr.scale)
	return x, y
}

func sanitizeLevel(level string) string {
	out := make([]rune, 0, len(level))
	for _, r := range level {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "level"
	}
	return string(out)
}
