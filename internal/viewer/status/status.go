// Package status tracks frame rate and formats the viewer's title line,
// which stands in for an on-screen HUD.
package status

import (
	"fmt"
	"strings"
	"time"
)

// FPSCounter averages frames over a fixed window.
type FPSCounter struct {
	Window time.Duration

	frames  int
	elapsed time.Duration
	fps     float64
}

// NewFPSCounter reports a new rate once per second.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{Window: time.Second}
}

// Tick records a frame that took dt. It returns true when the rate was
// recomputed.
func (c *FPSCounter) Tick(dt time.Duration) bool {
	c.frames++
	c.elapsed += dt
	if c.elapsed < c.Window {
		return false
	}
	c.fps = float64(c.frames) / c.elapsed.Seconds()
	c.frames = 0
	c.elapsed = 0
	return true
}

// FPS is the last computed rate.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// Line is what the title bar shows.
type Line struct {
	Name     string
	FPS      float64
	ShowFPS  bool
	Mode     string
	Polygon  string
	Cull     string
	Lighting bool
	Filter   string
	Debug    bool
}

// String renders the title, e.g.
// "solar.xml | 60 fps | freeroam | fill, cull back, lit, trilinear".
func (l Line) String() string {
	parts := []string{l.Name}
	if l.ShowFPS {
		parts = append(parts, fmt.Sprintf("%.0f fps", l.FPS))
	}
	parts = append(parts, l.Mode)

	toggles := []string{l.Polygon, "cull " + l.Cull}
	if l.Lighting {
		toggles = append(toggles, "lit")
	} else {
		toggles = append(toggles, "unlit")
	}
	toggles = append(toggles, l.Filter)
	if l.Debug {
		toggles = append(toggles, "debug")
	}
	parts = append(parts, strings.Join(toggles, ", "))

	return strings.Join(parts, " | ")
}
