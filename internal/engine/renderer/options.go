package renderer

// PolygonMode is how triangles are rasterized.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

// Next cycles fill, line, point.
func (m PolygonMode) Next() PolygonMode { return (m + 1) % 3 }

func (m PolygonMode) String() string {
	switch m {
	case PolygonLine:
		return "line"
	case PolygonPoint:
		return "point"
	default:
		return "fill"
	}
}

// CullMode selects which faces are discarded.
type CullMode int

const (
	CullBack CullMode = iota
	CullFront
	CullNone
)

// Next cycles back, front, none.
func (m CullMode) Next() CullMode { return (m + 1) % 3 }

func (m CullMode) String() string {
	switch m {
	case CullFront:
		return "front"
	case CullNone:
		return "none"
	default:
		return "back"
	}
}

// Filter is the texture sampling mode.
type Filter int

const (
	FilterTrilinear Filter = iota
	FilterBilinear
	FilterNearest
)

// Next cycles trilinear, bilinear, nearest.
func (f Filter) Next() Filter { return (f + 1) % 3 }

func (f Filter) String() string {
	switch f {
	case FilterBilinear:
		return "bilinear"
	case FilterNearest:
		return "nearest"
	default:
		return "trilinear"
	}
}

// Options are the runtime render toggles.
type Options struct {
	Polygon  PolygonMode
	Cull     CullMode
	Lighting bool
	Filter   Filter
	// Debug draws the world axes, light markers and animation paths.
	Debug bool
}

// DefaultOptions renders filled, back-face culled, lit and trilinear.
func DefaultOptions() Options {
	return Options{Lighting: true}
}
