package core

import "fmt"

// RGB is the color of one display cell.
// A transparent cell lets whatever is underneath show through during overlay,
// and its red/green/blue levels carry no meaning.
type RGB struct {
	Transparent bool
	R, G, B     uint8
}

// Predefined colors for critters and scenes.
var (
	Transparent = RGB{Transparent: true, R: 255, G: 255, B: 255}
	Black       = RGB{R: 0, G: 0, B: 0}
	White       = RGB{R: 255, G: 255, B: 255}
	Red         = RGB{R: 255, G: 0, B: 0}
	Green       = RGB{R: 0, G: 255, B: 0}
	Blue        = RGB{R: 0, G: 0, B: 255}
	Yellow      = RGB{R: 255, G: 255, B: 0}
	Cyan        = RGB{R: 0, G: 255, B: 255}
	Magenta     = RGB{R: 255, G: 0, B: 255}
)

// NewRGB returns an opaque color with the given levels.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Equal reports whether two cells match in transparency and color.
// Any two transparent cells are equal.
func (c RGB) Equal(other RGB) bool {
	if c.Transparent || other.Transparent {
		return c.Transparent == other.Transparent
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// BestMatch returns the index of the palette entry closest to c using plain
// squared distance in RGB space. Returns -1 for an empty palette.
func (c RGB) BestMatch(palette []RGB) int {
	if len(palette) == 0 {
		return -1
	}
	best := 0
	bestDist := c.distSq(palette[0])
	for i := 1; i < len(palette); i++ {
		if d := c.distSq(palette[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func (c RGB) distSq(o RGB) int {
	rd := int(c.R) - int(o.R)
	gd := int(c.G) - int(o.G)
	bd := int(c.B) - int(o.B)
	return rd*rd + gd*gd + bd*bd
}

// String prints the color as (r148,g97,b0), or "(t)" when transparent.
func (c RGB) String() string {
	if c.Transparent {
		return "(t)"
	}
	return fmt.Sprintf("(r%d,g%d,b%d)", c.R, c.G, c.B)
}

// ANSIPalette is the 16-color terminal palette in xterm default levels.
// Index i corresponds to ANSI color code i.
var ANSIPalette = []RGB{
	NewRGB(0, 0, 0),
	NewRGB(205, 0, 0),
	NewRGB(0, 205, 0),
	NewRGB(205, 205, 0),
	NewRGB(0, 0, 238),
	NewRGB(205, 0, 205),
	NewRGB(0, 205, 205),
	NewRGB(229, 229, 229),
	NewRGB(127, 127, 127),
	NewRGB(255, 0, 0),
	NewRGB(0, 255, 0),
	NewRGB(255, 255, 0),
	NewRGB(92, 92, 255),
	NewRGB(255, 0, 255),
	NewRGB(0, 255, 255),
	NewRGB(255, 255, 255),
}
