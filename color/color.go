// Package color converts between the RGB and HSV color spaces.
package color

import "math"

// RGB is a color with 8-bit red, green and blue components.
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// HSV is a color with hue in degrees [0, 360) and saturation and value in
// [0, 1].
type HSV struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// greyDelta is the largest channel spread still treated as grey.
const greyDelta = 0.00001

// HSV converts c to the HSV color space.
func (c RGB) HSV() HSV {
	r := float64(c.Red) / 255
	g := float64(c.Green) / 255
	b := float64(c.Blue) / 255

	lo := math.Min(math.Min(r, g), b)
	hi := math.Max(math.Max(r, g), b)

	delta := hi - lo
	if delta < greyDelta {
		return HSV{Value: hi}
	}

	var hue float64
	switch {
	case r >= hi:
		hue = (g - b) / delta
	case g >= hi:
		hue = 2 + (b-r)/delta
	default:
		hue = 4 + (r-g)/delta
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}

	return HSV{Hue: hue, Saturation: delta / hi, Value: hi}
}

// RGB converts c to the RGB color space. Components are truncated, not
// rounded, and saturate at 0 and 255. A hue above 360 is treated as 0.
func (c HSV) RGB() RGB {
	s := toByte(c.Saturation * 255)
	v := toByte(c.Value * 255)
	if s == 0 {
		return RGB{v, v, v}
	}

	hue := c.Hue
	if hue > 360 {
		hue = 0
	}
	hue /= 60
	var sector uint32
	if hue > 0 {
		sector = uint32(hue)
	}
	ff := hue - float64(sector)

	p := toByte(c.Value * (1 - c.Saturation) * 255)
	q := toByte(c.Value * (1 - c.Saturation*ff) * 255)
	t := toByte(c.Value * (1 - c.Saturation*(1-ff)) * 255)

	switch sector {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default:
		return RGB{v, p, q}
	}
}

// toByte truncates f into [0, 255]. NaN becomes 0.
func toByte(f float64) uint8 {
	switch {
	case !(f > 0):
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}
