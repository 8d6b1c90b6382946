// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the colors needed to render the static map background.
type MapColors struct {
	BackgroundColor   color.RGBA
	EmptyLightColor   color.RGBA
	EmptyDarkColor    color.RGBA
	WalkableColor     color.RGBA
	BlockedColor      color.RGBA
	TowerColor        color.RGBA
	EndpointTextColor color.RGBA
	ArrowColor        color.RGBA
	StrokeWidth       float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
