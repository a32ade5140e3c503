package game

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color. A is 255 for opaque.
type Color struct {
	R, G, B, A uint8
}

// Layer tells a surface what a rectangle depicts, so surfaces without
// pixels can pick a glyph.
type Layer int

const (
	LayerParticle Layer = iota
	LayerBody
	LayerHead
	LayerFood
	LayerShade
)

// Rect is a filled rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float32
	Color      Color
	Layer      Layer
	Glow       bool
}

// Line is a one-pixel stroke in canvas pixels.
type Line struct {
	X1, Y1, X2, Y2 float32
	Color          Color
}

// Text is an overlay label. With Centered set, X and Y are the center.
type Text struct {
	Text     string
	X, Y     float32
	Size     int32
	Color    Color
	Centered bool
}

// HUD carries the numbers shown beside the canvas.
type HUD struct {
	Score int
	Best  int
	Speed float64
	State string
}

// Frame is a complete draw description. Surfaces draw it back to front:
// background, lines, rects, texts.
type Frame struct {
	Width, Height int
	TileSize      int
	Background    Color
	Lines         []Line
	Rects         []Rect
	Texts         []Text
	HUD           HUD
}

var (
	ColorBackground = Color{R: 0x0d, G: 0x0d, B: 0x0d, A: 255}
	ColorGrid       = Color{R: 0x22, G: 0x22, B: 0x22, A: 255}
	ColorHead       = Color{R: 0x00, G: 0xff, B: 0xcc, A: 255}
	ColorFood       = Color{R: 0xff, G: 0x00, B: 0xde, A: 255}
	ColorText       = Color{R: 0xff, G: 0xff, B: 0xff, A: 255}
)

// BodyColor is the gradient along the body: hue 160 plus 2 degrees per
// segment, full saturation, half lightness.
func BodyColor(index int) Color {
	hue := math.Mod(float64(160+index*2), 360)
	r, g, b := colorful.Hsl(hue, 1, 0.5).RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}
