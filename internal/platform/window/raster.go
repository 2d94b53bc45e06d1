// Package window is the desktop frontend: it raycasts the maze into a pixel
// framebuffer and shows it in an Ebitengine window with keyboard and gamepad
// input.
package window

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/games/maze3d"
	"github.com/vovakirdan/maze3d/internal/games/maze3d/raycast"
)

// Palette maps overlay tones to pixel colors.
var Palette = map[maze3d.Tone]color.RGBA{
	maze3d.ToneMenuBackdrop:     {0x10, 0x10, 0x30, 0xFF},
	maze3d.ToneShade:            {0x00, 0x00, 0x00, 0x80},
	maze3d.ToneCompleteBackdrop: {0x00, 0x33, 0x00, 0xFF},
	maze3d.ToneWinBackdrop:      {0x33, 0x26, 0x00, 0xFF},
	maze3d.ToneWhite:            {0xFF, 0xFF, 0xFF, 0xFF},
	maze3d.ToneSelected:         {0x66, 0x99, 0xFF, 0xFF},
	maze3d.ToneIdle:             {0x44, 0x44, 0x66, 0xFF},
	maze3d.ToneArrow:            {0xFF, 0xFF, 0x00, 0xFF},
	maze3d.ToneGreen:            {0x00, 0xCC, 0x00, 0xFF},
	maze3d.ToneRed:              {0xCC, 0x00, 0x00, 0xFF},
	maze3d.ToneYellow:           {0xCC, 0xCC, 0x00, 0xFF},
	maze3d.ToneGold:             {0xFF, 0xCC, 0x00, 0xFF},
	maze3d.TonePrompt:           {0x99, 0xCC, 0xFF, 0xFF},
}

var (
	ceilingColor = color.RGBA{0x20, 0x20, 0x28, 0xFF}
	floorColor   = color.RGBA{0x30, 0x2A, 0x24, 0xFF}
	brickColor   = color.RGBA{0xB0, 0x50, 0x30, 0xFF}
	exitColor    = color.RGBA{0x30, 0xE0, 0x60, 0xFF}
)

// Label is overlay text placed at canvas coordinates.
type Label struct {
	X, Y int
	Text string
}

// Rasterizer draws frames into an RGBA framebuffer of canvas size.
type Rasterizer struct {
	img *image.RGBA
}

// NewRasterizer creates a rasterizer with a width x height framebuffer.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the framebuffer.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Draw renders f and returns the text labels the caller should print on top.
func (r *Rasterizer) Draw(f maze3d.Frame) []Label {
	b := r.img.Bounds()
	r.fill(b, color.RGBA{0, 0, 0, 0xFF})

	if f.Scene {
		r.drawScene(f)
	}

	var labels []Label
	for _, p := range f.Overlay {
		rect := p.Rect.Scale(maze3d.CanvasW, maze3d.CanvasH, b.Dx(), b.Dy())
		c := Palette[p.Tone]
		switch p.Kind {
		case maze3d.PrimRect:
			r.blend(rect, c)
		case maze3d.PrimBar:
			r.fill(toImageRect(rect), c)
			if p.Label != "" {
				labels = append(labels, Label{
					X:    rect.X + 4,
					Y:    rect.Y + max(0, (rect.H-debugGlyphH)/2),
					Text: p.Label,
				})
			}
		case maze3d.PrimTriangle:
			r.triangle(rect, c)
		}
	}
	return labels
}

// debugGlyphH is the height of Ebitengine's debug font.
const debugGlyphH = 16

func (r *Rasterizer) drawScene(f maze3d.Frame) {
	w, h := r.img.Bounds().Dx(), r.img.Bounds().Dy()
	horizon := h / 2
	r.fill(image.Rect(0, 0, w, horizon), ceilingColor)
	r.fill(image.Rect(0, horizon, w, h), floorColor)

	hits := raycast.Cast(f.Segments, f.Camera, w)
	proj := raycast.ProjectionDistance(w, f.Camera.FOV)
	maxDepth := f.Camera.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 15
	}

	for x, hit := range hits {
		if !hit.OK {
			continue
		}
		lineH := int(proj / math.Max(hit.Dist, 0.05))
		top := max(0, horizon-lineH/2)
		bottom := min(h, horizon+lineH/2)

		base := brickColor
		if hit.IsExit {
			base = exitColor
		}
		light := 1 - core.ClampF(hit.Dist/maxDepth, 0, 0.85)
		if hit.Side {
			light *= 0.75
		}
		c := scale(base, light)
		for y := top; y < bottom; y++ {
			r.img.SetRGBA(x, y, c)
		}
	}
}

func (r *Rasterizer) fill(rect image.Rectangle, c color.RGBA) {
	rect = rect.Intersect(r.img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.img.SetRGBA(x, y, c)
		}
	}
}

// blend composites c over the framebuffer using its alpha.
func (r *Rasterizer) blend(rect core.Rect, c color.RGBA) {
	if c.A == 0xFF {
		r.fill(toImageRect(rect), c)
		return
	}
	a := float64(c.A) / 255
	ir := toImageRect(rect).Intersect(r.img.Bounds())
	for y := ir.Min.Y; y < ir.Max.Y; y++ {
		for x := ir.Min.X; x < ir.Max.X; x++ {
			d := r.img.RGBAAt(x, y)
			r.img.SetRGBA(x, y, color.RGBA{
				R: mix(d.R, c.R, a),
				G: mix(d.G, c.G, a),
				B: mix(d.B, c.B, a),
				A: 0xFF,
			})
		}
	}
}

// triangle fills a right-pointing triangle inscribed in rect.
func (r *Rasterizer) triangle(rect core.Rect, c color.RGBA) {
	for row := range rect.H {
		mid := math.Abs(2*(float64(row)+0.5)/float64(rect.H) - 1)
		span := max(1, int(math.Round((1-mid)*float64(rect.W))))
		r.fill(image.Rect(rect.X, rect.Y+row, rect.X+span, rect.Y+row+1), c)
	}
}

func toImageRect(r core.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func mix(dst, src uint8, a float64) uint8 {
	return uint8(float64(dst)*(1-a) + float64(src)*a)
}

func scale(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
