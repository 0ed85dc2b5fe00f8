package ink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer in straight
// (non-premultiplied) RGBA format, 4 bytes per pixel, row-major.
type Pixmap struct {
	width  int
	height int
	pix    []uint8
}

// NewPixmap creates a new fully transparent pixmap with the given
// dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	dst := &image.NRGBA{Pix: pm.pix, Stride: pm.width * 4, Rect: image.Rect(0, 0, pm.width, pm.height)}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Pix returns the raw pixel data (straight RGBA, 4 bytes per pixel).
func (p *Pixmap) Pix() []uint8 { return p.pix }

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := NewPixmap(p.width, p.height)
	copy(q.pix, p.pix)
	return q
}

// CopyFrom overwrites the pixmap contents with src. Both pixmaps must
// have identical dimensions; mismatched sizes indicate a broken stroke
// state and panic.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	if src.width != p.width || src.height != p.height {
		panic(fmt.Sprintf("ink: pixmap size mismatch %dx%d vs %dx%d",
			p.width, p.height, src.width, src.height))
	}
	copy(p.pix, src.pix)
}

// CopyRect copies the pixels of src inside r. The rectangle is clipped
// to the shared bounds of both pixmaps.
func (p *Pixmap) CopyRect(src *Pixmap, r image.Rectangle) {
	r = r.Intersect(p.Bounds()).Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * p.width * 4
		srow := y * src.width * 4
		copy(p.pix[row+r.Min.X*4:row+r.Max.X*4], src.pix[srow+r.Min.X*4:srow+r.Max.X*4])
	}
}

// Clear resets every pixel to fully transparent black.
func (p *Pixmap) Clear() {
	clear(p.pix)
}

// RGBAAt returns the raw channels of a single pixel. Out-of-bounds
// coordinates read as transparent.
func (p *Pixmap) RGBAAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.pix[i], p.pix[i+1], p.pix[i+2], p.pix[i+3]
}

// SetRGBA sets the raw channels of a single pixel. Out-of-bounds
// coordinates are ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.pix[i] = r
	p.pix[i+1] = g
	p.pix[i+2] = b
	p.pix[i+3] = a
}

// ColorAt returns the color of a single pixel.
func (p *Pixmap) ColorAt(x, y int) Color {
	r, g, b, a := p.RGBAAt(x, y)
	return Color{R: r, G: g, B: b, A: a}
}

// SetColor sets the color of a single pixel.
func (p *Pixmap) SetColor(x, y int, c Color) {
	p.SetRGBA(x, y, c.R, c.G, c.B, c.A)
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c Color) {
	for i := 0; i < len(p.pix); i += 4 {
		p.pix[i] = c.R
		p.pix[i+1] = c.G
		p.pix[i+2] = c.B
		p.pix[i+3] = c.A
	}
}

// Equal reports whether two pixmaps have identical dimensions and
// byte-identical pixel data.
func (p *Pixmap) Equal(q *Pixmap) bool {
	return p.width == q.width && p.height == q.height && bytes.Equal(p.pix, q.pix)
}

// ToNRGBA converts the pixmap to an image.NRGBA sharing no storage.
func (p *Pixmap) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.pix)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToNRGBA())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.ColorAt(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
