// Package texture decodes image files into RGBA pixel data ready for
// OpenGL upload.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder registration
)

// ErrUnsupportedFormat is returned for image formats no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// MaxSize is the largest edge uploaded as-is. Bigger images are scaled
// down before upload.
const MaxSize = 4096

// Image is 8-bit RGBA pixel data. Rows are stored bottom-up, which is the
// order glTexImage2D expects for texture coordinate (0,0) at the lower
// left corner.
type Image struct {
	Name   string
	Width  int
	Height int
	Pix    []byte
}

// Load reads and decodes the image file at path.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}
	img, err := Decode(data, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode decodes data. name picks the TGA decoder by extension since TGA
// has no signature; every other format is sniffed.
func Decode(data []byte, name string) (*Image, error) {
	var (
		src image.Image
		err error
	)
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		src, err = DecodeTGA(data)
	} else {
		src, _, err = image.Decode(bytes.NewReader(data))
		if errors.Is(err, image.ErrFormat) {
			err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
		}
	}
	if err != nil {
		return nil, err
	}

	img := FromImage(fit(src, MaxSize))
	img.Name = name
	return img, nil
}

// FromImage converts img to bottom-up RGBA.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	out := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]byte, len(rgba.Pix)),
	}
	row := b.Dx() * 4
	for y := 0; y < out.Height; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+row]
		dst := (out.Height - 1 - y) * row
		copy(out.Pix[dst:dst+row], src)
	}
	return out
}

// fit scales img down so neither edge exceeds limit, keeping the aspect.
func fit(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= limit && h <= limit {
		return img
	}
	if w >= h {
		h = h * limit / w
		w = limit
	} else {
		w = w * limit / h
		h = limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// At returns the RGBA bytes at x,y with y measured from the bottom row.
func (img *Image) At(x, y int) [4]byte {
	i := (y*img.Width + x) * 4
	return [4]byte{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}
