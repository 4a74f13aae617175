package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeTrueColor    = 2
	TGATypeGrayscale    = 3
	TGATypeTrueColorRLE = 10
	TGATypeGrayscaleRLE = 11
)

const tgaHeaderSize = 18

// ErrTruncatedTGA is returned when pixel data ends early.
var ErrTruncatedTGA = errors.New("TGA data truncated")

// DecodeTGA decodes an uncompressed or RLE TGA image in true-color (24/32
// bit) or grayscale (8 bit). Color-mapped images are not supported.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, ErrTruncatedTGA
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped TGA", ErrUnsupportedFormat)
	}

	var gray bool
	switch imageType {
	case TGATypeTrueColor, TGATypeTrueColorRLE:
		if bpp != 24 && bpp != 32 {
			return nil, fmt.Errorf("%w: TGA bit depth %d", ErrUnsupportedFormat, bpp)
		}
	case TGATypeGrayscale, TGATypeGrayscaleRLE:
		if bpp != 8 {
			return nil, fmt.Errorf("%w: grayscale TGA bit depth %d", ErrUnsupportedFormat, bpp)
		}
		gray = true
	default:
		return nil, fmt.Errorf("%w: TGA type %d", ErrUnsupportedFormat, imageType)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, ErrTruncatedTGA
	}

	r := &tgaReader{
		data:    data[offset:],
		bpp:     bpp / 8,
		gray:    gray,
		rle:     imageType == TGATypeTrueColorRLE || imageType == TGATypeGrayscaleRLE,
		img:     image.NewNRGBA(image.Rect(0, 0, width, height)),
		width:   width,
		height:  height,
		flipped: !topToBottom,
	}
	if err := r.decode(); err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	data    []byte
	pos     int
	bpp     int
	gray    bool
	rle     bool
	img     *image.NRGBA
	width   int
	height  int
	flipped bool
}

func (r *tgaReader) decode() error {
	total := r.width * r.height
	for i := 0; i < total; {
		if !r.rle {
			c, err := r.pixel()
			if err != nil {
				return err
			}
			r.set(i, c)
			i++
			continue
		}

		if r.pos >= len(r.data) {
			return ErrTruncatedTGA
		}
		packet := r.data[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, err := r.pixel()
			if err != nil {
				return err
			}
			for n := 0; n < count && i < total; n++ {
				r.set(i, c)
				i++
			}
			continue
		}
		for n := 0; n < count && i < total; n++ {
			c, err := r.pixel()
			if err != nil {
				return err
			}
			r.set(i, c)
			i++
		}
	}
	return nil
}

// pixel reads one BGR(A) or gray pixel.
func (r *tgaReader) pixel() (color.NRGBA, error) {
	if r.pos+r.bpp > len(r.data) {
		return color.NRGBA{}, ErrTruncatedTGA
	}
	p := r.data[r.pos : r.pos+r.bpp]
	r.pos += r.bpp

	if r.gray {
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: 255}, nil
	}
	c := color.NRGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, nil
}

// set stores pixel i of the file's scan order. TGA rows run bottom-up
// unless the descriptor says otherwise.
func (r *tgaReader) set(i int, c color.NRGBA) {
	x, y := i%r.width, i/r.width
	if r.flipped {
		y = r.height - 1 - y
	}
	r.img.SetNRGBA(x, y, c)
}
