package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// twoRows is a 2x2 image: red top row, blue bottom row.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, red)
	img.SetNRGBA(0, 1, blue)
	img.SetNRGBA(1, 1, blue)
	return img
}

func checkBottomUp(t *testing.T, img *Image) {
	t.Helper()
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("expected 2x2, got %dx%d", img.Width, img.Height)
	}
	if got := img.At(0, 0); got != [4]byte{0, 0, 255, 255} {
		t.Errorf("bottom row should be blue, got %v", got)
	}
	if got := img.At(1, 1); got != [4]byte{255, 0, 0, 255} {
		t.Errorf("top row should be red, got %v", got)
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, twoRows()); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(buf.Bytes(), "rows.png")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	checkBottomUp(t, img)
	if img.Name != "rows.png" {
		t.Errorf("expected name rows.png, got %q", img.Name)
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, twoRows()); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(buf.Bytes(), "rows.bmp")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	checkBottomUp(t, img)
}

// tgaHeader builds a 2x2 header. Descriptor 0 means rows are stored
// bottom-up.
func tgaHeader(imageType, bpp byte) []byte {
	h := make([]byte, tgaHeaderSize)
	h[2] = imageType
	h[12], h[14] = 2, 2
	h[16] = bpp
	return h
}

func TestDecodeTGAUncompressed(t *testing.T) {
	data := tgaHeader(TGATypeTrueColor, 24)
	// Bottom row first, BGR.
	data = append(data,
		255, 0, 0, 255, 0, 0,
		0, 0, 255, 0, 0, 255,
	)
	img, err := Decode(data, "rows.TGA")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	checkBottomUp(t, img)
}

func TestDecodeTGARLE(t *testing.T) {
	data := tgaHeader(TGATypeTrueColorRLE, 32)
	data = append(data,
		0x81, 255, 0, 0, 255, // run of 2 blue
		0x01, 0, 0, 255, 255, 0, 0, 255, 255, // 2 raw red
	)
	img, err := Decode(data, "rows.tga")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	checkBottomUp(t, img)
}

func TestDecodeTGAGrayscale(t *testing.T) {
	data := tgaHeader(TGATypeGrayscale, 8)
	data = append(data, 10, 20, 30, 40)
	src, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if c := src.At(0, 1).(color.NRGBA); c.R != 10 || c.G != 10 || c.A != 255 {
		t.Errorf("unexpected bottom-left pixel %v", c)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", []byte{0, 0, 2}, ErrTruncatedTGA},
		{"truncated pixels", append(tgaHeader(TGATypeTrueColor, 24), 1, 2, 3), ErrTruncatedTGA},
		{"color mapped", func() []byte { h := tgaHeader(1, 8); h[1] = 1; return h }(), ErrUnsupportedFormat},
		{"bit depth", tgaHeader(TGATypeTrueColor, 16), ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		if _, err := DecodeTGA(tt.data); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestDecodeUnknown(t *testing.T) {
	_, err := Decode([]byte("not an image"), "notes.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFitLargeImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, MaxSize*2, 8))
	img := FromImage(fit(src, MaxSize))
	if img.Width != MaxSize || img.Height != 4 {
		t.Errorf("expected %dx4, got %dx%d", MaxSize, img.Width, img.Height)
	}
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, twoRows()); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "earth.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkBottomUp(t, img)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
