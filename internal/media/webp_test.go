package media

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestToWebPConvertsPNG(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 64, 32))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(out) < 12 || string(out[0:4]) != "RIFF" || string(out[8:12]) != "WEBP" {
		t.Fatalf("output is not a webp container")
	}
}

func TestToWebPScalesWideImages(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 2400, 600))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != MaxWidth || cfg.Height != 300 {
		t.Fatalf("expected %dx300, got %dx%d", MaxWidth, cfg.Width, cfg.Height)
	}
}

func TestToWebPRejectsGarbage(t *testing.T) {
	if _, err := ToWebP([]byte("definitely not an image")); !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
}

// withDimensions rewrites the IHDR width and height of a PNG and fixes the
// chunk CRC, leaving a small file that declares a huge image.
func withDimensions(data []byte, w, h uint32) []byte {
	out := append([]byte(nil), data...)
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestToWebPRejectsHugeDimensions(t *testing.T) {
	huge := withDimensions(pngBytes(t, 4, 4), 16000, 16000)

	cfg, err := png.DecodeConfig(bytes.NewReader(huge))
	if err != nil || cfg.Width != 16000 {
		t.Fatalf("expected a valid 16000px header, got %+v (%v)", cfg, err)
	}

	if _, err := ToWebP(huge); !errors.Is(err, ErrTooManyPixels) {
		t.Fatalf("expected ErrTooManyPixels, got %v", err)
	}
}
