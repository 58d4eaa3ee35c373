package ioutils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a jpeg: %v", err)
	}
	return img
}

func TestResize(t *testing.T) {
	tests := []struct {
		name                   string
		width, height, maxSize int
		wantWidth, wantHeight  int
	}{
		{"wide image bound by width", 200, 100, 50, 50, 25},
		{"tall image bound by height", 100, 200, 50, 25, 50},
		{"square image", 200, 200, 100, 100, 100},
		{"small image untouched", 40, 30, 50, 40, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resize(pngImage(t, tt.width, tt.height), tt.maxSize)
			if err != nil {
				t.Fatalf("Resize: %v", err)
			}
			bounds := decodeJPEG(t, out).Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("resized to %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestResizeRejectsGarbage(t *testing.T) {
	if _, err := Resize([]byte("not an image"), 100); err == nil {
		t.Error("expected a decode error")
	}
}

func TestToJPEG(t *testing.T) {
	out, err := ToJPEG(pngImage(t, 30, 20))
	if err != nil {
		t.Fatalf("ToJPEG: %v", err)
	}
	bounds := decodeJPEG(t, out).Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Errorf("dimensions changed to %dx%d", bounds.Dx(), bounds.Dy())
	}
}
