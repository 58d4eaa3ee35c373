// Package ioutils processes cover art images before they are embedded
// into ID3 tags.
package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// jpegQuality is used for every encode. Cover art is lossy source
// material already, 90 keeps artifacts invisible.
const jpegQuality = 90

// Resize scales an image down to fit within maxSize on both axes,
// preserving the aspect ratio, and returns it JPEG-encoded. Images
// already within bounds are only re-encoded.
func Resize(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxSize || height > maxSize {
		if width > height {
			height = height * maxSize / width
			width = maxSize
		} else {
			width = width * maxSize / height
			height = maxSize
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	return encodeJPEG(img)
}

// ToJPEG re-encodes an image as JPEG. Bandcamp serves covers as both
// JPEG and PNG; ID3 consumers handle JPEG most reliably.
func ToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
