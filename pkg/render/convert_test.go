package render

import (
	"bytes"
	"testing"

	"github.com/smartsdlc/blogimages/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><rect width="10" height="10" fill="#fff"/></svg>`

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}

	png, err := ToPNG([]byte(tinySVG), 2.0)
	if err != nil {
		t.Fatalf("ToPNG() error = %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("ToPNG() output does not start with the PNG signature")
	}
}

func TestToPNGRejectsBadScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		_, err := ToPNG([]byte(tinySVG), scale)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ToPNG(scale=%v) error = %v, want INVALID_INPUT", scale, err)
		}
	}
}

func TestToPNGWithoutConverter(t *testing.T) {
	if Available() {
		t.Skip("rsvg-convert installed")
	}
	_, err := ToPNG([]byte(tinySVG), 1)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want UNSUPPORTED", err)
	}
}
