// Package qr renders text as a QR code PNG and returns it as a data URI,
// so clients can drop the result straight into an <img> tag.
package qr

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyText is returned when there is nothing to encode.
	ErrEmptyText = errors.New("text is required")

	// ErrEncoding wraps failures from the underlying QR library, such as
	// input too long for the largest symbol at the chosen recovery level.
	ErrEncoding = errors.New("qr encoding failed")
)

// Fixed rendering parameters.
const (
	DefaultWidth  = 250
	DefaultMargin = 1 // quiet zone, in modules
)

// Encoder produces PNG data URIs.  The zero value is not usable; call New.
type Encoder struct {
	width  int
	margin int
	level  qrcode.RecoveryLevel
}

// New returns an encoder with the service's fixed settings: 250px wide,
// one module of margin, highest error correction.
func New() *Encoder {
	return &Encoder{width: DefaultWidth, margin: DefaultMargin, level: qrcode.Highest}
}

// Encode renders text and returns "data:image/png;base64,...".  It makes
// a single attempt; the context is only checked before starting.
func (e *Encoder) Encode(ctx context.Context, text string) (string, error) {
	png, err := e.PNG(ctx, text)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// PNG renders text to raw PNG bytes.
func (e *Encoder) PNG(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q, err := qrcode.New(text, e.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	q.DisableBorder = true

	var buf bytes.Buffer
	if err := png.Encode(&buf, e.paint(q.Bitmap())); err != nil {
		return nil, fmt.Errorf("%w: png: %v", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// paint draws the module matrix with the configured quiet zone, scaled to
// the largest whole number of pixels per module that fits and centred in
// a width×width canvas.  go-qrcode only offers a fixed four-module border,
// hence the manual layout.
func (e *Encoder) paint(bitmap [][]bool) image.Image {
	modules := len(bitmap) + 2*e.margin
	scale := e.width / modules
	if scale < 1 {
		scale = 1
	}
	size := e.width
	if modules*scale > size {
		size = modules * scale
	}
	offset := (size - len(bitmap)*scale) / 2

	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{color.White, color.Black})
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			px, py := offset+x*scale, offset+y*scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(px+dx, py+dy, 1)
				}
			}
		}
	}
	return img
}
