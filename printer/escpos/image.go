package escpos

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const blackThreshold = 128

// PrintImage decodes an embedded data URI and emits it as a GS v 0 raster.
// The renderer only guarantees the "data:" marker is present; everything
// else is checked here.
func (d *Driver) PrintImage(dataURI string) error {
	payload, err := decodeDataURI(dataURI)
	if err != nil {
		return err
	}

	if kind, err := filetype.Match(payload); err == nil && kind != filetype.Unknown {
		d.log.Debug("Embedded image", zap.String("type", kind.MIME.Value), zap.Int("size", len(payload)))
	}

	img, format, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("embedded image: %w", err)
	}
	d.log.Debug("Rasterizing image", zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))

	return d.raw(rasterize(imaging.Grayscale(img)))
}

// decodeDataURI extracts and decodes the base64 payload of a data URI.
func decodeDataURI(uri string) ([]byte, error) {
	idx := strings.Index(uri, "base64,")
	if idx < 0 {
		return nil, fmt.Errorf("embedded image: not a base64 data URI")
	}
	payload, err := base64.StdEncoding.DecodeString(uri[idx+len("base64,"):])
	if err != nil {
		return nil, fmt.Errorf("embedded image: %w", err)
	}
	return payload, nil
}

// rasterize packs a grayscale image into a GS v 0 command, one bit per
// pixel, MSB first, dark pixels printing black.
func rasterize(img *image.NRGBA) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rowBytes := (w + 7) / 8

	cmd := append([]byte(nil), cmdRasterImage...)
	cmd = append(cmd, byte(rowBytes), byte(rowBytes>>8), byte(h), byte(h>>8))
	for y := 0; y < h; y++ {
		for bx := 0; bx < rowBytes; bx++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				x := bx*8 + bit
				if x >= w {
					break
				}
				if img.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y).R < blackThreshold {
					b |= 1 << (7 - bit)
				}
			}
			cmd = append(cmd, b)
		}
	}
	return cmd
}
