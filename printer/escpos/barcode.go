package escpos

import (
	"fmt"
	"strings"

	"escx/printer"
)

const (
	defaultBarcodeHeight = 64
	defaultBarcodeWidth  = 3
)

// Barcode prints code using GS k function A. Unknown symbologies and empty
// codes are errors; the walker already guarantees a non-empty encoding.
func (d *Driver) Barcode(code, enc string, opts printer.BarcodeOptions) error {
	if code == "" {
		return fmt.Errorf("barcode: no code specified")
	}
	sym, ok := barcodeSymbologies[strings.ToUpper(enc)]
	if !ok {
		return fmt.Errorf("barcode: unsupported encoding %q", enc)
	}

	height := opts.Height
	if height <= 0 {
		height = defaultBarcodeHeight
	}
	if height > 255 {
		height = 255
	}
	width := opts.Width
	if width <= 0 {
		width = defaultBarcodeWidth
	}
	if width < 2 {
		width = 2
	}
	if width > 6 {
		width = 6
	}
	pos, ok := barcodeHRIPositions[strings.ToUpper(opts.Pos)]
	if !ok {
		pos = barcodeHRIPositions["BELOW"]
	}

	if opts.AlignCenter {
		if err := d.raw(commandsFor("align")["center"]); err != nil {
			return err
		}
	}

	cmd := append(append([]byte(nil), cmdBarcodeHeight...), byte(height))
	cmd = append(append(cmd, cmdBarcodeWidth...), byte(width))
	cmd = append(append(cmd, cmdBarcodeFont...), 0x00)
	cmd = append(append(cmd, cmdBarcodeHRIPos...), pos)
	cmd = append(append(cmd, cmdBarcodePrint...), sym)
	cmd = append(cmd, code...)
	cmd = append(cmd, 0x00)
	if err := d.raw(cmd); err != nil {
		return err
	}

	if opts.AlignCenter {
		// back to the ambient alignment
		return d.raw(d.align)
	}
	return nil
}
