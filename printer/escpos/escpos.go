// Package escpos turns abstract receipt operations into ESC/POS byte
// sequences. It writes to a plain io.Writer: a file, a socket or a
// character device, transport is the caller's business.
package escpos

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"escx/printer"
)

// ESC t page numbers for the code pages we can actually encode into.
var codePageNumbers = map[encoding.Encoding]byte{
	charmap.CodePage437: 0x00,
	charmap.CodePage850: 0x02,
	charmap.CodePage860: 0x03,
	charmap.CodePage863: 0x04,
	charmap.CodePage865: 0x05,
	charmap.CodePage852: 0x12,
	charmap.CodePage858: 0x13,
}

func init() {
	// Declared priority decides application order, declaration order breaks
	// ties. Never rely on map iteration for this.
	sort.SliceStable(styleCommands, func(i, j int) bool {
		return styleCommands[i].order < styleCommands[j].order
	})
}

type Config struct {
	// CodePage is an IANA character set name (IBM437, IBM850, ...).
	// Empty selects IBM850.
	CodePage string
}

// Driver emits ESC/POS commands for every operation it receives. Device and
// write errors are returned to the render caller as is.
type Driver struct {
	w   io.Writer
	enc *encoding.Encoder
	log *zap.Logger

	// last applied alignment, restored after centered barcodes
	align []byte
}

var _ printer.Driver = (*Driver)(nil)

// New initializes the device: reset, then code page selection.
func New(w io.Writer, cfg Config, log *zap.Logger) (*Driver, error) {
	name := cfg.CodePage
	if name == "" {
		name = "IBM850"
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown character set %q: %w", name, err)
	}
	page, ok := codePageNumbers[enc]
	if !ok {
		return nil, fmt.Errorf("character set %q is not supported by the device", name)
	}

	d := &Driver{
		w:     w,
		enc:   encoding.ReplaceUnsupported(enc.NewEncoder()),
		log:   log.Named("escpos"),
		align: commandsFor("align")["left"],
	}
	d.log.Debug("Printer initialized", zap.String("codepage", name))

	if err := d.raw(cmdInit); err != nil {
		return nil, err
	}
	if err := d.raw(append(append([]byte(nil), cmdCodePagePrefix...), page)); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) raw(b []byte) error {
	_, err := d.w.Write(b)
	return err
}

func (d *Driver) SetSheetSlipMode() error { return d.raw(cmdSheetSlipMode) }
func (d *Driver) SetSheetRollMode() error { return d.raw(cmdSheetRollMode) }

func attrValue(style printer.StyleSet, attr string) string {
	switch attr {
	case "align":
		return style.Align
	case "underline":
		return style.Underline
	case "bold":
		return style.Bold
	case "font":
		return style.Font
	case "size":
		return style.Size
	case "color":
		return style.Color
	}
	return ""
}

// ApplyStyle translates the resolved style set to device commands in the
// declared priority order.
func (d *Driver) ApplyStyle(style printer.StyleSet) error {
	var cmd []byte
	for _, sc := range styleCommands {
		value := attrValue(style, sc.attr)
		b, ok := sc.values[value]
		if !ok {
			d.log.Warn("Unknown style value, skipping", zap.String("attribute", sc.attr), zap.String("value", value))
			continue
		}
		if sc.attr == "align" {
			d.align = b
		}
		cmd = append(cmd, b...)
	}
	return d.raw(cmd)
}

func (d *Driver) Text(text string) error {
	b, err := d.enc.Bytes([]byte(text))
	if err != nil {
		return fmt.Errorf("text encoding: %w", err)
	}
	return d.raw(b)
}

func (d *Driver) Cut(mode printer.CutMode) error {
	// feed past the cutter blade first
	if err := d.raw([]byte("\n\n\n\n")); err != nil {
		return err
	}
	if mode == printer.CutModePartial {
		return d.raw(cmdCutPartial)
	}
	return d.raw(cmdCutFull)
}

// OpenCashDrawer pulses both drawer pins, so either wiring works.
func (d *Driver) OpenCashDrawer() error {
	if err := d.raw(cmdDrawerPin2); err != nil {
		return err
	}
	return d.raw(cmdDrawerPin5)
}
