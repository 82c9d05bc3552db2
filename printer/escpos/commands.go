package escpos

// ESC/POS command fragments used by the driver. Only what the receipt
// vocabulary needs; this is not a general purpose command set.

var (
	cmdInit = []byte{0x1b, 0x40} // ESC @

	cmdSheetSlipMode = []byte{0x1b, 0x63, 0x30, 0x04} // ESC c 0, slip
	cmdSheetRollMode = []byte{0x1b, 0x63, 0x30, 0x01} // ESC c 0, roll

	cmdCutFull    = []byte{0x1d, 0x56, 0x00} // GS V
	cmdCutPartial = []byte{0x1d, 0x56, 0x01}

	// ESC p, 25ms on / 250ms off pulse on each drawer pin
	cmdDrawerPin2 = []byte{0x1b, 0x70, 0x00, 0x19, 0xfa}
	cmdDrawerPin5 = []byte{0x1b, 0x70, 0x01, 0x19, 0xfa}

	cmdBarcodeHeight = []byte{0x1d, 0x68} // GS h n
	cmdBarcodeWidth  = []byte{0x1d, 0x77} // GS w n
	cmdBarcodeFont   = []byte{0x1d, 0x66} // GS f n
	cmdBarcodeHRIPos = []byte{0x1d, 0x48} // GS H n
	cmdBarcodePrint  = []byte{0x1d, 0x6b} // GS k m d1..dk NUL

	cmdRasterImage    = []byte{0x1d, 0x76, 0x30, 0x00} // GS v 0
	cmdCodePagePrefix = []byte{0x1b, 0x74}             // ESC t n
)

// styleCommand translates one style attribute to device bytes. Order is the
// static application priority: lower goes first. Size uses ESC ! which
// resets underline, emphasis and font, so those three must follow it.
type styleCommand struct {
	attr   string
	order  int
	values map[string][]byte
}

var styleCommands = []styleCommand{
	{
		attr:  "align",
		order: 1,
		values: map[string][]byte{
			"left":   {0x1b, 0x61, 0x00},
			"center": {0x1b, 0x61, 0x01},
			"right":  {0x1b, 0x61, 0x02},
		},
	},
	{
		attr:  "size",
		order: 1,
		values: map[string][]byte{
			"normal":        {0x1b, 0x21, 0x00},
			"double-height": {0x1b, 0x21, 0x10},
			"double-width":  {0x1b, 0x21, 0x20},
			"double":        {0x1b, 0x21, 0x30},
		},
	},
	{
		attr:  "color",
		order: 1,
		values: map[string][]byte{
			"black": {0x1b, 0x72, 0x00},
			"red":   {0x1b, 0x72, 0x01},
		},
	},
	{
		attr:  "underline",
		order: 10,
		values: map[string][]byte{
			"off":    {0x1b, 0x2d, 0x00},
			"on":     {0x1b, 0x2d, 0x01},
			"double": {0x1b, 0x2d, 0x02},
		},
	},
	{
		attr:  "bold",
		order: 10,
		values: map[string][]byte{
			"off": {0x1b, 0x45, 0x00},
			"on":  {0x1b, 0x45, 0x01},
		},
	},
	{
		attr:  "font",
		order: 10,
		values: map[string][]byte{
			"a": {0x1b, 0x4d, 0x00},
			"b": {0x1b, 0x4d, 0x01},
		},
	},
}

func commandsFor(attr string) map[string][]byte {
	for _, sc := range styleCommands {
		if sc.attr == attr {
			return sc.values
		}
	}
	return nil
}

// GS k symbology bytes (function A, NUL terminated data).
var barcodeSymbologies = map[string]byte{
	"UPC-A":   0x00,
	"UPC-E":   0x01,
	"EAN13":   0x02,
	"EAN8":    0x03,
	"CODE39":  0x04,
	"ITF":     0x05,
	"NW7":     0x06,
	"CODABAR": 0x06,
}

// GS H HRI position bytes.
var barcodeHRIPositions = map[string]byte{
	"OFF":   0x00,
	"ABOVE": 0x01,
	"BELOW": 0x02,
	"BOTH":  0x03,
}
