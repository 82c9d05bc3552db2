// Package printer defines the capability interface between the receipt
// renderer and a concrete output device. The renderer never talks to
// hardware; it issues abstract operations and a Driver turns them into
// whatever the device understands.
package printer

//go:generate go tool go-enum

// StyleSet is a snapshot of the rendering-relevant attributes resolved for
// the current position in the document. Values are the raw markup
// vocabulary (align "left|right|center", size "normal|double|..." and so
// on); translation to device commands is entirely the driver's business.
type StyleSet struct {
	Align     string
	Underline string
	Bold      string
	Font      string
	Size      string
	Color     string
}

// BarcodeOptions carries the optional barcode element attributes. Zero
// Height or Width means "use the device default".
type BarcodeOptions struct {
	Height      int
	Width       int
	Pos         string
	AlignCenter bool
}

// Paper cut variants.
// ENUM(full, partial)
type CutMode int

// Driver receives the operations produced by one render. Calls are
// fire-and-forget from the renderer's perspective: no return value beyond
// the error, which is propagated to the render caller unmodified, without
// retries. Implementations are not expected to be safe for concurrent use;
// each render owns its driver for the duration of the call.
type Driver interface {
	SetSheetSlipMode() error
	SetSheetRollMode() error
	ApplyStyle(style StyleSet) error
	Text(text string) error
	Barcode(code, encoding string, opts BarcodeOptions) error
	PrintImage(dataURI string) error
	Cut(mode CutMode) error
	OpenCashDrawer() error
}
