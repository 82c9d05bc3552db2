package printer

// Nop is a Driver that accepts every operation and does nothing. Useful for
// dry runs and for callers that only care whether a document renders.
type Nop struct{}

var _ Driver = Nop{}

func (Nop) SetSheetSlipMode() error { return nil }

func (Nop) SetSheetRollMode() error { return nil }

func (Nop) ApplyStyle(StyleSet) error { return nil }

func (Nop) Text(string) error { return nil }

func (Nop) Barcode(string, string, BarcodeOptions) error { return nil }

func (Nop) PrintImage(string) error { return nil }

func (Nop) Cut(CutMode) error { return nil }

func (Nop) OpenCashDrawer() error { return nil }
