package printer

import (
	"fmt"
	"strings"
)

// Recorder is a Driver that keeps a readable trace of every operation it
// receives instead of producing device bytes. The trace backs the CLI's
// dry-run output and most renderer tests.
type Recorder struct {
	ops     []string
	printed strings.Builder
}

var _ Driver = (*Recorder)(nil)

func (r *Recorder) op(format string, args ...any) error {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
	return nil
}

// Ops returns the recorded operations, one line per driver call.
func (r *Recorder) Ops() []string {
	return append([]string(nil), r.ops...)
}

// Printed returns the concatenation of all text operations, i.e. the
// document as it would appear on paper, without style information.
func (r *Recorder) Printed() string {
	return r.printed.String()
}

// Trace returns the whole trace as a single newline-separated string.
func (r *Recorder) Trace() string {
	return strings.Join(r.ops, "\n")
}

func (r *Recorder) SetSheetSlipMode() error { return r.op("sheet(slip)") }
func (r *Recorder) SetSheetRollMode() error { return r.op("sheet(roll)") }

func (r *Recorder) ApplyStyle(style StyleSet) error {
	return r.op("style(align=%s underline=%s bold=%s font=%s size=%s color=%s)",
		style.Align, style.Underline, style.Bold, style.Font, style.Size, style.Color)
}

func (r *Recorder) Text(text string) error {
	r.printed.WriteString(text)
	return r.op("text(%q)", text)
}

func (r *Recorder) Barcode(code, encoding string, opts BarcodeOptions) error {
	return r.op("barcode(code=%q encoding=%s height=%d width=%d pos=%q align_ct=%t)",
		code, encoding, opts.Height, opts.Width, opts.Pos, opts.AlignCenter)
}

func (r *Recorder) PrintImage(dataURI string) error {
	return r.op("image(len=%d)", len(dataURI))
}

func (r *Recorder) Cut(mode CutMode) error {
	return r.op("cut(%s)", mode)
}

func (r *Recorder) OpenCashDrawer() error { return r.op("cashdraw()") }
