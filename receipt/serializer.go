package receipt

import (
	"strings"

	"escx/printer"
)

type entityMode int

const (
	modeBlock entityMode = iota
	modeInline
)

// serializer is the operation sink the walker writes into. One
// implementation hands text to the driver as soon as possible, the other
// composes a single two-column row (lineSerializer) whose result is fed
// back to the outer serializer as preformatted text.
type serializer interface {
	startBlock(st *StyleStack) error
	startInline(st *StyleStack) error
	endEntity() error
	text(s string) error
	pre(s string) error
	linebreak() error
}

// collapseSpace reduces every whitespace run to a single space and trims
// the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// driverSerializer converts the inline/block entity structure to driver
// operations, keeping track of newlines and spacing. The mode stack starts
// in block mode and never drops below one entry.
type driverSerializer struct {
	drv   printer.Driver
	modes []entityMode
}

func newDriverSerializer(drv printer.Driver) *driverSerializer {
	return &driverSerializer{drv: drv, modes: []entityMode{modeBlock}}
}

func (d *driverSerializer) start(mode entityMode, st *StyleStack) error {
	d.modes = append(d.modes, mode)
	if st != nil {
		return d.drv.ApplyStyle(st.Styles())
	}
	return nil
}

func (d *driverSerializer) startBlock(st *StyleStack) error  { return d.start(modeBlock, st) }
func (d *driverSerializer) startInline(st *StyleStack) error { return d.start(modeInline, st) }

// endEntity closes the current entity without resetting the active style.
// Ending a block contributes the line terminator, ending an inline does
// not. The root mode is permanent.
func (d *driverSerializer) endEntity() error {
	top := d.modes[len(d.modes)-1]
	if len(d.modes) > 1 {
		d.modes = d.modes[:len(d.modes)-1]
	}
	if top == modeBlock {
		return d.drv.Text("\n")
	}
	return nil
}

func (d *driverSerializer) text(s string) error {
	if s = collapseSpace(s); s == "" {
		return nil
	}
	return d.drv.Text(s)
}

// pre emits the string as is, whitespace included.
func (d *driverSerializer) pre(s string) error {
	if s == "" {
		return nil
	}
	return d.drv.Text(s)
}

func (d *driverSerializer) linebreak() error {
	return d.drv.Text("\n")
}
