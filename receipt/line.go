package receipt

import "strings"

// column is a bounded run of text. Writes past the width are dropped, a
// write never spills into the other column.
type column struct {
	runes []rune
	width int
}

func (c *column) put(s string) {
	room := c.width - len(c.runes)
	if room <= 0 {
		return
	}
	r := []rune(s)
	if len(r) > room {
		r = r[:room]
	}
	c.runes = append(c.runes, r...)
}

// lineSerializer composes a single fixed-width row out of a left and a
// right column. Nothing reaches the driver: the finished row is returned by
// compose and handed to the outer serializer as preformatted text. Since a
// line is one visual row, the entity structure inside it contributes no
// vertical spacing, so endEntity and linebreak are no-ops here.
type lineSerializer struct {
	indent   int
	tabwidth int
	width    int
	left     column
	right    column
	onRight  bool
}

func newLineSerializer(indent, tabwidth, width int, ratio float64) *lineSerializer {
	l := &lineSerializer{indent: indent, tabwidth: tabwidth}
	l.width = width - indent*tabwidth
	if l.width < 0 {
		l.width = 0
	}
	l.left.width = int(float64(l.width) * ratio)
	l.right.width = l.width - l.left.width
	if l.right.width < 0 {
		l.right.width = 0
	}
	return l
}

func (l *lineSerializer) active() *column {
	if l.onRight {
		return &l.right
	}
	return &l.left
}

// startInline separates tokens within a column: if the active column
// already holds content, a single space goes in first (subject to the same
// truncation as any other write).
func (l *lineSerializer) startInline(*StyleStack) error {
	if len(l.active().runes) > 0 {
		l.active().put(" ")
	}
	return nil
}

func (l *lineSerializer) startBlock(st *StyleStack) error {
	return l.startInline(st)
}

func (l *lineSerializer) endEntity() error { return nil }
func (l *lineSerializer) linebreak() error { return nil }

func (l *lineSerializer) text(s string) error {
	if s = collapseSpace(s); s != "" {
		l.active().put(s)
	}
	return nil
}

func (l *lineSerializer) pre(s string) error {
	if s != "" {
		l.active().put(s)
	}
	return nil
}

// startRight moves the cursor to the right column. There is no way back and
// no third column; further calls change nothing.
func (l *lineSerializer) startRight() {
	l.onRight = true
}

// compose right-justifies the right column against the line's right edge by
// padding between the columns. Already-written content is never truncated.
func (l *lineSerializer) compose() string {
	pad := l.width - len(l.left.runes) - len(l.right.runes)
	if pad < 0 {
		pad = 0
	}
	lead := l.indent * l.tabwidth
	if lead < 0 {
		lead = 0
	}
	return strings.Repeat(" ", lead) +
		string(l.left.runes) + strings.Repeat(" ", pad) + string(l.right.runes)
}
