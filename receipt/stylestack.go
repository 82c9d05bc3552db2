package receipt

import (
	"fmt"
	"strconv"
	"strings"

	"escx/printer"
)

// Style handling along the document tree. Styles are plain markup
// attributes, there is no selector mechanism: an attribute set on an element
// is visible to every descendant through lookup, never by copying frames.

type attrKind int

const (
	kindString attrKind = iota
	kindInt
	kindFloat
)

// attrKinds lists the attributes that do not hold plain strings. Everything
// else is a string. Integer attributes accept fractional input and truncate,
// matching the lenient way authors write widths.
var attrKinds = map[string]attrKind{
	"width":          kindInt,
	"indent":         kindInt,
	"tabwidth":       kindInt,
	"value-width":    kindInt,
	"value-decimals": kindInt,
	"line-ratio":     kindFloat,
}

type styleValue struct {
	kind attrKind
	str  string
	num  int
	flt  float64
}

func strVal(s string) styleValue  { return styleValue{kind: kindString, str: s} }
func intVal(i int) styleValue     { return styleValue{kind: kindInt, num: i} }
func fltVal(f float64) styleValue { return styleValue{kind: kindFloat, flt: f} }

// defaultStyles is the root frame every render starts from.
var defaultStyles = map[string]styleValue{
	"align":      strVal("left"),
	"underline":  strVal("off"),
	"bold":       strVal("off"),
	"size":       strVal("normal"),
	"font":       strVal("a"),
	"width":      intVal(48),
	"indent":     intVal(0),
	"tabwidth":   intVal(2),
	"bullet":     strVal(" - "),
	"line-ratio": fltVal(0.5),
	"color":      strVal("black"),

	"value-decimals":            intVal(2),
	"value-symbol":              strVal(""),
	"value-symbol-position":     strVal("after"),
	"value-autoint":             strVal("off"),
	"value-decimals-separator":  strVal("."),
	"value-thousands-separator": strVal(","),
	"value-width":               intVal(0),
}

type frame map[string]styleValue

// StyleStack computes the active styles at the current position of a single
// document traversal. It is exclusively owned by one render call. The root
// frame holds the defaults and can never be popped.
type StyleStack struct {
	frames []frame
}

func NewStyleStack() *StyleStack {
	root := make(frame, len(defaultStyles))
	for name, val := range defaultStyles {
		root[name] = val
	}
	return &StyleStack{frames: []frame{root}}
}

func coerce(name, raw string) (styleValue, error) {
	switch attrKinds[name] {
	case kindInt:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return styleValue{}, fmt.Errorf("style attribute %q: %q is not a number", name, raw)
		}
		return intVal(int(f)), nil
	case kindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return styleValue{}, fmt.Errorf("style attribute %q: %q is not a number", name, raw)
		}
		return fltVal(f), nil
	default:
		return strVal(raw), nil
	}
}

// Push opens a new frame built from attrs. Frames are independent:
// inheritance happens through lookup in Get, not by merging on push.
func (s *StyleStack) Push(attrs map[string]string) error {
	fr := make(frame, len(attrs))
	for name, raw := range attrs {
		val, err := coerce(name, raw)
		if err != nil {
			return err
		}
		fr[name] = val
	}
	s.frames = append(s.frames, fr)
	return nil
}

// Set overrides values in the current top frame. Used to apply markup
// attributes on top of tag-implied defaults.
func (s *StyleStack) Set(attrs map[string]string) error {
	top := s.frames[len(s.frames)-1]
	for name, raw := range attrs {
		val, err := coerce(name, raw)
		if err != nil {
			return err
		}
		top[name] = val
	}
	return nil
}

// Pop removes the top frame. The root frame stays.
func (s *StyleStack) Pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Depth reports the number of frames, root included.
func (s *StyleStack) Depth() int {
	return len(s.frames)
}

func (s *StyleStack) lookup(name string) (styleValue, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if val, ok := s.frames[i][name]; ok {
			return val, true
		}
	}
	return styleValue{}, false
}

// GetString returns the nearest enclosing definition of a style attribute,
// or the empty string when it is defined nowhere.
func (s *StyleStack) GetString(name string) string {
	val, ok := s.lookup(name)
	if !ok {
		return ""
	}
	switch val.kind {
	case kindInt:
		return strconv.Itoa(val.num)
	case kindFloat:
		return strconv.FormatFloat(val.flt, 'g', -1, 64)
	default:
		return val.str
	}
}

func (s *StyleStack) GetInt(name string) int {
	val, ok := s.lookup(name)
	if !ok {
		return 0
	}
	switch val.kind {
	case kindInt:
		return val.num
	case kindFloat:
		return int(val.flt)
	default:
		return 0
	}
}

func (s *StyleStack) GetFloat(name string) float64 {
	val, ok := s.lookup(name)
	if !ok {
		return 0
	}
	switch val.kind {
	case kindInt:
		return float64(val.num)
	case kindFloat:
		return val.flt
	default:
		return 0
	}
}

// Styles snapshots the attributes a device driver cares about.
func (s *StyleStack) Styles() printer.StyleSet {
	return printer.StyleSet{
		Align:     s.GetString("align"),
		Underline: s.GetString("underline"),
		Bold:      s.GetString("bold"),
		Font:      s.GetString("font"),
		Size:      s.GetString("size"),
		Color:     s.GetString("color"),
	}
}
