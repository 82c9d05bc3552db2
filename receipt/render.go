// Package receipt renders a constrained markup document into a sequence of
// abstract formatting and print operations: style changes, text runs, line
// breaks, two-column lines, barcodes, images and paper cuts. The operations
// go to a printer.Driver; what bytes they become is the driver's problem.
package receipt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"escx/printer"
)

// tagStyles are the implicit styles an element kind contributes before its
// literal attributes are applied. Attributes always win over these.
var tagStyles = map[Tag]map[string]string{
	TagH1: {"bold": "on", "size": "double"},
	TagH2: {"size": "double"},
	TagH3: {"bold": "on", "size": "double-height"},
	TagH4: {"size": "double-height"},
	TagH5: {"bold": "on"},
	TagEm: {"font": "b"},
	TagB:  {"bold": "on"},
}

// Options adjust a single render call.
type Options struct {
	// StyleDefaults is merged over the built-in root frame before the
	// traversal starts, with the same coercion rules as markup attributes.
	StyleDefaults map[string]string
}

type renderer struct {
	drv printer.Driver
	log *zap.Logger
}

// Render walks the parsed document top-down and feeds the resulting
// operations to drv. The style stack and serializer are created fresh per
// call and are not shared; a driver must not serve two concurrent renders.
// Recursion depth equals markup nesting depth and is not bounded.
func Render(doc *etree.Document, drv printer.Driver, opts Options, log *zap.Logger) error {
	root := doc.Root()
	if root == nil {
		return errors.New("document has no root element")
	}

	styles := NewStyleStack()
	if err := styles.Set(opts.StyleDefaults); err != nil {
		return fmt.Errorf("style defaults: %w", err)
	}

	r := &renderer{drv: drv, log: log.Named("render")}

	if root.SelectAttrValue("sheet", "") == "slip" {
		if err := drv.SetSheetSlipMode(); err != nil {
			return err
		}
	} else {
		if err := drv.SetSheetRollMode(); err != nil {
			return err
		}
	}

	if err := r.element(styles, newDriverSerializer(drv), root, 0); err != nil {
		return err
	}

	// Anything but the literal "false" keeps the trailing cut.
	if root.SelectAttrValue("cut", "") != "false" {
		return drv.Cut(printer.CutModeFull)
	}
	return nil
}

// RenderBytes parses raw markup and renders it. A parse failure surfaces
// before the driver sees a single operation.
func RenderBytes(data []byte, drv printer.Driver, opts Options, log *zap.Logger) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("markup: %w", err)
	}
	return Render(doc, drv, opts, log)
}

func attrMap(el *etree.Element) map[string]string {
	if len(el.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		attrs[a.Key] = a.Value
	}
	return attrs
}

type childTail struct {
	el   *etree.Element
	tail string
}

// childrenWithTails pairs every child element with the character data that
// follows its closing tag, which belongs to the parent's inline flow.
func childrenWithTails(el *etree.Element) []childTail {
	var out []childTail
	for _, node := range el.Child {
		switch token := node.(type) {
		case *etree.Element:
			out = append(out, childTail{el: token})
		case *etree.CharData:
			if len(out) > 0 {
				out[len(out)-1].tail += token.Data
			}
		}
	}
	return out
}

func (r *renderer) element(st *StyleStack, out serializer, el *etree.Element, indent int) error {
	if err := st.Push(nil); err != nil {
		return err
	}
	defer st.Pop()

	tag, tagErr := ParseTag(el.Tag)
	if tagErr == nil {
		if err := st.Set(tagStyles[tag]); err != nil {
			return err
		}
	}
	if err := st.Set(attrMap(el)); err != nil {
		return fmt.Errorf("element <%s>: %w", el.Tag, err)
	}
	if tagErr != nil {
		// Unknown elements produce no output and their children are never
		// visited.
		r.log.Debug("Ignoring unknown element", zap.String("tag", el.Tag))
		return nil
	}

	switch tag {
	case TagReceipt, TagP, TagDiv, TagSection, TagArticle, TagHeader, TagFooter,
		TagLi, TagH1, TagH2, TagH3, TagH4, TagH5:
		return r.container(st, out, el, indent, out.startBlock)
	case TagSpan, TagEm, TagB, TagLeft, TagRight:
		return r.container(st, out, el, indent, out.startInline)
	case TagValue:
		return r.value(st, out, el)
	case TagLine:
		return r.line(st, out, el, indent)
	case TagPre:
		if err := out.startBlock(st); err != nil {
			return err
		}
		if err := out.pre(el.Text()); err != nil {
			return err
		}
		return out.endEntity()
	case TagHr:
		if err := out.startBlock(st); err != nil {
			return err
		}
		if err := out.text(strings.Repeat("-", r.lineWidth(st))); err != nil {
			return err
		}
		return out.endEntity()
	case TagBr:
		return out.linebreak()
	case TagImg:
		if src := el.SelectAttrValue("src", ""); strings.Contains(src, "data:") {
			return r.drv.PrintImage(src)
		}
		return nil
	case TagBarcode:
		return r.barcode(st, out, el)
	case TagCut:
		return r.drv.Cut(printer.CutModeFull)
	case TagPartialcut:
		return r.drv.Cut(printer.CutModePartial)
	case TagCashdraw:
		return r.drv.OpenCashDrawer()
	}
	return nil
}

// container renders the shared block/inline recursive pattern: the
// element's leading text, then every child followed by its tail text as an
// inline entity of its own.
func (r *renderer) container(st *StyleStack, out serializer, el *etree.Element, indent int, start func(*StyleStack) error) error {
	if err := start(st); err != nil {
		return err
	}
	if err := out.text(el.Text()); err != nil {
		return err
	}
	for _, child := range childrenWithTails(el) {
		if err := r.element(st, out, child.el, indent); err != nil {
			return err
		}
		if err := out.startInline(st); err != nil {
			return err
		}
		if err := out.text(child.tail); err != nil {
			return err
		}
		if err := out.endEntity(); err != nil {
			return err
		}
	}
	return out.endEntity()
}

func (r *renderer) value(st *StyleStack, out serializer, el *etree.Element) error {
	if err := out.startInline(st); err != nil {
		return err
	}
	formatted, err := FormatValue(el.Text(), ValueOptions{
		Decimals:           st.GetInt("value-decimals"),
		Width:              st.GetInt("value-width"),
		DecimalsSeparator:  st.GetString("value-decimals-separator"),
		ThousandsSeparator: st.GetString("value-thousands-separator"),
		AutoInt:            st.GetString("value-autoint") == "on",
		Symbol:             st.GetString("value-symbol"),
		SymbolPosition:     st.GetString("value-symbol-position"),
	})
	if err != nil {
		return err
	}
	if err := out.pre(formatted); err != nil {
		return err
	}
	return out.endEntity()
}

// lineWidth is the usable character width at the current style: the ambient
// width, halved when characters are printed double wide.
func (r *renderer) lineWidth(st *StyleStack) int {
	width := st.GetInt("width")
	if size := st.GetString("size"); size == "double" || size == "double-width" {
		width /= 2
	}
	if width < 0 {
		width = 0
	}
	return width
}

func (r *renderer) line(st *StyleStack, out serializer, el *etree.Element, indent int) error {
	ls := newLineSerializer(st.GetInt("indent")+indent, st.GetInt("tabwidth"),
		r.lineWidth(st), st.GetFloat("line-ratio"))
	if err := out.startBlock(st); err != nil {
		return err
	}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "left":
			if err := r.element(st, ls, child, indent); err != nil {
				return err
			}
		case "right":
			ls.startRight()
			if err := r.element(st, ls, child, indent); err != nil {
				return err
			}
		}
	}
	if err := out.pre(ls.compose()); err != nil {
		return err
	}
	return out.endEntity()
}

func (r *renderer) barcode(st *StyleStack, out serializer, el *etree.Element) error {
	encoding := el.SelectAttrValue("encoding", "")
	if encoding == "" {
		// Conditional operation missing its required attribute, skip quietly.
		return nil
	}

	opts := printer.BarcodeOptions{
		Pos:         el.SelectAttrValue("pos", ""),
		AlignCenter: el.SelectAttrValue("align_ct", "") == "on",
	}
	var err error
	if v := el.SelectAttrValue("height", ""); v != "" {
		if opts.Height, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("barcode height %q: not a number", v)
		}
	}
	if v := el.SelectAttrValue("width", ""); v != "" {
		if opts.Width, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("barcode width %q: not a number", v)
		}
	}

	if err := out.startBlock(st); err != nil {
		return err
	}
	if err := r.drv.Barcode(collapseSpace(el.Text()), encoding, opts); err != nil {
		return err
	}
	return out.endEntity()
}
