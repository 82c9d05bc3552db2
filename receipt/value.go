package receipt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueOptions control how a <value> element's number is rendered.
type ValueOptions struct {
	Decimals           int
	Width              int
	DecimalsSeparator  string
	ThousandsSeparator string
	AutoInt            bool
	Symbol             string
	SymbolPosition     string
}

// DefaultValueOptions returns the formatter's own defaults. Note that
// Decimals is 3 here while the style stack default for value-decimals is 2;
// the two literals have always differed and both are kept as is.
func DefaultValueOptions() ValueOptions {
	return ValueOptions{
		Decimals:           3,
		DecimalsSeparator:  ".",
		ThousandsSeparator: ",",
		SymbolPosition:     "after",
	}
}

// FormatValue renders a numeric string with grouped thousands, a minimum
// space-padded width and an optional currency symbol. Non-numeric input is
// an error and aborts the render.
func FormatValue(text string, opts ValueOptions) (string, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return "", fmt.Errorf("value %q is not a number", text)
	}

	decimals := opts.Decimals
	if decimals < 0 {
		decimals = 0
	}
	width := opts.Width
	if width < 0 {
		width = 0
	}
	if opts.AutoInt && math.Floor(value) == value {
		decimals = 0
	}

	ret := strconv.FormatFloat(value, 'f', decimals, 64)
	if opts.ThousandsSeparator != "" {
		ret = groupThousands(ret)
	}
	if pad := width - len(ret); pad > 0 {
		ret = strings.Repeat(" ", pad) + ret
	}

	// The number is built with neutral "," and "." first and both separators
	// are substituted in a single pass. Sequential replacement would collide
	// when the caller swaps the conventional roles of the two characters.
	ret = strings.NewReplacer(",", opts.ThousandsSeparator, ".", opts.DecimalsSeparator).Replace(ret)

	if opts.Symbol != "" {
		if opts.SymbolPosition == "before" {
			ret = opts.Symbol + ret
		} else {
			ret += opts.Symbol
		}
	}
	return ret, nil
}

// groupThousands inserts "," every three digits of the integer part.
func groupThousands(s string) string {
	var sign string
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	return sign + b.String() + frac
}
