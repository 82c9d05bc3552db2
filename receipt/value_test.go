package receipt

import "testing"

func TestFormatValue(t *testing.T) {
	cases := []struct {
		name string
		text string
		opts ValueOptions
		want string
	}{
		{
			name: "grouped thousands",
			text: "1234.5",
			opts: ValueOptions{Decimals: 2, DecimalsSeparator: ".", ThousandsSeparator: ","},
			want: "1,234.50",
		},
		{
			name: "millions",
			text: "-1234567.8",
			opts: ValueOptions{Decimals: 1, DecimalsSeparator: ".", ThousandsSeparator: ","},
			want: "-1,234,567.8",
		},
		{
			name: "no grouping without separator",
			text: "1234.5",
			opts: ValueOptions{Decimals: 2, DecimalsSeparator: "."},
			want: "1234.50",
		},
		{
			name: "swapped separators",
			text: "1234.5",
			opts: ValueOptions{Decimals: 2, DecimalsSeparator: ",", ThousandsSeparator: "."},
			want: "1.234,50",
		},
		{
			name: "autoint drops decimals on whole numbers",
			text: "10.00",
			opts: ValueOptions{Decimals: 2, DecimalsSeparator: ".", ThousandsSeparator: ",", AutoInt: true},
			want: "10",
		},
		{
			name: "autoint keeps decimals on fractions",
			text: "10.5",
			opts: ValueOptions{Decimals: 2, DecimalsSeparator: ".", ThousandsSeparator: ",", AutoInt: true},
			want: "10.50",
		},
		{
			name: "symbol after",
			text: "5",
			opts: ValueOptions{Decimals: 2, DecimalsSeparator: ".", ThousandsSeparator: ",", Symbol: "$", SymbolPosition: "after"},
			want: "5.00$",
		},
		{
			name: "symbol before",
			text: "5",
			opts: ValueOptions{Decimals: 2, DecimalsSeparator: ".", ThousandsSeparator: ",", Symbol: "$", SymbolPosition: "before"},
			want: "$5.00",
		},
		{
			name: "width pads before symbol",
			text: "5",
			opts: ValueOptions{Decimals: 2, Width: 8, DecimalsSeparator: ".", ThousandsSeparator: ",", Symbol: "$", SymbolPosition: "after"},
			want: "    5.00$",
		},
		{
			name: "width shorter than number",
			text: "1234.5",
			opts: ValueOptions{Decimals: 2, Width: 3, DecimalsSeparator: ".", ThousandsSeparator: ","},
			want: "1,234.50",
		},
		{
			name: "negative decimals clamp to zero",
			text: "3.7",
			opts: ValueOptions{Decimals: -1, DecimalsSeparator: ".", ThousandsSeparator: ","},
			want: "4",
		},
		{
			name: "surrounding whitespace tolerated",
			text: "  42 ",
			opts: ValueOptions{Decimals: 0, DecimalsSeparator: ".", ThousandsSeparator: ","},
			want: "42",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatValue(tc.text, tc.opts)
			if err != nil {
				t.Fatalf("FormatValue(%q) error: %v", tc.text, err)
			}
			if got != tc.want {
				t.Errorf("FormatValue(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestFormatValueNotANumber(t *testing.T) {
	for _, text := range []string{"", "abc", "12x", "1,5"} {
		if _, err := FormatValue(text, DefaultValueOptions()); err == nil {
			t.Errorf("FormatValue(%q): expected error, got nil", text)
		}
	}
}

// The formatter's own default is three decimals while the style stack
// defaults to two; both literals are long-standing and neither side is
// adjusted to the other.
func TestFormatValueDefaultDecimals(t *testing.T) {
	got, err := FormatValue("5", DefaultValueOptions())
	if err != nil {
		t.Fatalf("FormatValue() error: %v", err)
	}
	if got != "5.000" {
		t.Errorf("FormatValue with defaults = %q, want 5.000", got)
	}

	st := NewStyleStack()
	if st.GetInt("value-decimals") != 2 {
		t.Errorf("stack default value-decimals = %d, want 2", st.GetInt("value-decimals"))
	}
}
