package receipt

import "testing"

func TestColumnTruncation(t *testing.T) {
	c := column{width: 3}
	c.put("abcdef")
	if got := string(c.runes); got != "abc" {
		t.Errorf("column = %q, want abc", got)
	}
	// a full column silently drops further writes
	c.put("x")
	if got := string(c.runes); got != "abc" {
		t.Errorf("column after overflow write = %q, want abc", got)
	}
}

func TestLineSerializerCompose(t *testing.T) {
	cases := []struct {
		name     string
		indent   int
		tabwidth int
		width    int
		ratio    float64
		left     []string
		right    []string
		want     string
	}{
		{
			name:  "two columns right justified",
			width: 10, ratio: 0.5,
			left:  []string{"AB"},
			right: []string{"Z"},
			want:  "AB       Z",
		},
		{
			name:  "left only",
			width: 8, ratio: 0.5,
			left: []string{"ab"},
			want: "ab      ",
		},
		{
			name:  "empty line",
			width: 4, ratio: 0.5,
			want: "    ",
		},
		{
			name:   "indent shrinks the row",
			indent: 2, tabwidth: 2, width: 12, ratio: 0.5,
			left:  []string{"a"},
			right: []string{"b"},
			want:  "    a      b",
		},
		{
			name:   "negative indent widens the row and pads nothing",
			indent: -1, tabwidth: 2, width: 8, ratio: 0.5,
			left:  []string{"a"},
			right: []string{"b"},
			want:  "a        b",
		},
		{
			name:  "left column truncated at its boundary",
			width: 10, ratio: 0.5,
			left:  []string{"abcdefgh"},
			right: []string{"xy"},
			want:  "abcde   xy",
		},
		{
			name:  "zero width",
			width: 0, ratio: 0.5,
			left: []string{"abc"},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newLineSerializer(tc.indent, tc.tabwidth, tc.width, tc.ratio)
			for _, s := range tc.left {
				if err := l.text(s); err != nil {
					t.Fatalf("text() error: %v", err)
				}
			}
			l.startRight()
			for _, s := range tc.right {
				if err := l.text(s); err != nil {
					t.Fatalf("text() error: %v", err)
				}
			}
			if got := l.compose(); got != tc.want {
				t.Errorf("compose() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLineSerializerInlineSpacing(t *testing.T) {
	l := newLineSerializer(0, 2, 12, 0.5)

	// first token gets no separator
	if err := l.startInline(nil); err != nil {
		t.Fatalf("startInline() error: %v", err)
	}
	if err := l.text("one"); err != nil {
		t.Fatalf("text() error: %v", err)
	}
	// second one does
	if err := l.startInline(nil); err != nil {
		t.Fatalf("startInline() error: %v", err)
	}
	if err := l.text("tw"); err != nil {
		t.Fatalf("text() error: %v", err)
	}

	if got := string(l.left.runes); got != "one tw" {
		t.Errorf("left column = %q, want %q", got, "one tw")
	}
}

func TestLineSerializerStartRightIsOneWay(t *testing.T) {
	l := newLineSerializer(0, 2, 10, 0.5)

	if err := l.text("L"); err != nil {
		t.Fatalf("text() error: %v", err)
	}
	l.startRight()
	l.startRight()
	if err := l.text("R"); err != nil {
		t.Fatalf("text() error: %v", err)
	}

	if got := l.compose(); got != "L        R" {
		t.Errorf("compose() = %q, want %q", got, "L        R")
	}
}

func TestLineSerializerIgnoresVerticalStructure(t *testing.T) {
	l := newLineSerializer(0, 2, 10, 0.5)

	if err := l.text("a"); err != nil {
		t.Fatalf("text() error: %v", err)
	}
	if err := l.linebreak(); err != nil {
		t.Fatalf("linebreak() error: %v", err)
	}
	if err := l.endEntity(); err != nil {
		t.Fatalf("endEntity() error: %v", err)
	}

	if got := l.compose(); got != "a         " {
		t.Errorf("compose() = %q, want %q", got, "a         ")
	}
}
