package printer

import (
	"reflect"
	"testing"
)

func TestNop(t *testing.T) {
	var d Driver = Nop{}

	if err := d.SetSheetRollMode(); err != nil {
		t.Errorf("SetSheetRollMode() error: %v", err)
	}
	if err := d.ApplyStyle(StyleSet{}); err != nil {
		t.Errorf("ApplyStyle() error: %v", err)
	}
	if err := d.Text("x"); err != nil {
		t.Errorf("Text() error: %v", err)
	}
	if err := d.Cut(CutModeFull); err != nil {
		t.Errorf("Cut() error: %v", err)
	}
}

func TestRecorderTrace(t *testing.T) {
	r := &Recorder{}

	if err := r.SetSheetRollMode(); err != nil {
		t.Fatalf("SetSheetRollMode() error: %v", err)
	}
	if err := r.Text("hello"); err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if err := r.Text("\n"); err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if err := r.Cut(CutModeFull); err != nil {
		t.Fatalf("Cut() error: %v", err)
	}

	want := []string{"sheet(roll)", `text("hello")`, `text("\n")`, "cut(full)"}
	if got := r.Ops(); !reflect.DeepEqual(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
	if got := r.Printed(); got != "hello\n" {
		t.Errorf("printed = %q, want %q", got, "hello\n")
	}
	if got := r.Trace(); got != "sheet(roll)\ntext(\"hello\")\ntext(\"\\n\")\ncut(full)" {
		t.Errorf("trace = %q", got)
	}
}

func TestRecorderOpsIsACopy(t *testing.T) {
	r := &Recorder{}
	if err := r.OpenCashDrawer(); err != nil {
		t.Fatalf("OpenCashDrawer() error: %v", err)
	}

	ops := r.Ops()
	ops[0] = "mutated"
	if r.Ops()[0] != "cashdraw()" {
		t.Error("Ops() must return a copy")
	}
}

func TestCutMode(t *testing.T) {
	if CutModeFull.String() != "full" {
		t.Errorf("CutModeFull = %q, want full", CutModeFull.String())
	}
	if CutModePartial.String() != "partial" {
		t.Errorf("CutModePartial = %q, want partial", CutModePartial.String())
	}

	m, err := ParseCutMode("partial")
	if err != nil {
		t.Fatalf("ParseCutMode() error: %v", err)
	}
	if m != CutModePartial {
		t.Errorf("ParseCutMode(partial) = %v, want CutModePartial", m)
	}

	if _, err := ParseCutMode("jagged"); err == nil {
		t.Error("expected error for unknown cut mode")
	}
}
