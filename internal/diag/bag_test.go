package diag

import (
	"testing"

	"cssfmt/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, SynBadPrelude, source.Span{Start: 5, End: 6}, "w"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "e"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "dup"))
	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items after dedup", len(items))
	}
	if items[0].Primary.Start != 1 || items[1].Primary.Start != 5 {
		t.Errorf("unexpected order: %+v", items)
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Errorf("HasErrors/HasWarnings = %v/%v", b.HasErrors(), b.HasWarnings())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(4)
	rb := ReportError(BagReporter{Bag: b}, FmtUnsupportedConstruct, source.Span{}, "boom").
		WithNote(source.Span{Start: 3}, "here")
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("emitted %d diagnostics", b.Len())
	}
	if got := b.Items()[0]; len(got.Notes) != 1 || got.Code != FmtUnsupportedConstruct {
		t.Errorf("unexpected diagnostic %+v", got)
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexBadURL:               "LEX1004",
		SynBadPrelude:           "SYN2006",
		FmtUnsupportedConstruct: "FMT3001",
		IOConfigError:           "IO4003",
		UnknownCode:             "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}

func TestBagFilter(t *testing.T) {
	b := NewBag(5)
	b.Add(New(SevInfo, FmtUnsupportedConstruct, source.Span{Start: 1}, "i"))
	b.Add(New(SevWarning, SynBadPrelude, source.Span{Start: 2}, "w"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 3}, "e"))

	tests := []struct {
		min  Severity
		want int
	}{
		{SevInfo, 3},
		{SevWarning, 2},
		{SevError, 1},
	}
	for _, tt := range tests {
		got := b.Filter(tt.min)
		if got.Len() != tt.want || got.Cap() != b.Cap() {
			t.Errorf("Filter(%s): len %d cap %d, want %d %d", tt.min, got.Len(), got.Cap(), tt.want, b.Cap())
		}
	}
	if b.Len() != 3 {
		t.Errorf("Filter changed the source bag")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"info", SevInfo, true},
		{"WARNING", SevWarning, true},
		{" warn ", SevWarning, true},
		{"Error", SevError, true},
		{"fatal", SevInfo, false},
		{"", SevInfo, false},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseSeverity(%q) = %s, %v", tt.in, got, err)
		}
	}
}

func TestSeverityText(t *testing.T) {
	if SevWarning.String() != "WARNING" || Severity(9).String() != "UNKNOWN" {
		t.Errorf("String = %s / %s", SevWarning, Severity(9))
	}
	text, err := SevError.MarshalText()
	if err != nil || string(text) != "error" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	var s Severity
	if err := s.UnmarshalText([]byte("warn")); err != nil || s != SevWarning {
		t.Fatalf("UnmarshalText = %s, %v", s, err)
	}
	if _, err := Severity(9).MarshalText(); err == nil {
		t.Errorf("MarshalText accepted an invalid severity")
	}
}
