package gcl

import "testing"

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.From() != 3 || s.To() != 7 {
		t.Errorf("unexpected span accessors for %v", s)
	}
	if !s.Contains(3) || !s.Contains(6) || s.Contains(7) || s.Contains(2) {
		t.Errorf("expected span %v to be half-open", s)
	}
	if (Span{4, 4}).Contains(4) {
		t.Errorf("expected empty span to contain nothing")
	}
	if s.String() != "(3…7)" {
		t.Errorf("unexpected string %q", s.String())
	}
}

func TestPosition(t *testing.T) {
	if (Position{}).String() != "-" {
		t.Errorf("expected zero position to be invalid")
	}
	p := Position{Line: 2, Column: 5, Offset: 12}
	if p.String() != "2:5" {
		t.Errorf("unexpected string %q", p.String())
	}
	if !p.Before(Position{Line: 2, Column: 6}) || !p.Before(Position{Line: 3, Column: 1}) || p.Before(p) {
		t.Errorf("Before is broken")
	}
}
