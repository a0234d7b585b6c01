package state

import "testing"

func TestCursorMove(t *testing.T) {
	c := &Cursor{}
	if !c.Move(1, 3) || c.Pos != 1 {
		t.Fatalf("expected cursor at 1, got %d", c.Pos)
	}
	if !c.Move(5, 3) || c.Pos != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", c.Pos)
	}
	if c.Move(1, 3) {
		t.Fatalf("expected no movement past end")
	}
	if !c.Move(-10, 3) || c.Pos != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", c.Pos)
	}
	if c.Move(-1, 3) {
		t.Fatalf("expected no movement past start")
	}
}

func TestCursorMoveEmptyList(t *testing.T) {
	c := &Cursor{Pos: 4}
	if c.Move(1, 0) {
		t.Fatalf("expected no movement in empty list")
	}
	if c.Pos != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", c.Pos)
	}
}

func TestCursorHomeEnd(t *testing.T) {
	c := &Cursor{Pos: 1}
	if !c.Home(3) || c.Pos != 0 {
		t.Fatalf("expected home at 0, got %d", c.Pos)
	}
	if c.Home(3) {
		t.Fatalf("expected no movement when already home")
	}
	if !c.End(3) || c.Pos != 2 {
		t.Fatalf("expected end at 2, got %d", c.Pos)
	}
	if c.End(3) {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestEnsureVisibleScrollsViewport(t *testing.T) {
	c := &Cursor{}
	c.Pos = 9
	c.EnsureVisible(12, 5)
	if c.ViewportOffset != 5 {
		t.Fatalf("expected offset 5, got %d", c.ViewportOffset)
	}
	c.Pos = 0
	c.EnsureVisible(12, 5)
	if c.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", c.ViewportOffset)
	}
	c.Pos = 11
	c.EnsureVisible(12, 5)
	if c.ViewportOffset != 7 {
		t.Fatalf("expected offset 7, got %d", c.ViewportOffset)
	}
}

func TestEnsureVisibleShrunkList(t *testing.T) {
	c := &Cursor{Pos: 10, ViewportOffset: 8}
	c.EnsureVisible(4, 5)
	if c.Pos != 3 {
		t.Fatalf("expected cursor clamped to 3, got %d", c.Pos)
	}
	if c.ViewportOffset != 0 {
		t.Fatalf("expected offset reset, got %d", c.ViewportOffset)
	}
}
