package state

import "testing"

func TestNewViewDefaults(t *testing.T) {
	v := NewView()
	if v.Active != ScreenList {
		t.Fatalf("expected list screen, got %v", v.Active)
	}
	if v.CurrentPage != 1 || v.TotalPages != 1 {
		t.Fatalf("expected page 1/1, got %d/%d", v.CurrentPage, v.TotalPages)
	}
	if v.WordCount != 0 || len(v.Entries) != 0 {
		t.Fatalf("expected empty word count and entries")
	}
	if v.PasswordError != "" || v.PasswordErrorVisible {
		t.Fatalf("expected no password error at construction")
	}
}

func TestPaginationClamp(t *testing.T) {
	cases := []struct {
		page, total      int
		canPrev, canNext bool
	}{
		{1, 1, false, false},
		{1, 5, false, true},
		{3, 5, true, true},
		{5, 5, true, false},
		// Backend violation: the controls just disable, no repair.
		{7, 5, true, false},
	}
	for _, tc := range cases {
		v := &View{CurrentPage: tc.page, TotalPages: tc.total}
		if got := v.CanPrevPage(); got != tc.canPrev {
			t.Errorf("page %d/%d CanPrevPage = %v, want %v", tc.page, tc.total, got, tc.canPrev)
		}
		if got := v.CanNextPage(); got != tc.canNext {
			t.Errorf("page %d/%d CanNextPage = %v, want %v", tc.page, tc.total, got, tc.canNext)
		}
	}
}

func TestOverWordLimit(t *testing.T) {
	v := &View{WordCount: SoftWordLimit}
	if v.OverWordLimit() {
		t.Fatalf("at the limit should not warn")
	}
	v.WordCount++
	if !v.OverWordLimit() {
		t.Fatalf("above the limit should warn")
	}
}

func TestScreenString(t *testing.T) {
	if ScreenList.String() != "list" || ScreenBook.String() != "book" || ScreenNote.String() != "note" {
		t.Fatalf("unexpected screen names %q %q %q", ScreenList, ScreenBook, ScreenNote)
	}
}
