package core

import "testing"

func TestGridMapperToScreen(t *testing.T) {
	m := NewGridMapper(1920, 1080, 20, 30)

	tests := []struct {
		row, col int
		want     Point
	}{
		{0, 0, Pt(0, 0)},
		{1, 1, Pt(64, 54)},
		{6, 10, Pt(640, 324)},
		{20, 30, Pt(1920, 1080)},
	}

	for _, tc := range tests {
		if got := m.ToScreen(tc.row, tc.col); got != tc.want {
			t.Errorf("ToScreen(%d, %d) = %v, expected %v", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestGridMapperToGrid(t *testing.T) {
	m := NewGridMapper(1920, 1080, 20, 30)

	tests := []struct {
		name     string
		p        Point
		row, col int
	}{
		{"origin", Pt(0, 0), 0, 0},
		{"inside first cell", Pt(63.9, 53.9), 0, 0},
		{"cell boundary", Pt(64, 54), 1, 1},
		{"screen center", Pt(960, 540), 10, 15},
		{"negative truncates toward zero", Pt(-10, -10), 0, 0},
		{"beyond bottom", Pt(1920, 1080), 20, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, col := m.ToGrid(tc.p)
			if row != tc.row || col != tc.col {
				t.Errorf("ToGrid(%v) = (%d, %d), expected (%d, %d)", tc.p, row, col, tc.row, tc.col)
			}
		})
	}
}

func TestGridMapperRoundTrip(t *testing.T) {
	m := NewGridMapper(1920, 1080, 20, 30)
	for row := range 20 {
		for col := range 30 {
			r, c := m.ToGrid(m.ToScreen(row, col))
			if r != row || c != col {
				t.Fatalf("ToGrid(ToScreen(%d, %d)) = (%d, %d)", row, col, r, c)
			}
		}
	}
}

func TestGridMapperCell(t *testing.T) {
	m := NewGridMapper(1920, 1080, 20, 30)
	c := m.Cell(6, 2)
	if c.TopLeft != Pt(128, 324) || c.BottomRight != Pt(192, 378) {
		t.Errorf("Cell(6, 2) = %+v", c)
	}
}
