package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 2)

	if r.Right() != 13 || r.Bottom() != 6 {
		t.Errorf("Right/Bottom = %d/%d, expected 13/6", r.Right(), r.Bottom())
	}
}

func TestRectCenteredRect(t *testing.T) {
	tests := []struct {
		name  string
		outer Rect
		w, h  int
		want  Rect
	}{
		{"even fit", NewRect(0, 0, 40, 20), 10, 4, NewRect(15, 8, 10, 4)},
		{"offset outer", NewRect(5, 2, 11, 5), 3, 1, NewRect(9, 4, 3, 1)},
		{"larger than outer", NewRect(0, 0, 4, 4), 8, 2, NewRect(-2, 1, 8, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outer.CenteredRect(tt.w, tt.h); got != tt.want {
				t.Errorf("CenteredRect(%d, %d) = %+v, expected %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(-2, 7) != -2 || Min(7, -2) != -2 {
		t.Error("Min should return the smaller value")
	}
	if Max(-2, 7) != 7 || Max(7, -2) != 7 {
		t.Error("Max should return the larger value")
	}
}
