package core

import (
	"errors"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := MustFrame(24, 80, Transparent)

	if f.Rows() != 24 {
		t.Errorf("Rows() = %d, expected 24", f.Rows())
	}
	if f.Cols() != 80 {
		t.Errorf("Cols() = %d, expected 80", f.Cols())
	}
	if !f.IsBlank() {
		t.Error("New transparent frame should be blank")
	}

	if _, err := NewFrame(-1, 5, Black); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("NewFrame(-1, 5) error = %v, expected ErrNegativeSize", err)
	}
}

func TestFrameGet(t *testing.T) {
	f := MustFrame(3, 4, Black)
	f.Paint(1, 2, Red)

	got, err := f.Get(1, 2)
	if err != nil {
		t.Fatalf("Get(1, 2) error = %v", err)
	}
	if !got.Equal(Red) {
		t.Errorf("Get(1, 2) = %v, expected %v", got, Red)
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}}
	for _, rc := range outside {
		if _, err := f.Get(rc[0], rc[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d, %d) error = %v, expected ErrOutOfRange", rc[0], rc[1], err)
		}
		if !f.Cell(rc[0], rc[1]).Transparent {
			t.Errorf("Cell(%d, %d) outside should read transparent", rc[0], rc[1])
		}
	}
}

func TestFrameResizePreservesOverlap(t *testing.T) {
	sizes := []struct {
		name       string
		rows, cols int
	}{
		{"shrink both", 3, 4},
		{"grow both", 8, 9},
		{"taller narrower", 9, 3},
		{"shorter wider", 2, 12},
		{"empty", 0, 0},
	}

	for _, tc := range sizes {
		t.Run(tc.name, func(t *testing.T) {
			f := MustFrame(5, 6, Transparent)
			for r := 0; r < 5; r++ {
				for c := 0; c < 6; c++ {
					f.Paint(r, c, NewRGB(uint8(r*10), uint8(c*10), 7))
				}
			}

			if err := f.Resize(tc.rows, tc.cols, Yellow); err != nil {
				t.Fatalf("Resize(%d, %d) error = %v", tc.rows, tc.cols, err)
			}
			if f.Rows() != tc.rows || f.Cols() != tc.cols {
				t.Fatalf("After resize, dimensions = %dx%d, expected %dx%d", f.Rows(), f.Cols(), tc.rows, tc.cols)
			}

			for r := 0; r < tc.rows; r++ {
				for c := 0; c < tc.cols; c++ {
					got, _ := f.Get(r, c)
					expected := Yellow
					if r < 5 && c < 6 {
						expected = NewRGB(uint8(r*10), uint8(c*10), 7)
					}
					if !got.Equal(expected) {
						t.Errorf("Get(%d, %d) = %v, expected %v", r, c, got, expected)
					}
				}
			}
		})
	}
}

func TestFrameResizeNegative(t *testing.T) {
	f := MustFrame(2, 2, Black)
	if err := f.Resize(2, -1, Black); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("Resize(2, -1) error = %v, expected ErrNegativeSize", err)
	}
	// Failed resize leaves the frame untouched
	if f.Rows() != 2 || f.Cols() != 2 {
		t.Errorf("Failed resize changed dimensions to %dx%d", f.Rows(), f.Cols())
	}
}

func TestFramePaintRectClamps(t *testing.T) {
	tests := []struct {
		name           string
		r0, c0, r1, c1 int
		painted        int
	}{
		{"inside", 1, 1, 2, 2, 4},
		{"single cell", 0, 0, 0, 0, 1},
		{"partly outside", -3, -3, 1, 1, 4},
		{"fully outside", 10, 10, 12, 12, 0},
		{"inverted", 3, 3, 1, 1, 0},
		{"covers all", -100, -100, 100, 100, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := MustFrame(4, 5, Transparent)
			f.PaintRect(tc.r0, tc.c0, tc.r1, tc.c1, Green) // must not panic

			count := 0
			for r := 0; r < 4; r++ {
				for c := 0; c < 5; c++ {
					if f.Opaque(r, c) {
						count++
					}
				}
			}
			if count != tc.painted {
				t.Errorf("PaintRect painted %d cells, expected %d", count, tc.painted)
			}
		})
	}
}

func TestFrameOverlayIsTransparencyGated(t *testing.T) {
	base := MustFrame(4, 4, Black)
	top := MustFrame(4, 4, Transparent)
	top.Paint(0, 0, Red)
	top.PaintRect(2, 1, 3, 2, Cyan)

	before := base.Clone()
	base.Overlay(top)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			topCell := top.Cell(r, c)
			got := base.Cell(r, c)
			if topCell.Transparent {
				if !got.Equal(before.Cell(r, c)) {
					t.Errorf("Cell (%d, %d) changed under a transparent cell", r, c)
				}
			} else if !got.Equal(topCell) {
				t.Errorf("Cell (%d, %d) = %v, expected %v", r, c, got, topCell)
			}
		}
	}
}

func TestFrameOverlayKeepsDimensions(t *testing.T) {
	small := MustFrame(2, 3, Black)
	big := MustFrame(5, 6, Red)

	small.Overlay(big)
	if small.Rows() != 2 || small.Cols() != 3 {
		t.Errorf("Overlay changed dimensions to %dx%d", small.Rows(), small.Cols())
	}
	if !small.Cell(1, 2).Equal(Red) {
		t.Error("Overlay should cover the common region")
	}

	big2 := MustFrame(5, 6, Black)
	big2.Overlay(MustFrame(2, 3, Red))
	if !big2.Cell(4, 5).Equal(Black) {
		t.Error("Overlay should ignore cells outside the smaller frame")
	}
	if !big2.Cell(1, 2).Equal(Red) {
		t.Error("Overlay should cover the common region")
	}
}

func TestFramePlus(t *testing.T) {
	base := MustFrame(2, 2, Black)
	top := MustFrame(2, 2, Transparent)
	top.Paint(1, 1, White)

	sum := base.Plus(top)

	if !sum.Cell(1, 1).Equal(White) {
		t.Errorf("Plus cell (1, 1) = %v, expected white", sum.Cell(1, 1))
	}
	if !base.Cell(1, 1).Equal(Black) {
		t.Error("Plus must not modify the receiver")
	}
}

func TestFrameEqual(t *testing.T) {
	a := MustFrame(3, 3, Transparent)
	b := MustFrame(3, 3, Transparent)

	if !a.Equal(b) {
		t.Error("Identical frames should be equal")
	}

	b.Paint(2, 2, Blue)
	if a.Equal(b) {
		t.Error("Frames differing in one cell should not be equal")
	}

	if a.Equal(MustFrame(3, 4, Transparent)) {
		t.Error("Frames with different dimensions should not be equal")
	}
}

func TestBestMatch(t *testing.T) {
	palette := []RGB{Black, Red, Green, Blue, White}

	tests := []struct {
		name     string
		color    RGB
		expected int
	}{
		{"exact black", Black, 0},
		{"dark red", NewRGB(200, 10, 10), 1},
		{"light gray", NewRGB(220, 220, 220), 4},
		{"navy", NewRGB(0, 0, 100), 0},
		{"blueish", NewRGB(10, 20, 180), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.color.BestMatch(palette); got != tc.expected {
				t.Errorf("BestMatch() = %d, expected %d", got, tc.expected)
			}
		})
	}

	if got := Red.BestMatch(nil); got != -1 {
		t.Errorf("BestMatch(nil) = %d, expected -1", got)
	}
}

func TestRGBEqual(t *testing.T) {
	if !Transparent.Equal(RGB{Transparent: true}) {
		t.Error("Transparent cells should be equal regardless of levels")
	}
	if Transparent.Equal(White) {
		t.Error("Transparent should not equal opaque white")
	}
	if Red.Equal(Magenta) {
		t.Error("Red should not equal magenta")
	}
}
