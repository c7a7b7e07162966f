package input

import "testing"

func TestDir8Numpad(t *testing.T) {
	cases := []struct {
		name  string
		codes []int
		want  int
	}{
		{"neutral", nil, 0},
		{"up", []int{codeUp}, 8},
		{"down", []int{codeDown}, 2},
		{"left", []int{codeLeft}, 4},
		{"right", []int{codeRight}, 6},
		{"left_up", []int{codeLeft, codeUp}, 7},
		{"right_up", []int{codeRight, codeUp}, 9},
		{"left_down", []int{codeLeft, codeDown}, 1},
		{"right_down", []int{codeRight, codeDown}, 3},
		{"opposites_cancel", []int{codeLeft, codeRight}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := New()
			for _, code := range c.codes {
				in.KeyDown(code)
			}
			in.Update()
			if got := in.Dir8(); got != c.want {
				t.Fatalf("Dir8 = %d, want %d", got, c.want)
			}
		})
	}
}

func TestDir4DiagonalTieBreak(t *testing.T) {
	cases := []struct {
		name       string
		first      int // held alone for one frame
		second     int // added to form the diagonal
		wantDir8   int
		wantDir4   int
	}{
		// Moving along one axis marks the other as preferred, so the
		// diagonal resolves to the newly added axis.
		{"left_then_up", codeLeft, codeUp, 7, 8},
		{"up_then_left", codeUp, codeLeft, 7, 4},
		{"right_then_down", codeRight, codeDown, 3, 2},
		{"down_then_right", codeDown, codeRight, 3, 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := New()
			in.KeyDown(c.first)
			in.Update()
			in.KeyDown(c.second)
			in.Update()

			if got := in.Dir8(); got != c.wantDir8 {
				t.Fatalf("Dir8 = %d, want %d", got, c.wantDir8)
			}
			if got := in.Dir4(); got != c.wantDir4 {
				t.Fatalf("Dir4 = %d, want %d", got, c.wantDir4)
			}

			// The collapse must not oscillate while the held set is
			// unchanged.
			for i := 0; i < 10; i++ {
				in.Update()
				if got := in.Dir4(); got != c.wantDir4 {
					t.Fatalf("frame %d: Dir4 oscillated to %d, want %d", i, got, c.wantDir4)
				}
			}
		})
	}
}

func TestDir4FreshDiagonalFavorsVertical(t *testing.T) {
	in := New()
	in.KeyDown(codeLeft)
	in.KeyDown(codeUp)
	in.Update()
	if got := in.Dir8(); got != 7 {
		t.Fatalf("Dir8 = %d, want 7", got)
	}
	// With no prior single-axis movement the vertical axis wins.
	if got := in.Dir4(); got != 8 {
		t.Fatalf("Dir4 = %d, want 8", got)
	}
}

func TestNumpadDirection(t *testing.T) {
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{-1, -1, 7}, {0, -1, 8}, {1, -1, 9},
		{-1, 0, 4}, {1, 0, 6},
		{-1, 1, 1}, {0, 1, 2}, {1, 1, 3},
	}
	for _, c := range cases {
		if got := numpadDirection(c.x, c.y); got != c.want {
			t.Fatalf("numpadDirection(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}
