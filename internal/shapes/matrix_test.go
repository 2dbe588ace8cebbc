package shapes

import "testing"

func TestNewMatrixValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr bool
	}{
		{"valid", [][]int{{1, 0}, {1, 1}}, false},
		{"empty", nil, true},
		{"empty row", [][]int{{}}, true},
		{"ragged", [][]int{{1, 1}, {1}}, true},
		{"all zero", [][]int{{0, 0}}, true},
		{"bad value", [][]int{{1, 2}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMatrix(tc.rows)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewMatrix(%v) error = %v, wantErr %v", tc.rows, err, tc.wantErr)
			}
		})
	}
}

func TestRotateCW(t *testing.T) {
	tm := baseShapes[T]
	got := tm.RotateCW().Cells()
	want := [][]int{
		{1, 0},
		{1, 1},
		{1, 0},
	}
	if !equalCells(got, want) {
		t.Errorf("T.RotateCW() = %v, want %v", got, want)
	}

	i := baseShapes[I].RotateCW()
	if i.Rows() != 4 || i.Cols() != 1 {
		t.Errorf("I.RotateCW() is %dx%d, want 4x1", i.Rows(), i.Cols())
	}
}

func TestRotateCCWUndoesCW(t *testing.T) {
	for k := range baseShapes {
		m := baseShapes[k]
		if !m.RotateCW().RotateCCW().Equal(m) {
			t.Errorf("%s: CW then CCW should be identity", Kind(k))
		}
	}
}

func TestFourRotationsIdentity(t *testing.T) {
	for k := range baseShapes {
		m := baseShapes[k]
		r := m.RotateCW().RotateCW().RotateCW().RotateCW()
		if !r.Equal(m) {
			t.Errorf("%s: four rotations should be identity\n%s\nvs\n%s", Kind(k), r, m)
		}
		if r.Count() != m.Count() {
			t.Errorf("%s: rotation changed cell count", Kind(k))
		}
	}
}

func TestMatrixString(t *testing.T) {
	got := baseShapes[S].String()
	want := ".##\n##."
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFilledOutOfRange(t *testing.T) {
	m := baseShapes[O]
	if m.Filled(-1, 0) || m.Filled(0, 2) || m.Filled(2, 0) {
		t.Error("out-of-range cells should be empty")
	}
}

func equalCells(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
