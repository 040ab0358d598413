package lpsolver

import "fmt"

// tableau is a flat, row-major matrix specialized for simplex pivoting,
// adapted from the teacher's matrix.Dense: same backing-slice layout and
// the same bounds-checked indexOf/At/Set discipline, trimmed to the
// operations pivoting actually needs (no decomposition, no views).
type tableau struct {
	rows, cols int
	data       []float64
}

func newTableau(rows, cols int) *tableau {
	return &tableau{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

func (t *tableau) indexOf(row, col int) (int, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return 0, fmt.Errorf("tableau.At(%d,%d): %w", row, col, ErrUnknownVariable)
	}

	return row*t.cols + col, nil
}

func (t *tableau) At(row, col int) float64 {
	off, err := t.indexOf(row, col)
	if err != nil {
		panic(err)
	}

	return t.data[off]
}

func (t *tableau) Set(row, col int, v float64) {
	off, err := t.indexOf(row, col)
	if err != nil {
		panic(err)
	}
	t.data[off] = v
}

func (t *tableau) Add(row, col int, delta float64) {
	t.Set(row, col, t.At(row, col)+delta)
}

// pivot performs a single Gauss-Jordan elimination step around (pr, pc):
// normalizes row pr so that column pc becomes 1, then eliminates column
// pc from every other row.
func (t *tableau) pivot(pr, pc int) {
	piv := t.At(pr, pc)
	for j := 0; j < t.cols; j++ {
		t.Set(pr, j, t.At(pr, j)/piv)
	}
	for i := 0; i < t.rows; i++ {
		if i == pr {
			continue
		}
		factor := t.At(i, pc)
		if factor == 0 {
			continue
		}
		for j := 0; j < t.cols; j++ {
			t.Add(i, j, -factor*t.At(pr, j))
		}
	}
}
