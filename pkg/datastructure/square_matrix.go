package datastructure

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

/*
SquareMatrix is an owned n x n matrix stored row-major in one contiguous slice:
a_{i,j} = vals[i*n+j]. Every access is bounds checked against n, so a bad (i, j)
pair panics instead of silently reading a neighbouring row.
*/
type SquareMatrix[T constraints.Integer | constraints.Float] struct {
	n    int
	vals []T
}

// CostMatrix. symmetric integer travel-cost table between all node pairs
type CostMatrix = SquareMatrix[int]

func NewSquareMatrix[T constraints.Integer | constraints.Float](n int) *SquareMatrix[T] {
	if n < 0 {
		n = 0
	}
	return &SquareMatrix[T]{
		n:    n,
		vals: make([]T, n*n),
	}
}

func NewCostMatrix(n int) *CostMatrix {
	return NewSquareMatrix[int](n)
}

func (m *SquareMatrix[T]) N() int {
	return m.n
}

func (m *SquareMatrix[T]) index(i, j int) int {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range for size %d", i, j, m.n))
	}
	return i*m.n + j
}

func (m *SquareMatrix[T]) Get(i, j int) T {
	return m.vals[m.index(i, j)]
}

func (m *SquareMatrix[T]) Set(i, j int, val T) {
	m.vals[m.index(i, j)] = val
}

// SetSymmetric sets a_{i,j} and a_{j,i}.
func (m *SquareMatrix[T]) SetSymmetric(i, j int, val T) {
	m.vals[m.index(i, j)] = val
	m.vals[m.index(j, i)] = val
}

func (m *SquareMatrix[T]) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.vals[i*m.n+j] != m.vals[j*m.n+i] {
				return false
			}
		}
	}
	return true
}

func (m *SquareMatrix[T]) IsZeroDiagonal() bool {
	for i := 0; i < m.n; i++ {
		if m.vals[i*m.n+i] != 0 {
			return false
		}
	}
	return true
}

// Row returns a copy of row i.
func (m *SquareMatrix[T]) Row(i int) []T {
	start := m.index(i, 0)
	row := make([]T, m.n)
	copy(row, m.vals[start:start+m.n])
	return row
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *SquareMatrix[T]) Rows() [][]T {
	rows := make([][]T, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = m.Row(i)
	}
	return rows
}

func (m *SquareMatrix[T]) Clone() *SquareMatrix[T] {
	vals := make([]T, len(m.vals))
	copy(vals, m.vals)
	return &SquareMatrix[T]{n: m.n, vals: vals}
}

func (m *SquareMatrix[T]) Equal(other *SquareMatrix[T]) bool {
	if other == nil || m.n != other.n {
		return false
	}
	for k := range m.vals {
		if m.vals[k] != other.vals[k] {
			return false
		}
	}
	return true
}

func (m *SquareMatrix[T]) IsZero() bool {
	var zero T
	for _, v := range m.vals {
		if v != zero {
			return false
		}
	}
	return true
}
