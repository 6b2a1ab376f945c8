package distmat

import "sort"

// Pair is one stored matrix entry: 1-based corpus indices I < J and
// their normalized distance.
type Pair struct {
	I, J     int
	Distance float64
}

// Matrix is a sparse half-matrix of pairwise distances: row i maps
// column j to the distance of pair (i, j), canonicalized to i < j.
// A Matrix is built once (by Build or the codec's Read) and treated as
// read-only afterwards; it is not safe for concurrent mutation.
type Matrix struct {
	rows map[int]map[int]float64
}

// New returns an empty matrix ready for Set.
func New() *Matrix {
	return &Matrix{rows: make(map[int]map[int]float64)}
}

// canonical orders a pair into the stored (min, max) convention.
func canonical(i, j int) (int, int) {
	if i > j {
		return j, i
	}

	return i, j
}

// Set stores the distance for the unordered pair {i, j}, canonicalizing
// to (min, max). Indices below 1 return ErrInvalidIndex, i == j returns
// ErrSelfPair. Each slot is intended to be written exactly once; a
// repeated Set overwrites (last write wins).
func (m *Matrix) Set(i, j int, d float64) error {
	if m == nil || m.rows == nil {
		return ErrNilMatrix
	}
	if i < 1 || j < 1 {
		return ErrInvalidIndex
	}
	if i == j {
		return ErrSelfPair
	}

	i, j = canonical(i, j)
	row, ok := m.rows[i]
	if !ok {
		row = make(map[int]float64)
		m.rows[i] = row
	}
	row[j] = d

	return nil
}

// Lookup returns the stored distance for the unordered pair {i, j}.
// The arguments may arrive in either order; they are canonicalized to
// the stored (min, max) convention. Indices below 1 return
// ErrInvalidIndex; an absent pair returns ErrPairNotFound — never a
// sentinel value.
func (m *Matrix) Lookup(i, j int) (float64, error) {
	if m == nil || m.rows == nil {
		return 0, ErrNilMatrix
	}
	if i < 1 || j < 1 {
		return 0, ErrInvalidIndex
	}

	i, j = canonical(i, j)
	d, ok := m.rows[i][j]
	if !ok {
		return 0, ErrPairNotFound
	}

	return d, nil
}

// Len returns the number of stored pairs.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}

	n := 0
	for _, row := range m.rows {
		n += len(row)
	}

	return n
}

// Pairs returns every stored entry ordered by ascending i, then
// ascending j. The ordering is the codec's write order, chosen for
// reproducible artifacts and easy diffing.
func (m *Matrix) Pairs() []Pair {
	if m == nil {
		return nil
	}

	out := make([]Pair, 0, m.Len())
	is := make([]int, 0, len(m.rows))
	for i := range m.rows {
		is = append(is, i)
	}
	sort.Ints(is)
	for _, i := range is {
		js := make([]int, 0, len(m.rows[i]))
		for j := range m.rows[i] {
			js = append(js, j)
		}
		sort.Ints(js)
		for _, j := range js {
			out = append(out, Pair{I: i, J: j, Distance: m.rows[i][j]})
		}
	}

	return out
}
