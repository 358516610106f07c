package search

import "math"

// SparseVector holds the non-zero weights of a vector over the vocabulary.
// Indices are strictly ascending.
type SparseVector struct {
	Indices []int
	Values  []float64
	Dim     int
}

// Nnz returns the number of non-zero entries.
func (sv SparseVector) Nnz() int {
	return len(sv.Indices)
}

// IsZero reports whether the vector has no non-zero weight.
func (sv SparseVector) IsZero() bool {
	for _, v := range sv.Values {
		if v != 0 {
			return false
		}
	}
	return true
}

// Norm returns the L2 norm.
func (sv SparseVector) Norm() float64 {
	var sum float64
	for _, v := range sv.Values {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Dot computes the dot product with another sparse vector by merging indices.
func (sv SparseVector) Dot(other SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(sv.Indices) && j < len(other.Indices) {
		switch {
		case sv.Indices[i] == other.Indices[j]:
			sum += sv.Values[i] * other.Values[j]
			i++
			j++
		case sv.Indices[i] < other.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// ToDense converts to a dense float64 slice of length Dim.
func (sv SparseVector) ToDense() []float64 {
	dense := make([]float64, sv.Dim)
	for i, idx := range sv.Indices {
		if idx < sv.Dim {
			dense[idx] = sv.Values[i]
		}
	}
	return dense
}
