package search

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Neighbor is a record index paired with its similarity to a reference record
type Neighbor struct {
	Index int
	Score float64
}

// SimilarityMatrix holds pairwise cosine similarity between record vectors.
// It is symmetric and never modified after construction.
type SimilarityMatrix struct {
	sim *mat.SymDense
	n   int
}

// BuildSimilarityMatrix computes cosine similarity for every pair of vectors.
// Pairs involving a zero vector score 0, including its own diagonal entry.
func BuildSimilarityMatrix(vectors []SparseVector) *SimilarityMatrix {
	n := len(vectors)
	if n == 0 {
		return &SimilarityMatrix{}
	}

	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = v.Norm()
	}

	sim := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue
		}
		sim.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			score := vectors[i].Dot(vectors[j]) / (norms[i] * norms[j])
			sim.SetSym(i, j, clampUnit(score))
		}
	}

	return &SimilarityMatrix{sim: sim, n: n}
}

// Size returns the number of records covered.
func (m *SimilarityMatrix) Size() int {
	return m.n
}

// At returns sim(i, j). It panics when either index is out of range.
func (m *SimilarityMatrix) At(i, j int) float64 {
	if m.sim == nil {
		panic("search: similarity index out of range")
	}
	return m.sim.At(i, j)
}

// Neighbors returns up to k records other than i ordered by descending
// similarity, ties broken by lower index.
func (m *SimilarityMatrix) Neighbors(i, k int) []Neighbor {
	if k <= 0 || i < 0 || i >= m.n {
		return []Neighbor{}
	}

	neighbors := make([]Neighbor, 0, m.n-1)
	for j := 0; j < m.n; j++ {
		if j == i {
			continue
		}
		neighbors = append(neighbors, Neighbor{Index: j, Score: m.sim.At(i, j)})
	}

	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].Score != neighbors[b].Score {
			return neighbors[a].Score > neighbors[b].Score
		}
		return neighbors[a].Index < neighbors[b].Index
	})

	if len(neighbors) > k {
		return neighbors[:k]
	}
	return neighbors
}

// CosineSimilarity calculates the cosine similarity between two vectors
func CosineSimilarity(a, b SparseVector) float64 {
	normA, normB := a.Norm(), b.Norm()
	if normA == 0 || normB == 0 {
		return 0
	}
	return a.Dot(b) / (normA * normB)
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
