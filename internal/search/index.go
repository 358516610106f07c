package search

import (
	"sort"
)

// SearchResult holds a matching document and its score
type SearchResult struct {
	Document *Document
	Score    float64
}

// Index holds the indexed documents, their feature space and similarity matrix.
// It is built once and only read afterwards.
type Index struct {
	documents  []*Document
	space      *FeatureSpace
	similarity *SimilarityMatrix
}

// NewIndex fits the feature space over the documents, vectorizes them
// and computes their pairwise similarity.
func NewIndex(docs []*Document) *Index {
	// 1. Extract raw text for training
	rawTexts := make([]string, len(docs))
	for i, d := range docs {
		rawTexts[i] = d.Content
	}

	// 2. Fit and vectorize
	space, vectors := BuildFeatureSpace(rawTexts)
	for i, d := range docs {
		d.Vector = vectors[i]
	}

	// 3. Pairwise similarity
	return &Index{
		documents:  docs,
		space:      space,
		similarity: BuildSimilarityMatrix(vectors),
	}
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.documents)
}

// Document returns the document at position i.
func (ix *Index) Document(i int) *Document {
	return ix.documents[i]
}

// Space returns the fitted feature space.
func (ix *Index) Space() *FeatureSpace {
	return ix.space
}

// Similarity returns the pairwise similarity matrix.
func (ix *Index) Similarity() *SimilarityMatrix {
	return ix.similarity
}

// Neighbors returns the k documents most similar to document i.
func (ix *Index) Neighbors(i, k int) []Neighbor {
	return ix.similarity.Neighbors(i, k)
}

// Search finds the most similar documents to the query
func (ix *Index) Search(query string, topK int) []SearchResult {
	if topK <= 0 {
		return []SearchResult{}
	}

	queryVector := ix.space.Transform(query)
	type hit struct {
		pos   int
		score float64
	}
	var hits []hit

	for i, doc := range ix.documents {
		score := CosineSimilarity(queryVector, doc.Vector)
		if score > 0 {
			hits = append(hits, hit{pos: i, score: score})
		}
	}

	// Sort by descending score, then position
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].score != hits[b].score {
			return hits[a].score > hits[b].score
		}
		return hits[a].pos < hits[b].pos
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	results := make([]SearchResult, len(hits))
	for i, h := range hits {
		results[i] = SearchResult{Document: ix.documents[h.pos], Score: h.score}
	}
	return results
}
