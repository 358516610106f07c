package search

import (
	"math"
	"sort"
)

// Vectorizer turns text into a vector
type Vectorizer interface {
	Fit(docs []string)
	Transform(text string) SparseVector
}

// TFIDFVectorizer implements Term Frequency - Inverse Document Frequency
type TFIDFVectorizer struct {
	Vocabulary map[string]int
	Terms      []string
	IDF        []float64
}

func NewTFIDFVectorizer() *TFIDFVectorizer {
	return &TFIDFVectorizer{
		Vocabulary: make(map[string]int),
	}
}

// Fit analyzes the corpus to build vocabulary and IDF stats.
// Term indices follow lexicographic order so identical corpora give identical spaces.
func (v *TFIDFVectorizer) Fit(docs []string) {
	docCount := float64(len(docs))
	wordDocCounts := make(map[string]int)

	// 1. Count document occurrences
	for _, doc := range docs {
		seenInDoc := make(map[string]bool)
		for _, token := range Tokenize(doc) {
			if !seenInDoc[token] {
				wordDocCounts[token]++
				seenInDoc[token] = true
			}
		}
	}

	// 2. Build vocabulary
	terms := make([]string, 0, len(wordDocCounts))
	for word := range wordDocCounts {
		terms = append(terms, word)
	}
	sort.Strings(terms)

	v.Terms = terms
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))

	// 3. Calculate smoothed IDF
	for i, term := range terms {
		v.Vocabulary[term] = i
		// idf = ln((1 + N) / (1 + df)) + 1
		v.IDF[i] = math.Log((1+docCount)/(1+float64(wordDocCounts[term]))) + 1
	}
}

// Transform converts text to an L2-normalised vector over the learned vocabulary.
// Tokens outside the vocabulary are ignored.
func (v *TFIDFVectorizer) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, token := range Tokenize(text) {
		if idx, exists := v.Vocabulary[token]; exists {
			counts[idx]++
		}
	}

	vector := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
		Dim:     len(v.Terms),
	}
	for idx := range counts {
		vector.Indices = append(vector.Indices, idx)
	}
	sort.Ints(vector.Indices)

	var sumSquares float64
	for _, idx := range vector.Indices {
		w := counts[idx] * v.IDF[idx]
		vector.Values = append(vector.Values, w)
		sumSquares += w * w
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range vector.Values {
			vector.Values[i] /= norm
		}
	}

	return vector
}

// FitTransform fits the corpus and returns one vector per document, in input order.
func (v *TFIDFVectorizer) FitTransform(docs []string) []SparseVector {
	v.Fit(docs)
	vectors := make([]SparseVector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return vectors
}

// FeatureSpace is a fitted, read-only TF-IDF space.
type FeatureSpace struct {
	vectorizer *TFIDFVectorizer
}

// BuildFeatureSpace fits a vocabulary over docs and returns the space plus one vector per doc.
func BuildFeatureSpace(docs []string) (*FeatureSpace, []SparseVector) {
	v := NewTFIDFVectorizer()
	vectors := v.FitTransform(docs)
	return &FeatureSpace{vectorizer: v}, vectors
}

// Size returns the vocabulary size.
func (fs *FeatureSpace) Size() int {
	return len(fs.vectorizer.Terms)
}

// Index returns the dimension of a term.
func (fs *FeatureSpace) Index(term string) (int, bool) {
	idx, ok := fs.vectorizer.Vocabulary[term]
	return idx, ok
}

// Term returns the term at a dimension.
func (fs *FeatureSpace) Term(idx int) string {
	return fs.vectorizer.Terms[idx]
}

// Terms returns a copy of the vocabulary in dimension order.
func (fs *FeatureSpace) Terms() []string {
	out := make([]string, len(fs.vectorizer.Terms))
	copy(out, fs.vectorizer.Terms)
	return out
}

// IDF returns the inverse document frequency of a term.
func (fs *FeatureSpace) IDF(term string) (float64, bool) {
	idx, ok := fs.vectorizer.Vocabulary[term]
	if !ok {
		return 0, false
	}
	return fs.vectorizer.IDF[idx], true
}

// Transform projects text into the space without changing the vocabulary.
func (fs *FeatureSpace) Transform(text string) SparseVector {
	return fs.vectorizer.Transform(text)
}
