// Package sentiment scores the polarity of free text with a fixed English lexicon.
//
// All package state is read-only, so Polarity is safe for concurrent use.
package sentiment

import (
	"strings"
	"unicode"
)

// Label is the coarse classification of a polarity score
type Label int

const (
	Neutral Label = iota
	Positive
	Negative
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

const (
	// negationFactor reverses a negated word and weakens it.
	negationFactor = -0.5
	// negationWindow is how many plain words a pending negation survives.
	negationWindow = 3
	exclamationBoost = 0.1
	maxExclamations  = 3
)

// Polarity returns a sentiment score in [-1, 1]; 0 for blank text.
func Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	var (
		sum       float64
		count     int
		negated   bool
		gap       int
		intensity = 1.0
	)

	for _, word := range words(text) {
		if isNegator(word) {
			negated = true
			gap = 0
			continue
		}
		if m, ok := intensifiers[word]; ok {
			intensity *= m
			continue
		}

		prior, ok := lexicon[word]
		if !ok {
			gap++
			if gap > negationWindow {
				negated = false
			}
			intensity = 1.0
			continue
		}

		score := prior * intensity
		if negated {
			score *= negationFactor
		}
		sum += clamp(score)
		count++

		negated = false
		gap = 0
		intensity = 1.0
	}

	if count == 0 {
		return 0
	}

	mean := sum / float64(count)
	if bangs := strings.Count(text, "!"); bangs > 0 && mean != 0 {
		if bangs > maxExclamations {
			bangs = maxExclamations
		}
		mean *= 1 + exclamationBoost*float64(bangs)
	}
	return clamp(mean)
}

// Classify maps a polarity score to its label.
func Classify(polarity float64) Label {
	switch {
	case polarity > 0:
		return Positive
	case polarity < 0:
		return Negative
	default:
		return Neutral
	}
}

// typographic apostrophes fold to ASCII so "isn’t" still negates
var apostrophes = strings.NewReplacer("\u2019", "'", "\u2018", "'", "\u02bc", "'")

func words(text string) []string {
	text = apostrophes.Replace(text)
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "'"); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func isNegator(word string) bool {
	return negators[word] || strings.HasSuffix(word, "n't")
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
