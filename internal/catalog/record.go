package catalog

import "strings"

// RawRecord is one loosely typed catalog row as delivered by a source.
// A nil field means the value was missing.
type RawRecord struct {
	Title      string
	Categories *string
	Synopsis   *string
	Rating     *float64
}

// Record is a normalized catalog entry. Records are never modified after Normalize.
type Record struct {
	Index       int
	Title       string
	Categories  string
	Synopsis    string
	Rating      float64
	HasRating   bool
	DerivedText string
}

// Normalize converts raw rows into records, deriving the indexed text from
// categories and synopsis joined by a single space.
func Normalize(raws []RawRecord) []Record {
	records := make([]Record, len(raws))
	for i, raw := range raws {
		rec := Record{
			Index:      i,
			Title:      raw.Title,
			Categories: valueOrEmpty(raw.Categories),
			Synopsis:   valueOrEmpty(raw.Synopsis),
		}
		if raw.Rating != nil {
			rec.Rating = *raw.Rating
			rec.HasRating = true
		}
		rec.DerivedText = rec.Categories + " " + rec.Synopsis
		records[i] = rec
	}
	return records
}

// CategoryList splits the categories field into trimmed, non-empty tags.
func (r Record) CategoryList() []string {
	return splitCategories(r.Categories)
}

// DerivedTexts returns the derived text of every record, in order.
func DerivedTexts(records []Record) []string {
	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.DerivedText
	}
	return texts
}

func splitCategories(field string) []string {
	var tags []string
	for _, piece := range strings.Split(field, ",") {
		if tag := strings.TrimSpace(piece); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
