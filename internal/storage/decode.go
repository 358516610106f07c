package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/knowledge-engine/recommender/internal/catalog"
)

// Cleaner rewrites a text cell before it enters the catalog
type Cleaner func(string) string

// column aliases, matched case-insensitively against the header row
var (
	titleColumns    = []string{"series_title", "title"}
	categoryColumns = []string{"genre", "genres", "categories"}
	synopsisColumns = []string{"overview", "synopsis", "description"}
	ratingColumns   = []string{"imdb_rating", "rating"}
)

// DecodeCSV reads a header-led CSV catalog. Empty cells and unparsable
// ratings become missing values.
func DecodeCSV(r io.Reader, clean Cleaner) ([]catalog.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []catalog.RawRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	titleCol := findColumn(header, titleColumns)
	if titleCol < 0 {
		return nil, fmt.Errorf("catalog header has no title column: %v", header)
	}
	categoryCol := findColumn(header, categoryColumns)
	synopsisCol := findColumn(header, synopsisColumns)
	ratingCol := findColumn(header, ratingColumns)

	var records []catalog.RawRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+1, err)
		}

		rec := catalog.RawRecord{}
		if title := cell(row, titleCol, clean); title != nil {
			rec.Title = *title
		}
		rec.Categories = cell(row, categoryCol, clean)
		rec.Synopsis = cell(row, synopsisCol, clean)
		rec.Rating = parseRating(cell(row, ratingCol, nil))
		records = append(records, rec)
	}

	if records == nil {
		records = []catalog.RawRecord{}
	}
	return records, nil
}

// jsonRow is the JSON form of a catalog row
type jsonRow struct {
	Title      string   `json:"title"`
	Categories *string  `json:"categories"`
	Synopsis   *string  `json:"synopsis"`
	Rating     *float64 `json:"rating"`
}

// DecodeJSON reads a JSON array of catalog rows.
func DecodeJSON(r io.Reader, clean Cleaner) ([]catalog.RawRecord, error) {
	var rows []jsonRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	records := make([]catalog.RawRecord, len(rows))
	for i, row := range rows {
		records[i] = catalog.RawRecord{
			Title:      applyClean(row.Title, clean),
			Categories: cleanPtr(row.Categories, clean),
			Synopsis:   cleanPtr(row.Synopsis, clean),
			Rating:     row.Rating,
		}
	}
	return records, nil
}

func findColumn(header []string, aliases []string) int {
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		for _, alias := range aliases {
			if name == alias {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int, clean Cleaner) *string {
	if col < 0 || col >= len(row) {
		return nil
	}
	return cleanPtr(&row[col], clean)
}

func cleanPtr(value *string, clean Cleaner) *string {
	if value == nil {
		return nil
	}
	v := applyClean(*value, clean)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func applyClean(value string, clean Cleaner) string {
	if clean == nil {
		return value
	}
	return clean(value)
}

func parseRating(value *string) *float64 {
	if value == nil {
		return nil
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(*value), 64)
	if err != nil {
		return nil
	}
	return &rating
}
