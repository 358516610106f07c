package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledge-engine/recommender/internal/catalog"
)

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNormalize(t *testing.T) {
	raws := []catalog.RawRecord{
		{Title: "Heat", Categories: strPtr("Action, Crime"), Synopsis: strPtr("A cop hunts a thief."), Rating: floatPtr(8.3)},
		{Title: "Unknown", Categories: nil, Synopsis: strPtr("Only a synopsis."), Rating: nil},
		{Title: "Bare"},
	}

	records := catalog.Normalize(raws)
	require.Len(t, records, 3)

	assert.Equal(t, 0, records[0].Index)
	assert.Equal(t, "Action, Crime A cop hunts a thief.", records[0].DerivedText)
	assert.True(t, records[0].HasRating)
	assert.Equal(t, 8.3, records[0].Rating)

	assert.Equal(t, " Only a synopsis.", records[1].DerivedText)
	assert.False(t, records[1].HasRating)

	assert.Equal(t, " ", records[2].DerivedText)
	assert.Equal(t, "", records[2].Synopsis)
	assert.Equal(t, 2, records[2].Index)
}

func TestRecord_CategoryList(t *testing.T) {
	rec := catalog.Record{Categories: "Action, Drama,, "}
	assert.Equal(t, []string{"Action", "Drama"}, rec.CategoryList())
	assert.Empty(t, catalog.Record{}.CategoryList())
}

func TestDerivedTexts(t *testing.T) {
	records := catalog.Normalize([]catalog.RawRecord{
		{Title: "A", Categories: strPtr("Drama")},
		{Title: "B", Synopsis: strPtr("Text")},
	})
	assert.Equal(t, []string{"Drama ", " Text"}, catalog.DerivedTexts(records))
}

func TestExtractCategories(t *testing.T) {
	records := catalog.Normalize([]catalog.RawRecord{
		{Title: "A", Categories: strPtr("Drama, Action")},
		{Title: "B", Categories: strPtr("Action, Drama")},
		{Title: "C", Categories: strPtr(" Sci-Fi ,Adventure")},
		{Title: "D"},
		{Title: "E", Categories: strPtr("action")},
	})

	set := catalog.ExtractCategories(records)
	assert.Equal(t, catalog.CategorySet{"Action", "Adventure", "Drama", "Sci-Fi", "action"}, set)

	again := catalog.ExtractCategories(records)
	assert.Equal(t, set, again)
}

func TestExtractCategories_SplitsPair(t *testing.T) {
	records := catalog.Normalize([]catalog.RawRecord{{Title: "A", Categories: strPtr("Action, Drama")}})
	assert.Equal(t, catalog.CategorySet{"Action", "Drama"}, catalog.ExtractCategories(records))
}

func TestCategorySet_Resolve(t *testing.T) {
	set := catalog.CategorySet{"Action", "Drama", "Film-Noir", "Sci-Fi"}

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"first by number", "1", "Action", true},
		{"last by number", "4", "Sci-Fi", true},
		{"number out of range", "5", "", false},
		{"zero", "0", "", false},
		{"lower case name", "drama", "Drama", true},
		{"hyphenated name", "sci-fi", "Sci-Fi", true},
		{"upper case name", "FILM-NOIR", "Film-Noir", true},
		{"padded", "  action ", "Action", true},
		{"unknown", "Western", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := set.Resolve(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorySet_Contains(t *testing.T) {
	set := catalog.CategorySet{"Action", "Drama"}
	assert.True(t, set.Contains("Drama"))
	assert.False(t, set.Contains("drama"))
	assert.False(t, catalog.CategorySet{}.Contains("Drama"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Sci-Fi", catalog.TitleCase("sCI-fI"))
	assert.Equal(t, "Film Noir", catalog.TitleCase("film noir"))
}
