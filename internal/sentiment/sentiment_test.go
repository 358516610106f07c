package sentiment_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knowledge-engine/recommender/internal/sentiment"
)

func TestPolarity_Blank(t *testing.T) {
	assert.Equal(t, 0.0, sentiment.Polarity(""))
	assert.Equal(t, 0.0, sentiment.Polarity("   \t\n"))
}

func TestPolarity_Direction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want sentiment.Label
	}{
		{"positive mood", "I feel great", sentiment.Positive},
		{"negative mood", "I feel terrible", sentiment.Negative},
		{"neutral text", "A man walks to the station", sentiment.Neutral},
		{"negation flips", "This is not good", sentiment.Negative},
		{"contraction negation", "It isn't bad at all", sentiment.Positive},
		{"negated intensified", "I am not very happy", sentiment.Negative},
		{"mixed leaning positive", "A sad start but a wonderful, beautiful ending", sentiment.Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sentiment.Classify(sentiment.Polarity(tt.text)))
		})
	}
}

func TestPolarity_Modifiers(t *testing.T) {
	good := sentiment.Polarity("good")
	assert.InDelta(t, 0.7, good, 1e-9)
	assert.Greater(t, sentiment.Polarity("very good"), good)
	assert.Greater(t, sentiment.Polarity("good!"), good)
	assert.InDelta(t, -0.35, sentiment.Polarity("not good"), 1e-9)
}

func TestPolarity_TypographicApostrophe(t *testing.T) {
	ascii := sentiment.Polarity("isn't good")
	assert.InDelta(t, -0.35, ascii, 1e-9)
	assert.InDelta(t, ascii, sentiment.Polarity("isn\u2019t good"), 1e-9)
	assert.InDelta(t, ascii, sentiment.Polarity("Isn\u2018t good"), 1e-9)
	assert.Less(t, sentiment.Polarity("it doesn\u2019t feel good"), 0.0)
}

func TestPolarity_Bounds(t *testing.T) {
	texts := []string{
		"best best best!!!!!!",
		"extremely extremely absolutely awful, terrible, horrible!!!",
		"not not not",
		"A young boy and his loyal dog face a brutal war.",
		"Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
	}
	for _, text := range texts {
		p := sentiment.Polarity(text)
		assert.GreaterOrEqual(t, p, -1.0, text)
		assert.LessOrEqual(t, p, 1.0, text)
	}
}

func TestPolarity_Concurrent(t *testing.T) {
	want := sentiment.Polarity("What a wonderful, joyful day")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, sentiment.Polarity("What a wonderful, joyful day"))
		}()
	}
	wg.Wait()
}

func TestLabel_String(t *testing.T) {
	assert.Equal(t, "positive", sentiment.Classify(0.1).String())
	assert.Equal(t, "negative", sentiment.Classify(-0.1).String())
	assert.Equal(t, "neutral", sentiment.Classify(0).String())
}
