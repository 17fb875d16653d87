package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func TestExtractJSON_Plain(t *testing.T) {
	got, err := ExtractJSON[sample](`{"name":"a","score":0.5}`, nil)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "a", Score: 0.5}, got)
}

func TestExtractJSON_CodeFenceAndProse(t *testing.T) {
	raw := "Sure! Here is the JSON you asked for:\n```json\n{\"name\":\"b\",\"score\":1}\n```\nLet me know if you need anything else."
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name)
}

func TestExtractJSON_NestedBracesInStrings(t *testing.T) {
	raw := `{"name":"curly {brace} value","score":2}`
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "curly {brace} value", got.Name)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		"name": "c", // inline note
		/* block note */
		"score": 3
	}`
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Name)
	assert.Equal(t, 3.0, got.Score)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[sample]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	_, err := ExtractJSON[sample](`{"name":"","score":0}`, func(s sample) error {
		if s.Name == "" {
			return fmt.Errorf("name required")
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
