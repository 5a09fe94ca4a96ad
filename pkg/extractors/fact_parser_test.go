package extractors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestExtractFacts(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
		strategy string
	}{
		{
			name:     "json array",
			raw:      `["A fact.", "Another fact."]`,
			expected: []string{"A fact.", "Another fact."},
			strategy: "json_array",
		},
		{
			name:     "json array in json fence",
			raw:      "```json\n[\"A fact.\", \"Another fact.\"]\n```",
			expected: []string{"A fact.", "Another fact."},
			strategy: "json_array",
		},
		{
			name:     "json array in bare fence",
			raw:      "```\n[\"A fact.\", \"Another fact.\"]\n```",
			expected: []string{"A fact.", "Another fact."},
			strategy: "json_array",
		},
		{
			name:     "json array in other language fence",
			raw:      "```javascript\n[\"A fact.\"]```",
			expected: []string{"A fact."},
			strategy: "json_array",
		},
		{
			name:     "inline fence keeps the first word",
			raw:      "```Cats purr, Dogs bark```",
			expected: []string{"Cats purr", "Dogs bark"},
			strategy: "comma_split",
		},
		{
			name:     "inline json fence",
			raw:      "```json[\"A fact.\"]```",
			expected: []string{"A fact."},
			strategy: "json_array",
		},
		{
			name:     "elements are trimmed and de-quoted",
			raw:      `["  padded  ", "\"double\"", "'single'", "   ", ""]`,
			expected: []string{"padded", "double", "single"},
			strategy: "json_array",
		},
		{
			name:     "non string elements keep their json text",
			raw:      `["Cats have 32 muscles in each ear.", 42, true, null, {"a": 1}]`,
			expected: []string{"Cats have 32 muscles in each ear.", "42", "true", `{"a":1}`},
			strategy: "json_array",
		},
		{
			name:     "empty json array",
			raw:      `[]`,
			expected: []string{},
			strategy: "json_array",
		},
		{
			name:     "comma list",
			raw:      "Fact one, Fact two, Fact three",
			expected: []string{"Fact one", "Fact two", "Fact three"},
			strategy: "comma_split",
		},
		{
			name:     "malformed json falls back to comma split",
			raw:      `["Owls can rotate their heads", "Owls are silent fliers",`,
			expected: []string{"Owls can rotate their heads", "Owls are silent fliers"},
			strategy: "comma_split",
		},
		{
			name:     "json object falls back to comma split",
			raw:      `{"fact": "Bats echolocate"}`,
			expected: []string{`fact": "Bats echolocate`},
			strategy: "comma_split",
		},
		{
			name:     "json string falls back to comma split",
			raw:      `"Sloths are slow, very slow"`,
			expected: []string{"Sloths are slow", "very slow"},
			strategy: "comma_split",
		},
		{
			name:     "trailing data after array is not json",
			raw:      `["a"] ["b"]`,
			expected: []string{`a" "b`},
			strategy: "comma_split",
		},
		{
			name:     "newline list without commas stays one fact",
			raw:      "Fact one\nFact two\n\nFact three",
			expected: []string{"Fact one\nFact two\n\nFact three"},
			strategy: "comma_split",
		},
		{
			name:     "fragments starting with a fence are dropped",
			raw:      "A fact, ```json stuff",
			expected: []string{"A fact"},
			strategy: "comma_split",
		},
		{
			name:     "nested fence falls back to line split",
			raw:      "```\n```\nA fact\nAnother fact\n```",
			expected: []string{"A fact", "Another fact"},
			strategy: "line_split",
		},
		{
			name:     "empty input",
			raw:      "",
			expected: []string{},
			strategy: "none",
		},
		{
			name:     "whitespace and quotes only",
			raw:      " \n \"\" \n '' \n",
			expected: []string{},
			strategy: "none",
		},
		{
			name:     "lone fence",
			raw:      "```",
			expected: []string{},
			strategy: "none",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			facts, strategy := ExtractFactsWithStrategy(tc.raw)
			assert.Equal(t, tc.expected, facts)
			assert.Equal(t, tc.strategy, strategy)
			assert.NotNil(t, ExtractFacts(tc.raw))
		})
	}
}

func TestExtractFacts_Truncates(t *testing.T) {
	raw := `["one", "two", "three", "four", "five", "six", "seven"]`
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, ExtractFacts(raw))

	raw = "one, two, three, four, five, six, seven"
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, ExtractFacts(raw))
}

func TestExtractFacts_EmptiesDoNotCountTowardsLimit(t *testing.T) {
	raw := `["", "one", " ", "two", "three", "four", "five", "six"]`
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, ExtractFacts(raw))
}

// Comma splitting breaks facts that contain commas when the reply is not JSON.
func TestExtractFacts_CommaFidelityGap(t *testing.T) {
	raw := "Elephants, the largest land animals, can't jump"
	assert.Equal(t, []string{"Elephants", "the largest land animals", "can't jump"}, ExtractFacts(raw))
}

func TestExtractFacts_RoundTripsWellFormedArrays(t *testing.T) {
	gofakeit.Seed(0)

	for i := 0; i < 20; i++ {
		n := gofakeit.Number(0, MaxFacts)
		want := make([]string, n)
		quoted := make([]string, n)
		for j := range want {
			want[j] = gofakeit.Sentence(gofakeit.Number(3, 10))
			quoted[j] = fmt.Sprintf("%q", " "+want[j]+" ")
		}
		raw := "[" + strings.Join(quoted, ", ") + "]"

		assert.Equal(t, want, ExtractFacts(raw), raw)
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `["a"]`, stripCodeFence("```json\n[\"a\"]\n```"))
	assert.Equal(t, `["a"]`, stripCodeFence("  ```[\"a\"]```  "))
	assert.Equal(t, "plain text", stripCodeFence("plain text"))
	assert.Equal(t, "Cats purr", stripCodeFence("```Cats purr```"))
	assert.Equal(t, `["a"]`, stripCodeFence("```python \r\n[\"a\"]\n```"))
}
