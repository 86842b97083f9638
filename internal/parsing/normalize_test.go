package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases text",
			input:    "Senior Software Engineer",
			expected: "senior software engineer",
		},
		{
			name:     "replaces punctuation with spaces",
			input:    "C++, Node.js & React!",
			expected: "c node js react",
		},
		{
			name:     "collapses whitespace runs",
			input:    "python\t\tdjango\n\naws",
			expected: "python django aws",
		},
		{
			name:     "trims leading and trailing space",
			input:    "  kubernetes  ",
			expected: "kubernetes",
		},
		{
			name:     "keeps digits",
			input:    "5 years of Go 1.21",
			expected: "5 years of go 1 21",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "!!! ??? ...",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Python, Django & AWS")
	assert.Equal(t, []string{"python", "django", "aws"}, tokens)

	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("   "))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("one two three"))
	assert.Equal(t, 2, WordCount("  spaced\tout  "))
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("Python Developer (Remote)")

	assert.Equal(t, "Python Developer (Remote)", doc.Raw)
	assert.Equal(t, "python developer remote", doc.Normalized)
	assert.Equal(t, []string{"python", "developer", "remote"}, doc.Tokens)
	assert.Equal(t, 3, doc.WordCount)
	assert.False(t, doc.Empty())
}

func TestNewDocument_Empty(t *testing.T) {
	doc := NewDocument("")

	assert.True(t, doc.Empty())
	assert.Empty(t, doc.Tokens)
	assert.Equal(t, 0, doc.WordCount)
}
