package htmltrunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{
			name:  "plain text",
			input: "one two three four five six seven",
			n:     5,
			want:  "one two three four five ...",
		},
		{
			name:  "closes open paragraph",
			input: "<p>one two three four five six seven</p>",
			n:     5,
			want:  "<p>one two three four five ...</p>",
		},
		{
			name:  "closes nested tags newest first",
			input: "<div><p>one <em>two three four five six</em></p></div>",
			n:     3,
			want:  "<div><p>one <em>two three ...</em></p></div>",
		},
		{
			name:  "already closed tags are not closed again",
			input: "<p>one two</p><p>three four five six</p>",
			n:     3,
			want:  "<p>one two</p><p>three ...</p>",
		},
		{
			name:  "void elements are not closed",
			input: "<p>one<br>two <img src=\"x.png\"> three four</p>",
			n:     2,
			want:  "<p>one<br>two ...</p>",
		},
		{
			name:  "entities are not words",
			input: "<p>fish &amp; chips and peas</p>",
			n:     3,
			want:  "<p>fish &amp; chips and ...</p>",
		},
		{
			name:  "exact word count is unchanged",
			input: "<p>one two three four five</p>",
			n:     5,
			want:  "<p>one two three four five</p>",
		},
		{
			name:  "short content is unchanged",
			input: "<p>tiny</p>",
			n:     50,
			want:  "<p>tiny</p>",
		},
		{
			name:  "hyphenated words count once",
			input: "well-known state-of-the-art tools are here",
			n:     2,
			want:  "well-known state-of-the-art ...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input, tt.n, DefaultEndText))
		})
	}
}

func TestWords_NonPositiveBudget(t *testing.T) {
	assert.Equal(t, "", Words("<p>one</p>", 0, DefaultEndText))
}

func TestWords_EmptyEndText(t *testing.T) {
	assert.Equal(t, "<b>a b</b>", Words("<b>a b c</b>", 2, ""))
}
