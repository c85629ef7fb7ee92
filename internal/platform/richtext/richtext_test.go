package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "   ", ""},
		{"plain", "hello   world", "hello world"},
		{"paragraphs", "<p>Cold</p><p>chain</p>", "Cold chain"},
		{"inline", "<p>UPS <strong>1kVA</strong> unit</p>", "UPS 1kVA unit"},
		{"script and style", "<style>p{}</style><p>ok</p><script>alert(1)</script>", "ok"},
		{"entities", "<p>Fish &amp; chips</p>", "Fish & chips"},
		{"table", "<table><tr><td>Power</td><td>1kVA</td></tr></table>", "Power 1kVA"},
		{"unclosed", "<p>open <b>bold", "open bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestWordCountAndReadingTime(t *testing.T) {
	body := "<p>" + strings.Repeat("word ", 401) + "</p>"

	assert.Equal(t, 401, WordCount(body))
	assert.Equal(t, 3, ReadingTime(body))
	assert.Equal(t, 1, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("<p>short</p>"))
	assert.Equal(t, 2, readingTime(400))
	assert.Equal(t, 3, readingTime(401))
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "<p>Short text</p>", 50, "Short text"},
		{"word boundary", "<p>The quick brown fox jumps</p>", 12, "The quick…"},
		{"trailing punctuation", "<p>Hello, world again</p>", 7, "Hello…"},
		{"single long word", "<p>Supercalifragilistic</p>", 5, "Supe…"},
		{"unlimited", "<p>a b c</p>", 0, "a b c"},
		{"multibyte", "<p>नमस्ते संसार फेरि</p>", 8, "नमस्ते…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.in, tt.max))
		})
	}
}

func TestDescription(t *testing.T) {
	long := "<p>" + strings.Repeat("storage ", 40) + "</p>"

	got := Description(long)

	assert.LessOrEqual(t, len([]rune(got)), DescriptionLength)
	require.True(t, strings.HasSuffix(got, "…"))
	assert.True(t, strings.HasPrefix(Text(long), strings.TrimSuffix(got, "…")))
	assert.Equal(t, "Fresh", Description("<h1>Fresh</h1>"))
}
