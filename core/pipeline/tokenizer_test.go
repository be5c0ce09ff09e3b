package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordTokenizer(t *testing.T) {
	tokenize := WordTokenizer()

	t.Run("Splits words and punctuation into separate tokens", func(t *testing.T) {
		tokens := tokenize("Hello, world!")

		assert.Equal(t, []string{"Hello", ",", "world", "!"}, tokens)
	})

	t.Run("Keeps original order including trailing punctuation", func(t *testing.T) {
		tokens := tokenize("Please submit the report and review the budget.")

		require.Len(t, tokens, 9, "Expected nine tokens including the full stop")
		assert.Equal(t, []string{"Please", "submit", "the", "report", "and", "review", "the", "budget", "."}, tokens)
	})

	t.Run("Empty input yields empty non-nil sequence", func(t *testing.T) {
		tokens := tokenize("")

		require.NotNil(t, tokens, "Expected a non-nil slice for empty input")
		assert.Empty(t, tokens)
	})

	t.Run("Whitespace only input yields no tokens", func(t *testing.T) {
		assert.Empty(t, tokenize("  \n\t  "))
	})

	t.Run("Keeps internal apostrophes", func(t *testing.T) {
		tokens := tokenize("We can't finish today.")

		assert.Contains(t, tokens, "can't", "Expected contraction to stay one token")
	})

	t.Run("Handles non-ASCII letters", func(t *testing.T) {
		tokens := tokenize("Das Café öffnet früh.")

		assert.Equal(t, []string{"Das", "Café", "öffnet", "früh", "."}, tokens)
	})

	t.Run("Deterministic for identical input", func(t *testing.T) {
		text := "Same text, same tokens."

		assert.Equal(t, tokenize(text), tokenize(text))
	})
}
