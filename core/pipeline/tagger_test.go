package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bredow/minutes/model"
)

func newTestTagger(t *testing.T) *Tagger {
	tagger, err := NewTagger()
	require.NoError(t, err, "Expected NewTagger to not return an error")
	require.NotNil(t, tagger, "Expected NewTagger to return a non-nil tagger")
	return tagger
}

func TestNewTagger(t *testing.T) {
	t.Run("Loads the embedded lexicon", func(t *testing.T) {
		tagger := newTestTagger(t)

		assert.NotEmpty(t, tagger.lexicon, "Expected lexicon to be populated")
	})
}

func TestTaggerTag(t *testing.T) {
	tagger := newTestTagger(t)

	t.Run("One tag per token in order", func(t *testing.T) {
		tokens := []string{"Please", "submit", "the", "report", "and", "review", "the", "budget", "."}

		tagged := tagger.Tag(tokens)

		require.Len(t, tagged, len(tokens), "Expected one tagged token per input token")
		for i, tt := range tagged {
			assert.Equal(t, tokens[i], tt.Token, "Expected token order to be preserved")
			assert.NotEmpty(t, tt.Tag, "Expected every token to receive a tag")
		}
	})

	t.Run("Verbs in the example sentence are tagged as verbs", func(t *testing.T) {
		tagged := tagger.Tag([]string{"Please", "submit", "the", "report", "and", "review", "the", "budget", "."})

		assert.Equal(t, model.TagInterjection, tagged[0].Tag, "Expected 'Please' to not be a verb")
		assert.Equal(t, model.TagVerbBase, tagged[1].Tag, "Expected 'submit' to be a base verb")
		assert.Equal(t, model.TagDeterminer, tagged[2].Tag)
		assert.Equal(t, model.TagNoun, tagged[3].Tag, "Expected 'report' to be a noun")
		assert.Equal(t, model.TagVerbBase, tagged[5].Tag, "Expected 'review' to be a base verb")
		assert.Equal(t, model.TagNoun, tagged[7].Tag, "Expected 'budget' to be a noun")
		assert.Equal(t, model.TagPunctuation, tagged[8].Tag)
	})

	t.Run("Unknown token falls back to noun", func(t *testing.T) {
		tagged := tagger.Tag([]string{"flibbertigibbet"})

		assert.Equal(t, model.TagNoun, tagged[0].Tag, "Expected unknown token to default to NN")
	})

	t.Run("Infinitive marker promotes unknown noun to verb", func(t *testing.T) {
		tagged := tagger.Tag([]string{"we", "need", "to", "flibble"})

		assert.Equal(t, model.TagVerbBase, tagged[3].Tag, "Expected noun after 'to' to become a base verb")
	})

	t.Run("Modal promotes noun to verb", func(t *testing.T) {
		tagged := tagger.Tag([]string{"you", "should", "flibble"})

		assert.Equal(t, model.TagVerbBase, tagged[2].Tag, "Expected noun after a modal to become a base verb")
	})

	t.Run("Suffix rules tag unknown verb forms", func(t *testing.T) {
		tagged := tagger.Tag([]string{"flibbing", "flibbed", "flibbingly"})

		assert.Equal(t, model.TagVerbGerund, tagged[0].Tag, "Expected -ing suffix to produce a gerund")
		assert.Equal(t, model.TagVerbPast, tagged[1].Tag, "Expected -ed suffix to produce past tense")
		assert.Equal(t, model.TagAdverb, tagged[2].Tag, "Expected -ly suffix to produce an adverb")
	})

	t.Run("Determiner demotes base verb to noun", func(t *testing.T) {
		tagged := tagger.Tag([]string{"the", "review", "starts"})

		assert.Equal(t, model.TagNoun, tagged[1].Tag, "Expected 'review' after 'the' to be a noun")
	})

	t.Run("Tag depends on the surrounding sequence", func(t *testing.T) {
		alone := tagger.Tag([]string{"review"})
		inContext := tagger.Tag([]string{"the", "review"})

		assert.Equal(t, model.TagVerbBase, alone[0].Tag)
		assert.Equal(t, model.TagNoun, inContext[1].Tag,
			"Expected the same token to be tagged differently depending on context")
	})

	t.Run("Capitalised unknown token inside a sentence is a proper noun", func(t *testing.T) {
		tagged := tagger.Tag([]string{"Zorblax", "met", "Quandrix"})

		assert.Equal(t, model.TagNoun, tagged[0].Tag, "Expected sentence-initial capital to stay a plain noun")
		assert.Equal(t, model.TagProperNoun, tagged[2].Tag, "Expected mid-sentence capital to be a proper noun")
	})

	t.Run("Empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, tagger.Tag(nil))
		assert.Empty(t, tagger.Tag([]string{}))
	})

	t.Run("Deterministic given the same sequence", func(t *testing.T) {
		tokens := []string{"we", "will", "schedule", "the", "planning", "session"}

		assert.Equal(t, tagger.Tag(tokens), tagger.Tag(tokens))
	})
}
