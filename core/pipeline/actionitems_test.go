package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bredow/minutes/model"
)

func TestVerbActionItems(t *testing.T) {
	extract := VerbActionItems()

	t.Run("Keeps only verb family tags in order", func(t *testing.T) {
		tagged := []model.TaggedToken{
			{Token: "Please", Tag: model.TagInterjection},
			{Token: "submit", Tag: model.TagVerbBase},
			{Token: "the", Tag: model.TagDeterminer},
			{Token: "report", Tag: model.TagNoun},
			{Token: "and", Tag: model.TagConjunction},
			{Token: "review", Tag: model.TagVerbBase},
			{Token: "the", Tag: model.TagDeterminer},
			{Token: "budget", Tag: model.TagNoun},
			{Token: ".", Tag: model.TagPunctuation},
		}

		items := extract(tagged)

		assert.Equal(t, []string{"submit", "review"}, items, "Expected the two verbs in token order")
	})

	t.Run("All verb subtypes are included", func(t *testing.T) {
		tagged := []model.TaggedToken{
			{Token: "go", Tag: model.TagVerbBase},
			{Token: "went", Tag: model.TagVerbPast},
			{Token: "going", Tag: model.TagVerbGerund},
			{Token: "gone", Tag: model.TagVerbPastPart},
			{Token: "goes", Tag: model.TagVerbThirdSg},
		}

		items := extract(tagged)

		assert.Equal(t, []string{"go", "went", "going", "gone", "goes"}, items)
	})

	t.Run("Duplicates are preserved", func(t *testing.T) {
		tagged := []model.TaggedToken{
			{Token: "review", Tag: model.TagVerbBase},
			{Token: "it", Tag: model.TagPronoun},
			{Token: "review", Tag: model.TagVerbBase},
		}

		items := extract(tagged)

		assert.Equal(t, []string{"review", "review"}, items, "Expected recurring verbs to show up once per use")
	})

	t.Run("Modals are excluded", func(t *testing.T) {
		tagged := []model.TaggedToken{
			{Token: "should", Tag: model.TagModal},
			{Token: "submit", Tag: model.TagVerbBase},
		}

		items := extract(tagged)

		assert.Equal(t, []string{"submit"}, items, "Expected modals to not become action items")
	})

	t.Run("Empty input yields empty non-nil output", func(t *testing.T) {
		items := extract(nil)

		require.NotNil(t, items, "Expected a non-nil slice")
		assert.Empty(t, items)
	})
}
