package pipeline

import "github.com/bredow/minutes/model"

// VerbActionItems creates the action item extractor: tagged tokens whose
// tag belongs to the verb family, in token order, duplicates preserved.
// The result is always a subsequence of the token stream. No stop word or
// length filtering is applied; a recurring verb shows up once per use.
func VerbActionItems() ActionItemFunc {
	return func(tagged []model.TaggedToken) []string {
		items := []string{}
		for _, tt := range tagged {
			if tt.Tag.IsVerb() {
				items = append(items, tt.Token)
			}
		}
		return items
	}
}
