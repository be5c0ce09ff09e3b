package pipeline

import "regexp"

// Words keep internal apostrophes ("don't"); every other non-space
// character becomes its own punctuation token.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)*|[^\s\p{L}\p{N}]`)

// WordTokenizer creates the default tokenizer splitting text into word and
// punctuation tokens. Empty input yields an empty sequence, never nil.
func WordTokenizer() TokenizeFunc {
	return func(text string) []string {
		tokens := tokenRe.FindAllString(text, -1)
		if tokens == nil {
			return []string{}
		}
		return tokens
	}
}
